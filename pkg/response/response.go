package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the body of every non-2xx response.
// Detail is a message string, or a list of field errors for 422s.
type ErrorBody[T any] struct {
	Detail T `json:"detail"`
}

// Ack acknowledges a mutation that has no record to return.
type Ack struct {
	OK bool `json:"ok"`
}

func Success[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

func Error[T any](ctx *gin.Context, status int, detail T) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, ErrorBody[T]{Detail: detail})
}

func OK(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, Ack{OK: true})
}

func NotFound(ctx *gin.Context, detail string) {
	Error(ctx, http.StatusNotFound, detail)
}

func Unprocessable[T any](ctx *gin.Context, detail T) {
	Error(ctx, http.StatusUnprocessableEntity, detail)
}

func Internal(ctx *gin.Context) {
	Error(ctx, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
