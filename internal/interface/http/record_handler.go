package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-ddd-records/internal/application"
	"github.com/oksasatya/go-ddd-records/internal/domain/repository"
	"github.com/oksasatya/go-ddd-records/pkg/helpers"
	"github.com/oksasatya/go-ddd-records/pkg/response"
	"github.com/oksasatya/go-ddd-records/pkg/validation"
)

// RecordInput is a request body for create and update. Every mutable
// field is required, so an update is always a full replace.
type RecordInput[T any] interface {
	Record() T
}

// RecordHandler serves the five record routes for one record type.
// I is the request body type bound and validated by gin.
type RecordHandler[T any, I RecordInput[T]] struct {
	Svc    *app.RecordService[T]
	Logger *logrus.Logger
}

func NewRecordHandler[T any, I RecordInput[T]](svc *app.RecordService[T], logger *logrus.Logger) *RecordHandler[T, I] {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &RecordHandler[T, I]{Svc: svc, Logger: logger}
}

func (h *RecordHandler[T, I]) Create(c *gin.Context) {
	var req I
	if err := validation.BindJSON(c, &req); err != nil {
		response.Unprocessable(c, validation.ToDetails(err))
		return
	}
	rec, err := h.Svc.Create(c.Request.Context(), req.Record())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, 0, rec)
}

func (h *RecordHandler[T, I]) List(c *gin.Context) {
	recs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, 0, recs)
}

func (h *RecordHandler[T, I]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, 0, rec)
}

func (h *RecordHandler[T, I]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req I
	if err := validation.BindJSON(c, &req); err != nil {
		response.Unprocessable(c, validation.ToDetails(err))
		return
	}
	rec, err := h.Svc.Update(c.Request.Context(), id, req.Record())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, 0, rec)
}

func (h *RecordHandler[T, I]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c)
}

func (h *RecordHandler[T, I]) fail(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, h.Svc.Schema.NotFoundMessage())
		return
	}
	helpers.LogError(h.Logger, "record operation failed", err, logrus.Fields{
		"request_id": c.GetString("request_id"),
		"entity":     h.Svc.Schema.Path,
		"method":     c.Request.Method,
	})
	response.Internal(c)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Unprocessable(c, validation.PathParam("id", "must be an integer"))
		return 0, false
	}
	return id, true
}
