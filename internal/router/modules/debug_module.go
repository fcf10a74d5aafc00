package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

// DebugModule exposes expvar metrics, including the request counters
// recorded by middleware.Metrics.
type DebugModule struct {
	Middleware []gin.HandlerFunc
}

func NewDebugModule(mw ...gin.HandlerFunc) *DebugModule { return &DebugModule{Middleware: mw} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	handlers := append(append([]gin.HandlerFunc{}, m.Middleware...), gin.WrapH(expvar.Handler()))
	rg.GET("/debug/vars", handlers...)
}
