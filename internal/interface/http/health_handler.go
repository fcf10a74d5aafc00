package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-records/pkg/helpers"
	"github.com/oksasatya/go-ddd-records/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB     Pinger
	Logger *logrus.Logger
}

func NewHealthHandler(db Pinger, logger *logrus.Logger) *HealthHandler {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &HealthHandler{DB: db, Logger: logger}
}

// Check reports 200 when the store answers a ping within two seconds.
func (h *HealthHandler) Check(c *gin.Context) {
	if h.DB == nil {
		response.Error(c, http.StatusServiceUnavailable, "database not configured")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.Ping(ctx); err != nil {
		h.Logger.WithError(err).Warn("health check failed")
		response.Error(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
