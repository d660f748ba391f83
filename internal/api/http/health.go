package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bartal/portfolio/internal/datacheck"
)

type HealthResponse struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Data        *datacheck.Status `json:"data,omitempty"`
	Preferences string            `json:"preferences,omitempty"`
}

// DataStatus reports the last data document check.
type DataStatus interface {
	Last() datacheck.Status
}

// Pinger is a backing store that can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

type HealthHandler struct {
	serviceName string
	version     string
	data        DataStatus
	prefs       Pinger
}

// NewHealthHandler accepts nil data and prefs; their fields are then left out.
func NewHealthHandler(serviceName, version string, data DataStatus, prefs Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		data:        data,
		prefs:       prefs,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
	}

	if h.data != nil {
		st := h.data.Last()
		resp.Data = &st
	}

	if h.prefs != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.prefs.Ping(pingCtx); err != nil {
			resp.Preferences = h.prefs.Name() + ":down"
		} else {
			resp.Preferences = h.prefs.Name() + ":up"
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
