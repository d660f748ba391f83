package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bartal/portfolio/internal/companies/domain"
	"github.com/bartal/portfolio/internal/logging"
)

// Source provides the current companies document.
type Source interface {
	Companies(ctx context.Context) ([]domain.Company, error)
}

// Handler serves the read-only companies list.
type Handler struct {
	source Source
}

func New(source Source) *Handler {
	return &Handler{source: source}
}

// Register attaches company routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.source.Companies(c.Request.Context())
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("list_companies", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load companies data",
			"message": "Unable to retrieve company information at this time",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}
