package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bartal/portfolio/internal/logging"
	"github.com/bartal/portfolio/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("list_projects", err)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Failed to load projects data",
			Message: "Unable to retrieve project information at this time",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	out, err := h.service.Create(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}

	out, err := h.service.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidBody):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "project not found"})
	default:
		logging.NewLogger(c.Request.Context()).LogError("project_write", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
