package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bartal/portfolio/internal/logging"
	"github.com/bartal/portfolio/internal/preferences/domain"
	"github.com/bartal/portfolio/internal/preferences/repository"
)

// Handler serves the cosmetic admin-toggle preference.
type Handler struct {
	store repository.Store
}

func New(store repository.Store) *Handler {
	return &Handler{store: store}
}

// Register attaches preference routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/:session_id", h.get)
	rg.PUT("/:session_id", h.put)
}

type putReq struct {
	Admin *bool `json:"admin"`
}

func (h *Handler) get(c *gin.Context) {
	sessionID := c.Param("session_id")
	if !domain.ValidSessionID(sessionID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidSession.Error()})
		return
	}

	prefs, err := h.store.Get(c.Request.Context(), sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusOK, domain.Preferences{SessionID: sessionID})
		return
	}
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogError("get_preferences", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *Handler) put(c *gin.Context) {
	sessionID := c.Param("session_id")
	if !domain.ValidSessionID(sessionID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidSession.Error()})
		return
	}

	var req putReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Admin == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	prefs := &domain.Preferences{
		SessionID: sessionID,
		Admin:     *req.Admin,
		UpdatedAt: time.Now().UTC(),
	}
	if err := h.store.Put(c.Request.Context(), prefs); err != nil {
		logging.NewLogger(c.Request.Context()).LogError("put_preferences", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
