package api

import (
	"net/http"
	"strings"

	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/gin-gonic/gin"
)

// GetCatalog returns every card template, the stages and the battle rules.
func (h *GameHandler) GetCatalog(c *gin.Context) {
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.JSON(http.StatusOK, h.sessions.Catalog())
}

// GetProgress returns the meta progress of a profile.
func (h *GameHandler) GetProgress(c *gin.Context) {
	profile := strings.TrimSpace(c.Param(constants.ParamProfile))
	if profile == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p, err := h.sessions.Progress(c.Request.Context(), profile)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedFetchProgress)
		return
	}
	respond(c, http.StatusOK, p)
}

// GetSession returns the current snapshot of a session.
func (h *GameHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		writeServiceError(c, err, constants.ErrSessionNotFound)
		return
	}
	respond(c, http.StatusOK, s.Snapshot())
}
