package api

import (
	"net/http"
	"strings"

	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/logging"

	"github.com/gin-gonic/gin"
)

type CreateSessionRequest struct {
	Profile string `json:"profile"`
	Stage   int    `json:"stage"`
}

const maxProfileLength = 32

// CreateSession deals a new battle for the requested stage (stage 1 when
// omitted).
func (h *GameHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	req.Profile = strings.TrimSpace(req.Profile)
	if len(req.Profile) > maxProfileLength {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: "profile exceeds 32 characters"})
		return
	}
	if req.Stage == 0 {
		req.Stage = 1
	}

	s, err := h.sessions.Create(c.Request.Context(), req.Profile, req.Stage)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedCreateSession)
		return
	}
	logging.Info("session created", logging.Fields{
		constants.LogFieldSessionID: s.ID,
		constants.LogFieldProfile:   s.ProfileKey,
		constants.LogFieldStage:     req.Stage,
	})
	respond(c, http.StatusCreated, s.Snapshot())
}

// ResetSession deals the same stage again.
func (h *GameHandler) ResetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedResetSession)
		return
	}
	if err := s.ResetSession(c.Request.Context()); err != nil {
		writeServiceError(c, err, constants.ErrFailedResetSession)
		return
	}
	respond(c, http.StatusOK, s.Snapshot())
}

// DeleteSession ends a session and closes its streams.
func (h *GameHandler) DeleteSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.sessions.Delete(id); err != nil {
		writeServiceError(c, err, constants.ErrSessionNotFound)
		return
	}
	logging.Info("session deleted", logging.Fields{constants.LogFieldSessionID: id})
	c.Status(http.StatusNoContent)
}
