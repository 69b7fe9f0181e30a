package api

import (
	"net/http"

	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/game"

	"github.com/gin-gonic/gin"
)

type SelectRequest struct {
	CardIDs   []string `json:"card_ids"`
	KingID    string   `json:"king_id"`
	SupportID string   `json:"support_id"`
}

type RetrieveRequest struct {
	Zone game.Zone `json:"zone" binding:"required"`
}

// SelectCards stores the player's plan for the current turn.
func (h *GameHandler) SelectCards(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		writeServiceError(c, err, constants.ErrSessionNotFound)
		return
	}
	if err := s.SelectPlayerCards(req.CardIDs, req.KingID, req.SupportID); err != nil {
		writeServiceError(c, err, constants.ErrInvalidRequest)
		return
	}
	respond(c, http.StatusOK, s.Snapshot())
}

// RetrieveCard moves the King or Support card back to the hand.
func (h *GameHandler) RetrieveCard(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req RetrieveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		writeServiceError(c, err, constants.ErrSessionNotFound)
		return
	}
	if _, err := s.RetrieveCard(req.Zone); err != nil {
		writeServiceError(c, err, constants.ErrInvalidRequest)
		return
	}
	respond(c, http.StatusOK, s.Snapshot())
}

// ConfirmTurn runs the battle phase. The response carries the new snapshot;
// the turn report is part of it.
func (h *GameHandler) ConfirmTurn(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		writeServiceError(c, err, constants.ErrSessionNotFound)
		return
	}
	if _, err := s.ConfirmTurn(c.Request.Context()); err != nil {
		writeServiceError(c, err, constants.ErrFailedConfirmTurn)
		return
	}
	respond(c, http.StatusOK, s.Snapshot())
}
