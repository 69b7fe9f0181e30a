package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/logging"
	"github.com/Hariz09/game-hub-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionID reads and validates the :sessionID path parameter. On failure
// the response is already written.
func sessionID(c *gin.Context) (string, bool) {
	id := c.Param(constants.ParamSessionID)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionID})
		return "", false
	}
	return id, true
}

// writeServiceError maps service errors to HTTP statuses. fallback is the
// message used for unexpected failures.
func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
	case errors.Is(err, service.ErrUnknownStage):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrUnknownStage})
	case errors.Is(err, service.ErrSessionOver):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSessionOver})
	case errors.Is(err, service.ErrWrongPhase):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrWrongPhase})
	case errors.Is(err, service.ErrZoneEmpty):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrZoneEmpty})
	case errors.Is(err, service.ErrUnknownZone):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownZone})
	case errors.Is(err, service.ErrIllegalSelection):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrIllegalSelection, constants.JSONKeyDetails: err.Error()})
	default:
		logging.Error(fallback, err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback, constants.JSONKeyDetails: err.Error()})
	}
}

// respond writes v as JSON with status.
func respond(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

// requestLogger logs one JSON line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Debug("request", logging.Fields{
			constants.LogFieldPath: c.Request.URL.Path,
			"method":               c.Request.Method,
			"status":               c.Writer.Status(),
			"latency_ms":           time.Since(start).Milliseconds(),
		})
	}
}
