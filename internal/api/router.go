package api

import (
	"github.com/Hariz09/game-hub-sub001/internal/constants"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *GameHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteCatalog, h.GetCatalog)
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteProgress, h.GetProgress)

		apiRoutes.POST(constants.RouteSessions, h.CreateSession)
		apiRoutes.GET(constants.RouteSessionByID, h.GetSession)
		apiRoutes.DELETE(constants.RouteSessionByID, h.DeleteSession)
		apiRoutes.POST(constants.RouteSessionSelect, h.SelectCards)
		apiRoutes.POST(constants.RouteSessionRetrieve, h.RetrieveCard)
		apiRoutes.POST(constants.RouteSessionConfirm, h.ConfirmTurn)
		apiRoutes.POST(constants.RouteSessionReset, h.ResetSession)
		apiRoutes.GET(constants.RouteSessionStream, h.StreamSession)
	}
	return router
}
