package interaction

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InteractionRoutes sets up the prompt session routes. All of them require authentication.
func InteractionRoutes(router *gin.RouterGroup, coord *Coordinator, log *zap.Logger, authMW gin.HandlerFunc) {
	interactionController := NewInteractionController(coord, log)

	authRoutes := router.Group("/interactions")
	authRoutes.Use(authMW)
	{
		authRoutes.POST("", interactionController.Begin)
		authRoutes.POST("/:id", interactionController.Submit)
		authRoutes.DELETE("/:id", interactionController.Cancel)
	}
}
