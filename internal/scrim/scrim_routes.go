package scrim

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScrimRoutes sets up all team, signup and slot routes.
// authMW authenticates the caller; adminMW additionally requires the admin role.
func ScrimRoutes(router *gin.RouterGroup, svc *Service, log *zap.Logger, authMW, adminMW gin.HandlerFunc) {
	scrimController := NewScrimController(svc, log)

	// Public read routes
	router.GET("/teams", scrimController.ListTeams)
	router.GET("/slots", scrimController.ListSlots)
	router.GET("/slots/teams", scrimController.ListTeamsForSlot)
	router.GET("/participants", scrimController.Participants)

	// Authenticated identity routes
	authRoutes := router.Group("/")
	authRoutes.Use(authMW)
	{
		authRoutes.POST("/teams", scrimController.CreateTeam)
		authRoutes.POST("/teams/join", scrimController.JoinTeam)
		authRoutes.POST("/teams/quit", scrimController.QuitTeam)
		authRoutes.DELETE("/teams/mine", scrimController.DiscardTeam)

		authRoutes.POST("/signups", scrimController.Signup)
		authRoutes.POST("/signups/cancel", scrimController.CancelSignup)
		authRoutes.GET("/schedule", scrimController.GetSchedule)
	}

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(authMW, adminMW)
	{
		adminRoutes.GET("/slots", scrimController.ListSeededSlots)
		adminRoutes.POST("/slots", scrimController.AddSlot)
		adminRoutes.POST("/reset", scrimController.ResetAll)
	}
}
