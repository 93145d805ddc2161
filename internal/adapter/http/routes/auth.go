package routes

import (
	"laminasycortes/internal/adapter/http/handlers"
	"laminasycortes/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth = "/auth"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, tokens middleware.TokenVerifier) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.BearerAuth(tokens, true), authHandler.Me)
	}
}
