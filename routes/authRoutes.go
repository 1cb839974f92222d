package routes

import (
	"disaster-alert-be/controllers"
	"disaster-alert-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, jwtSecret string) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/verify/:userId", ac.VerifyUser)
		auth.GET("/me", middlewares.AuthMiddleware(jwtSecret), ac.GetMe)
	}
}
