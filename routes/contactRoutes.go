package routes

import (
	"disaster-alert-be/controllers"

	"github.com/gin-gonic/gin"
)

// ContactRoutes sets up the contact form routes
func ContactRoutes(r *gin.Engine, cc *controllers.ContactController, submitLimiter gin.HandlerFunc) {
	contact := r.Group("/api/contact")
	{
		contact.POST("", submitLimiter, cc.CreateContact)
		contact.GET("", cc.GetContacts)
	}
}
