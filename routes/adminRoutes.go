package routes

import (
	"disaster-alert-be/controllers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AdminRoutes sets up the aggregate/admin and diagnostic routes
func AdminRoutes(r *gin.Engine, a *controllers.AdminController) {
	r.GET("/api/stats", a.GetStats)
	r.GET("/api/users", a.GetUsers)
	r.GET("/api/admin/email", a.GetAdminEmail)
	r.POST("/api/test-email", a.TestEmail)
	r.GET("/api/health", a.HealthCheck)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
