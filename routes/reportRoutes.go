package routes

import (
	"disaster-alert-be/controllers"

	"github.com/gin-gonic/gin"
)

// ReportRoutes sets up the disaster report routes. submitLimiter guards
// the public submission endpoint.
func ReportRoutes(r *gin.Engine, rc *controllers.ReportController, submitLimiter gin.HandlerFunc) {
	reports := r.Group("/api/reports")
	{
		reports.GET("", rc.GetReports)
		reports.POST("", submitLimiter, rc.CreateReport)
		reports.GET("/:id", rc.GetReport)
		reports.PATCH("/:id/status", rc.UpdateReportStatus)
	}

	r.GET("/api/live-disasters", rc.GetLiveDisasters)
}
