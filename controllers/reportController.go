package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"disaster-alert-be/enrichment"
	"disaster-alert-be/metrics"
	"disaster-alert-be/models"
	"disaster-alert-be/store"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// liveWindow is the trailing window for the live-disasters view.
const liveWindow = 24 * time.Hour

// ReportController serves the disaster report endpoints.
type ReportController struct {
	reports ReportStore
	clock   clockwork.Clock
	log     *zap.Logger
}

func NewReportController(reports ReportStore, clock clockwork.Clock, log *zap.Logger) *ReportController {
	return &ReportController{reports: reports, clock: clock, log: log}
}

// CreateReport handles POST /api/reports.
func (rc *ReportController) CreateReport(c *gin.Context) {
	var input struct {
		Name         string              `json:"name"`
		Location     string              `json:"location"`
		DisasterType string              `json:"disasterType"`
		Description  string              `json:"description"`
		Coordinates  *models.Coordinates `json:"coordinates"`
		Address      string              `json:"address"`
		Photos       []string            `json:"photos"`
		Severity     string              `json:"severity"`
		ContactInfo  string              `json:"contactInfo"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := requireFieldsErr(c, map[string]string{
		"disasterType": input.DisasterType,
		"description":  input.Description,
		"location":     input.Location,
		"name":         input.Name,
	}, "disasterType", "description", "location", "name"); err != nil {
		return
	}

	if !models.ValidDisasterType(input.DisasterType) {
		fail(c, http.StatusBadRequest, "Invalid disaster type")
		return
	}

	severity := models.Severity(input.Severity)
	switch severity {
	case models.SeverityLow, models.SeverityMedium, models.SeverityHigh:
	default:
		severity = models.SeverityMedium
	}

	report := &models.Report{
		Name:         strings.TrimSpace(input.Name),
		Location:     strings.TrimSpace(input.Location),
		DisasterType: models.DisasterType(input.DisasterType),
		Description:  strings.TrimSpace(input.Description),
		Coordinates:  input.Coordinates,
		Address:      input.Address,
		Photos:       input.Photos,
		Timestamp:    rc.clock.Now().UTC(),
		Status:       models.StatusPending,
		Verified:     false,
		Severity:     severity,
		ContactInfo:  input.ContactInfo,
		ReporterIP:   c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
	}

	ctx, cancel := dbContext()
	defer cancel()

	id, err := rc.reports.Insert(ctx, report)
	if err != nil {
		rc.log.Error("failed to insert report", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to submit report")
		return
	}

	metrics.RecordReportSubmission(string(report.DisasterType))

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Report submitted successfully",
		"reportId": id,
	})
}

// GetReports handles GET /api/reports with status/type filters and
// pagination.
func (rc *ReportController) GetReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultReportLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = store.DefaultReportLimit
	}

	ctx, cancel := dbContext()
	defer cancel()

	reports, total, err := rc.reports.List(ctx, store.ReportFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		rc.log.Error("failed to list reports", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reports": reports,
		"total":   total,
		"page":    page,
		"limit":   limit,
		"pages":   store.Pages(total, int64(limit)),
	})
}

// GetReport handles GET /api/reports/:id.
func (rc *ReportController) GetReport(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid report ID")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	report, err := rc.reports.FindByID(ctx, id)
	if err == store.ErrNotFound {
		fail(c, http.StatusNotFound, "Report not found")
		return
	}
	if err != nil {
		rc.log.Error("failed to fetch report", zap.String("id", id.Hex()), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

// UpdateReportStatus handles PATCH /api/reports/:id/status. Any status in
// the valid set may be assigned regardless of the current one.
func (rc *ReportController) UpdateReportStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := models.ReportStatus(input.Status)
	if !status.Valid() {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	err = rc.reports.UpdateStatus(ctx, id, status, rc.clock.Now().UTC())
	if err == store.ErrNotFound {
		fail(c, http.StatusNotFound, "Report not found or status unchanged")
		return
	}
	if err != nil {
		rc.log.Error("failed to update report status", zap.String("id", id.Hex()), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to update report status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Report status updated to " + input.Status,
	})
}

// GetLiveDisasters handles GET /api/live-disasters: the trailing 24h of
// located reports, newest first, enriched with display coordinates and
// derived severity. Returns a bare array.
func (rc *ReportController) GetLiveDisasters(c *gin.Context) {
	since := rc.clock.Now().UTC().Add(-liveWindow)

	ctx, cancel := dbContext()
	defer cancel()

	reports, err := rc.reports.ListLive(ctx, since, store.LiveReportCap)
	if err != nil {
		rc.log.Error("failed to list live disasters", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch live disasters")
		return
	}

	live := make([]models.Report, 0, len(reports))
	for _, report := range reports {
		live = append(live, enrichment.Apply(report))
	}

	c.JSON(http.StatusOK, live)
}
