package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"disaster-alert-be/models"
	"disaster-alert-be/store"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newReportRouter(reports *fakeReportStore, clock clockwork.Clock) *gin.Engine {
	rc := NewReportController(reports, clock, zap.NewNop())
	r := gin.New()
	r.POST("/api/reports", rc.CreateReport)
	r.GET("/api/reports", rc.GetReports)
	r.GET("/api/reports/:id", rc.GetReport)
	r.PATCH("/api/reports/:id/status", rc.UpdateReportStatus)
	r.GET("/api/live-disasters", rc.GetLiveDisasters)
	return r
}

func TestCreateReport(t *testing.T) {
	reports := &fakeReportStore{}
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	r := newReportRouter(reports, clockwork.NewFakeClockAt(now))

	w := performJSON(t, r, http.MethodPost, "/api/reports", gin.H{
		"name":         "Asha Rao",
		"location":     "Mumbai",
		"disasterType": "flood",
		"description":  "Water entering ground floors near the station.",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Report submitted successfully", body["message"])
	assert.NotEmpty(t, body["reportId"])

	if assert.Len(t, reports.inserted, 1) {
		saved := reports.inserted[0]
		assert.Equal(t, models.StatusPending, saved.Status)
		assert.False(t, saved.Verified)
		assert.Equal(t, models.SeverityMedium, saved.Severity)
		assert.Equal(t, now, saved.Timestamp)
		assert.Nil(t, saved.Coordinates)
	}
}

func TestCreateReport_MissingField(t *testing.T) {
	reports := &fakeReportStore{}
	r := newReportRouter(reports, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodPost, "/api/reports", gin.H{
		"location":     "Mumbai",
		"disasterType": "flood",
		"description":  "Water rising.",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required field: name", body["error"])
	assert.Empty(t, reports.inserted)
}

func TestCreateReport_InvalidType(t *testing.T) {
	r := newReportRouter(&fakeReportStore{}, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodPost, "/api/reports", gin.H{
		"name":         "Asha",
		"location":     "Mumbai",
		"disasterType": "meteor",
		"description":  "Something fell from the sky.",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid disaster type", decodeBody(t, w)["error"])
}

func TestCreateReport_UnknownSeverityDefaultsToMedium(t *testing.T) {
	reports := &fakeReportStore{}
	r := newReportRouter(reports, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodPost, "/api/reports", gin.H{
		"name":         "Asha",
		"location":     "Pune",
		"disasterType": "fire",
		"description":  "Warehouse fire spreading.",
		"severity":     "apocalyptic",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SeverityMedium, reports.inserted[0].Severity)
}

func TestGetReports_Pagination(t *testing.T) {
	reports := &fakeReportStore{
		listReports: []models.Report{{Name: "a"}, {Name: "b"}},
		listTotal:   120,
	}
	r := newReportRouter(reports, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodGet, "/api/reports?status=pending&type=flood&page=2&limit=50", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(120), body["total"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(50), body["limit"])
	assert.Equal(t, float64(3), body["pages"])

	assert.Equal(t, store.ReportFilter{Status: "pending", Type: "flood", Page: 2, Limit: 50}, reports.lastFilter)
}

func TestGetReports_BadQueryFallsBack(t *testing.T) {
	reports := &fakeReportStore{}
	r := newReportRouter(reports, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodGet, "/api/reports?page=-1&limit=9999", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, reports.lastFilter.Page)
	assert.Equal(t, store.DefaultReportLimit, reports.lastFilter.Limit)
}

func TestGetReport(t *testing.T) {
	id := primitive.NewObjectID()
	reports := &fakeReportStore{findReport: &models.Report{ID: id, Name: "Asha"}}
	r := newReportRouter(reports, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodGet, "/api/reports/"+id.Hex(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	report := body["report"].(map[string]interface{})
	assert.Equal(t, "Asha", report["name"])
}

func TestGetReport_InvalidID(t *testing.T) {
	r := newReportRouter(&fakeReportStore{}, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodGet, "/api/reports/not-hex", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid report ID", decodeBody(t, w)["error"])
}

func TestGetReport_NotFound(t *testing.T) {
	reports := &fakeReportStore{findErr: store.ErrNotFound}
	r := newReportRouter(reports, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodGet, "/api/reports/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Report not found", decodeBody(t, w)["error"])
}

func TestUpdateReportStatus(t *testing.T) {
	reports := &fakeReportStore{}
	r := newReportRouter(reports, clockwork.NewRealClock())
	id := primitive.NewObjectID()

	w := performJSON(t, r, http.MethodPatch, "/api/reports/"+id.Hex()+"/status", gin.H{"status": "verified"})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Report status updated to verified", body["message"])
	assert.Equal(t, id, reports.lastUpdateID)
	assert.Equal(t, models.StatusVerified, reports.lastStatus)
}

func TestUpdateReportStatus_Invalid(t *testing.T) {
	r := newReportRouter(&fakeReportStore{}, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodPatch, "/api/reports/"+primitive.NewObjectID().Hex()+"/status", gin.H{"status": "archived"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status", decodeBody(t, w)["error"])
}

func TestUpdateReportStatus_NotFound(t *testing.T) {
	reports := &fakeReportStore{updateErr: store.ErrNotFound}
	r := newReportRouter(reports, clockwork.NewRealClock())

	w := performJSON(t, r, http.MethodPatch, "/api/reports/"+primitive.NewObjectID().Hex()+"/status", gin.H{"status": "resolved"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Report not found or status unchanged", decodeBody(t, w)["error"])
}

func TestGetLiveDisasters(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reports := &fakeReportStore{
		liveReports: []models.Report{
			{Location: "Mumbai", DisasterType: models.Flood, Description: "Severe flooding near the coast."},
			{Location: "Unknownville", DisasterType: models.OtherType, Description: "minor incident"},
		},
	}
	r := newReportRouter(reports, clockwork.NewFakeClockAt(now))

	w := performJSON(t, r, http.MethodGet, "/api/live-disasters", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, now.Add(-24*time.Hour), reports.lastSince)
	assert.Equal(t, int64(store.LiveReportCap), reports.lastLiveCap)

	var live []models.Report
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &live))
	assert.Len(t, live, 2)

	// Enrichment fills coordinates and derives severity on the way out.
	if assert.NotNil(t, live[0].Coordinates) {
		assert.InDelta(t, 19.0760, live[0].Coordinates.Lat, 0.0001)
		assert.InDelta(t, 72.8777, live[0].Coordinates.Lng, 0.0001)
	}
	assert.Equal(t, models.SeverityHigh, live[0].Severity)
	assert.NotNil(t, live[1].Coordinates)
}
