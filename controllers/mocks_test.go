package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"disaster-alert-be/mailer"
	"disaster-alert-be/models"
	"disaster-alert-be/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- fake report store ---

type fakeReportStore struct {
	insertErr    error
	inserted     []*models.Report
	findReport   *models.Report
	findErr      error
	listReports  []models.Report
	listTotal    int64
	listErr      error
	lastFilter   store.ReportFilter
	updateErr    error
	lastUpdateID primitive.ObjectID
	lastStatus   models.ReportStatus
	liveReports  []models.Report
	liveErr      error
	lastSince    time.Time
	lastLiveCap  int64
	statusCounts map[string]int64
	typeDist     []store.TypeCount
}

func (f *fakeReportStore) Insert(_ context.Context, report *models.Report) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	report.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, report)
	return report.ID.Hex(), nil
}

func (f *fakeReportStore) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Report, error) {
	return f.findReport, f.findErr
}

func (f *fakeReportStore) List(_ context.Context, filter store.ReportFilter) ([]models.Report, int64, error) {
	f.lastFilter = filter
	return f.listReports, f.listTotal, f.listErr
}

func (f *fakeReportStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.ReportStatus, _ time.Time) error {
	f.lastUpdateID = id
	f.lastStatus = status
	return f.updateErr
}

func (f *fakeReportStore) ListLive(_ context.Context, since time.Time, limit int64) ([]models.Report, error) {
	f.lastSince = since
	f.lastLiveCap = limit
	return f.liveReports, f.liveErr
}

func (f *fakeReportStore) StatusCounts(_ context.Context) (map[string]int64, error) {
	return f.statusCounts, nil
}

func (f *fakeReportStore) TypeDistribution(_ context.Context) ([]store.TypeCount, error) {
	return f.typeDist, nil
}

// --- fake user store ---

type fakeUserStore struct {
	insertErr     error
	inserted      []*models.User
	userByEmail   *models.User
	findEmailErr  error
	userByID      *models.User
	findIDErr     error
	lastLoginID   primitive.ObjectID
	lastLoginAt   time.Time
	lastLoginErr  error
	lastLoginHits int
	verifyErr     error
	lastVerifyID  primitive.ObjectID
	listUsers     []models.User
	listTotal     int64
	totalCount    int64
	verifiedCount int64
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	user.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, user)
	return user.ID.Hex(), nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	return f.userByEmail, f.findEmailErr
}

func (f *fakeUserStore) FindByID(_ context.Context, _ primitive.ObjectID) (*models.User, error) {
	return f.userByID, f.findIDErr
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, id primitive.ObjectID, now time.Time) error {
	f.lastLoginHits++
	f.lastLoginID = id
	f.lastLoginAt = now
	return f.lastLoginErr
}

func (f *fakeUserStore) Verify(_ context.Context, id primitive.ObjectID, _ time.Time) error {
	f.lastVerifyID = id
	return f.verifyErr
}

func (f *fakeUserStore) List(_ context.Context, _, _ int) ([]models.User, int64, error) {
	return f.listUsers, f.listTotal, nil
}

func (f *fakeUserStore) Counts(_ context.Context) (int64, int64, error) {
	return f.totalCount, f.verifiedCount, nil
}

// --- fake contact store ---

type fakeContactStore struct {
	insertErr    error
	inserted     []*models.Contact
	insertCtx    context.Context
	markedID     primitive.ObjectID
	markedSent   *bool
	markCtx      context.Context
	markErr      error
	listContacts []models.Contact
	listTotal    int64
	totalCount   int64
	freshCount   int64
}

func (f *fakeContactStore) Insert(ctx context.Context, contact *models.Contact) (string, error) {
	f.insertCtx = ctx
	if f.insertErr != nil {
		return "", f.insertErr
	}
	contact.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, contact)
	return contact.ID.Hex(), nil
}

func (f *fakeContactStore) MarkEmailResult(ctx context.Context, id primitive.ObjectID, sent bool, _ time.Time) error {
	f.markCtx = ctx
	f.markedID = id
	f.markedSent = &sent
	return f.markErr
}

func (f *fakeContactStore) List(_ context.Context, _ string, _, _ int) ([]models.Contact, int64, error) {
	return f.listContacts, f.listTotal, nil
}

func (f *fakeContactStore) Counts(_ context.Context) (int64, int64, error) {
	return f.totalCount, f.freshCount, nil
}

// --- fake mailer ---

type fakeMailer struct {
	sendResult    bool
	notifications []mailer.Notification
	admin         string
}

func (f *fakeMailer) SendContactNotification(n mailer.Notification) bool {
	f.notifications = append(f.notifications, n)
	return f.sendResult
}

func (f *fakeMailer) AdminEmail() string {
	if f.admin == "" {
		return "admin@example.com"
	}
	return f.admin
}

// --- request helpers ---

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}
