package controllers

import (
	"context"
	"net/http"
	"time"

	"disaster-alert-be/mailer"
	"disaster-alert-be/models"
	"disaster-alert-be/store"
	"disaster-alert-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces are declared here so handlers can be tested against
// fakes; *store.ReportStore etc. satisfy them.

type ReportStore interface {
	Insert(ctx context.Context, report *models.Report) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	List(ctx context.Context, f store.ReportFilter) ([]models.Report, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus, now time.Time) error
	ListLive(ctx context.Context, since time.Time, limit int64) ([]models.Report, error)
	StatusCounts(ctx context.Context) (map[string]int64, error)
	TypeDistribution(ctx context.Context) ([]store.TypeCount, error)
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, now time.Time) error
	Verify(ctx context.Context, id primitive.ObjectID, now time.Time) error
	List(ctx context.Context, page, limit int) ([]models.User, int64, error)
	Counts(ctx context.Context) (total, verified int64, err error)
}

type ContactStore interface {
	Insert(ctx context.Context, contact *models.Contact) (string, error)
	MarkEmailResult(ctx context.Context, id primitive.ObjectID, sent bool, at time.Time) error
	List(ctx context.Context, status string, page, limit int) ([]models.Contact, int64, error)
	Counts(ctx context.Context) (total, fresh int64, err error)
}

// Mailer dispatches admin notifications. Implementations never return
// errors past this boundary; the bool is the whole outcome.
type Mailer interface {
	SendContactNotification(n mailer.Notification) bool
	AdminEmail() string
}

const dbTimeout = 10 * time.Second

// dbContext is deliberately detached from the request context: a client
// disconnect must not abort in-flight database or email operations.
func dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// requireFieldsErr validates required request fields and writes the 400
// response itself; a non-nil return tells the handler to stop.
func requireFieldsErr(c *gin.Context, values map[string]string, fields ...string) error {
	if err := utils.RequireFields(values, fields...); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}
