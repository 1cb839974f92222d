package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"disaster-alert-be/mailer"
	"disaster-alert-be/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AdminController serves the aggregate/admin read endpoints plus the
// health and email diagnostics.
type AdminController struct {
	reports     ReportStore
	users       UserStore
	contacts    ContactStore
	mail        Mailer
	db          Pinger
	systemEmail string
	log         *zap.Logger
}

func NewAdminController(reports ReportStore, users UserStore, contacts ContactStore, mail Mailer, db Pinger, systemEmail string, log *zap.Logger) *AdminController {
	return &AdminController{
		reports:     reports,
		users:       users,
		contacts:    contacts,
		mail:        mail,
		db:          db,
		systemEmail: systemEmail,
		log:         log,
	}
}

// GetStats handles GET /api/stats.
func (a *AdminController) GetStats(c *gin.Context) {
	ctx, cancel := dbContext()
	defer cancel()

	reportCounts, err := a.reports.StatusCounts(ctx)
	if err != nil {
		a.log.Error("failed to count reports", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	totalUsers, verifiedUsers, err := a.users.Counts(ctx)
	if err != nil {
		a.log.Error("failed to count users", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	totalContacts, newContacts, err := a.contacts.Counts(ctx)
	if err != nil {
		a.log.Error("failed to count contacts", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	types, err := a.reports.TypeDistribution(ctx)
	if err != nil {
		a.log.Error("failed to aggregate disaster types", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"reports": gin.H{
				"total":    reportCounts["total"],
				"pending":  reportCounts["pending"],
				"verified": reportCounts["verified"],
				"resolved": reportCounts["resolved"],
			},
			"users": gin.H{
				"total":    totalUsers,
				"verified": verifiedUsers,
			},
			"contacts": gin.H{
				"total": totalContacts,
				"new":   newContacts,
			},
			"disaster_types": types,
		},
	})
}

// GetUsers handles GET /api/users. Password hashes never leave the store.
func (a *AdminController) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultUserLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = store.DefaultUserLimit
	}

	ctx, cancel := dbContext()
	defer cancel()

	users, total, err := a.users.List(ctx, page, limit)
	if err != nil {
		a.log.Error("failed to list users", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"total":   total,
		"page":    page,
		"limit":   limit,
		"pages":   store.Pages(total, int64(limit)),
	})
}

// GetAdminEmail handles GET /api/admin/email.
func (a *AdminController) GetAdminEmail(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"adminEmail":  a.mail.AdminEmail(),
		"systemEmail": a.systemEmail,
		"contactNote": "All contact form messages are sent directly to our admin team",
	})
}

// TestEmail handles POST /api/test-email: dispatches a fixed diagnostic
// notification so operators can verify the SMTP configuration.
func (a *AdminController) TestEmail(c *gin.Context) {
	sent := a.mail.SendContactNotification(mailer.Notification{
		SenderName:  "System Test",
		SenderEmail: "test@system.local",
		Subject:     "Email Configuration Test",
		Message:     "This is a test email to verify the email configuration is working correctly.",
		ReceivedAt:  time.Now().UTC(),
	})

	if !sent {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":        false,
			"error":          "Failed to send test email - check server logs for details",
			"emailDelivered": false,
			"adminEmail":     a.mail.AdminEmail(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Test email sent successfully to " + a.mail.AdminEmail(),
		"emailDelivered": true,
		"adminEmail":     a.mail.AdminEmail(),
	})
}

// HealthCheck handles GET /api/health.
func (a *AdminController) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.log.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Application and database are healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "MongoDB connected",
	})
}
