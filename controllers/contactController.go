package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"disaster-alert-be/mailer"
	"disaster-alert-be/metrics"
	"disaster-alert-be/models"
	"disaster-alert-be/store"
	"disaster-alert-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// ContactController serves contact form submissions and the admin listing.
type ContactController struct {
	contacts ContactStore
	mail     Mailer
	clock    clockwork.Clock
	log      *zap.Logger
}

func NewContactController(contacts ContactStore, mail Mailer, clock clockwork.Clock, log *zap.Logger) *ContactController {
	return &ContactController{contacts: contacts, mail: mail, clock: clock, log: log}
}

// CreateContact handles POST /api/contact. The message is persisted
// first; the admin email is a synchronous single attempt whose outcome is
// recorded on the stored document but never fails the request.
func (cc *ContactController) CreateContact(c *gin.Context) {
	var input struct {
		ContactName  string `json:"contactName"`
		ContactEmail string `json:"contactEmail"`
		Subject      string `json:"subject"`
		Message      string `json:"message"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := requireFieldsErr(c, map[string]string{
		"contactName":  input.ContactName,
		"contactEmail": input.ContactEmail,
		"subject":      input.Subject,
		"message":      input.Message,
	}, "contactName", "contactEmail", "subject", "message"); err != nil {
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.ContactEmail))
	if !utils.ValidEmail(email) {
		fail(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	now := cc.clock.Now().UTC()
	contact := &models.Contact{
		Name:        strings.TrimSpace(input.ContactName),
		Email:       email,
		Subject:     strings.TrimSpace(input.Subject),
		Message:     strings.TrimSpace(input.Message),
		Timestamp:   now,
		Status:      models.ContactNew,
		Replied:     false,
		AdminEmail:  cc.mail.AdminEmail(),
		SentToAdmin: true,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	}

	ctx, cancel := dbContext()
	defer cancel()

	id, err := cc.contacts.Insert(ctx, contact)
	if err != nil {
		cc.log.Error("failed to insert contact", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to save contact message")
		return
	}

	emailSent := cc.mail.SendContactNotification(mailer.Notification{
		SenderName:  contact.Name,
		SenderEmail: contact.Email,
		Subject:     contact.Subject,
		Message:     contact.Message,
		ReceivedAt:  now,
	})
	metrics.RecordEmailDispatch(emailSent)

	// Fresh context: a slow SMTP relay may have eaten the first budget.
	mctx, mcancel := dbContext()
	defer mcancel()

	if err := cc.contacts.MarkEmailResult(mctx, contact.ID, emailSent, cc.clock.Now().UTC()); err != nil {
		// Best effort; the message itself is already stored.
		cc.log.Warn("failed to record email outcome", zap.String("id", id), zap.Error(err))
	}

	message := "Thank you for your message! It has been sent to our admin team at " + cc.mail.AdminEmail() + "."
	if emailSent {
		message += " You should receive a response within 24-48 hours."
	} else {
		message += " Your message has been saved and our admin will be notified."
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        message,
		"contactId":      id,
		"adminEmail":     cc.mail.AdminEmail(),
		"emailDelivered": emailSent,
	})
}

// GetContacts handles GET /api/contact.
func (cc *ContactController) GetContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultContactLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = store.DefaultContactLimit
	}

	ctx, cancel := dbContext()
	defer cancel()

	contacts, total, err := cc.contacts.List(ctx, c.Query("status"), page, limit)
	if err != nil {
		cc.log.Error("failed to list contacts", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch contact messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contacts": contacts,
		"total":    total,
		"page":     page,
		"limit":    limit,
		"pages":    store.Pages(total, int64(limit)),
	})
}
