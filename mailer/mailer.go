// Package mailer sends the admin-facing notification for new contact
// messages over SMTP. Delivery is best effort: every failure is caught,
// classified, logged, and reported as a false result. Nothing here ever
// blocks or reverts the stored message.
package mailer

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Notification carries the fields of a contact submission into the email.
type Notification struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
	ReceivedAt  time.Time
}

// Mailer delivers admin notifications via an SMTP relay.
type Mailer struct {
	dialer      *gomail.Dialer
	adminEmail  string
	systemEmail string
	configured  bool
	log         *zap.Logger
}

// New builds a Mailer. When no SMTP password is configured the mailer is
// disabled and every send reports false without dialing.
func New(host string, port int, username, password, adminEmail, systemEmail string, log *zap.Logger) *Mailer {
	m := &Mailer{
		adminEmail:  adminEmail,
		systemEmail: systemEmail,
		configured:  username != "" && password != "",
		log:         log,
	}
	if m.configured {
		m.dialer = gomail.NewDialer(host, port, username, password)
	} else {
		log.Warn("smtp credentials not configured, email delivery disabled")
	}
	return m
}

// AdminEmail returns the fixed admin recipient address.
func (m *Mailer) AdminEmail() string {
	return m.adminEmail
}

// SendContactNotification composes and sends the admin email for one
// contact message. Returns whether the relay accepted the message.
func (m *Mailer) SendContactNotification(n Notification) bool {
	if !m.configured {
		m.log.Warn("email not sent, smtp not configured",
			zap.String("subject", n.Subject))
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.systemEmail)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Reply-To", n.SenderEmail)
	msg.SetHeader("Subject", fmt.Sprintf("[Disaster Alert System] New Contact: %s", n.Subject))
	msg.SetBody("text/plain", textBody(n))
	msg.AddAlternative("text/html", htmlBody(n))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("failed to send admin notification",
			zap.String("class", classifyError(err)),
			zap.String("recipient", m.adminEmail),
			zap.Error(err))
		return false
	}

	m.log.Info("admin notification sent",
		zap.String("recipient", m.adminEmail),
		zap.String("subject", n.Subject))
	return true
}

// classifyError buckets transport failures for logging: authentication,
// connection, timeout, or other.
func classifyError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "authentication failed"),
		strings.Contains(msg, "username and password not accepted"),
		strings.Contains(msg, "auth"):
		return "authentication"
	case strings.Contains(msg, "timeout"),
		strings.Contains(msg, "deadline exceeded"):
		return "timeout"
	case strings.Contains(msg, "connection"),
		strings.Contains(msg, "connect"),
		strings.Contains(msg, "no such host"):
		return "connection"
	default:
		return "other"
	}
}

func textBody(n Notification) string {
	return fmt.Sprintf(`New Contact Message - Disaster Alert System

Contact Details:
Name: %s
Email: %s
Subject: %s
Time: %s UTC

Message:
%s

Reply directly to this email to respond to the sender.
`, n.SenderName, n.SenderEmail, n.Subject, n.ReceivedAt.UTC().Format("2006-01-02 15:04:05"), n.Message)
}

func htmlBody(n Notification) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #1565C0;">New Contact Message</h2>
  <p style="color: #666;">Disaster Alert System</p>
  <h3>Contact Details</h3>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
  <p><strong>Subject:</strong> %s</p>
  <p><strong>Time:</strong> %s UTC</p>
  <h3>Message</h3>
  <div style="background: #f8f9fa; padding: 15px; border-left: 4px solid #1565C0;">
    <p style="margin: 0; line-height: 1.6;">%s</p>
  </div>
  <p style="font-size: 14px; color: #1565C0;">Reply directly to this email to respond to %s.</p>
</div>`,
		n.SenderName, n.SenderEmail, n.SenderEmail, n.Subject,
		n.ReceivedAt.UTC().Format("2006-01-02 15:04:05"), n.Message, n.SenderName)
}
