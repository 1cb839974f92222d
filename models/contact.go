package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactStatus enum
type ContactStatus string

const (
	ContactNew     ContactStatus = "new"
	ContactReplied ContactStatus = "replied"
)

// Contact represents an inbound support/contact submission. The email
// dispatch outcome is recorded on the same document after it is stored.
type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Subject     string             `bson:"subject" json:"subject"`
	Message     string             `bson:"message" json:"message"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	Status      ContactStatus      `bson:"status" json:"status"`
	Replied     bool               `bson:"replied" json:"replied"`
	AdminEmail  string             `bson:"adminEmail" json:"adminEmail"`
	SentToAdmin bool               `bson:"sentToAdmin" json:"sentToAdmin"`
	EmailSent   bool               `bson:"emailSent" json:"emailSent"`
	EmailSentAt *time.Time         `bson:"emailSentAt,omitempty" json:"emailSentAt,omitempty"`
	IPAddress   string             `bson:"ipAddress,omitempty" json:"-"`
	UserAgent   string             `bson:"userAgent,omitempty" json:"-"`
}
