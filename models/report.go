package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DisasterType enum
type DisasterType string

const (
	Flood      DisasterType = "flood"
	Fire       DisasterType = "fire"
	Earthquake DisasterType = "earthquake"
	Cyclone    DisasterType = "cyclone"
	Landslide  DisasterType = "landslide"
	OtherType  DisasterType = "other"
)

// ValidDisasterType reports whether s is one of the known disaster types.
func ValidDisasterType(s string) bool {
	switch DisasterType(s) {
	case Flood, Fire, Earthquake, Cyclone, Landslide, OtherType:
		return true
	}
	return false
}

// ReportStatus enum
type ReportStatus string

const (
	StatusPending   ReportStatus = "pending"
	StatusVerified  ReportStatus = "verified"
	StatusResolved  ReportStatus = "resolved"
	StatusDismissed ReportStatus = "dismissed"
)

// Valid reports whether s is a member of the status set.
func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

// VerifiedFlag returns the verified flag implied by the status:
// true for verified and resolved, false otherwise.
func (s ReportStatus) VerifiedFlag() bool {
	return s == StatusVerified || s == StatusResolved
}

// Severity enum
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Coordinates is a lat/lng pair attached to a report.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Report represents a disaster incident submitted by a citizen
type Report struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Location     string             `bson:"location" json:"location"`
	DisasterType DisasterType       `bson:"disasterType" json:"disasterType"`
	Description  string             `bson:"description" json:"description"`
	Coordinates  *Coordinates       `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Photos       []string           `bson:"photos,omitempty" json:"photos,omitempty"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
	Status       ReportStatus       `bson:"status" json:"status"`
	Verified     bool               `bson:"verified" json:"verified"`
	Severity     Severity           `bson:"severity" json:"severity"`
	ContactInfo  string             `bson:"contactInfo,omitempty" json:"contactInfo,omitempty"`
	ReporterIP   string             `bson:"reporterIP,omitempty" json:"-"`
	UserAgent    string             `bson:"userAgent,omitempty" json:"-"`
	LastUpdated  *time.Time         `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}
