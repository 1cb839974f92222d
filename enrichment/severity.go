package enrichment

import (
	"strings"

	"disaster-alert-be/models"
)

// Keyword scan precedence: high before medium, first match wins. Slices
// keep the scan order deterministic.
var highSeverityKeywords = []string{
	"major", "severe", "massive", "catastrophic", "emergency",
	"critical", "death", "casualties", "evacuation",
}

var mediumSeverityKeywords = []string{
	"moderate", "significant", "considerable", "damage", "injured", "affected",
}

var typeDefaultSeverity = map[models.DisasterType]models.Severity{
	models.Earthquake: models.SeverityHigh,
	models.Cyclone:    models.SeverityHigh,
	models.Fire:       models.SeverityHigh,
	models.Flood:      models.SeverityMedium,
	models.Landslide:  models.SeverityMedium,
}

// DeriveSeverity labels a report from its description keywords, falling
// back to a per-disaster-type default when no keyword matches.
func DeriveSeverity(disasterType models.DisasterType, description string) models.Severity {
	desc := strings.ToLower(description)

	for _, kw := range highSeverityKeywords {
		if strings.Contains(desc, kw) {
			return models.SeverityHigh
		}
	}
	for _, kw := range mediumSeverityKeywords {
		if strings.Contains(desc, kw) {
			return models.SeverityMedium
		}
	}

	if severity, ok := typeDefaultSeverity[disasterType]; ok {
		return severity
	}
	return models.SeverityLow
}
