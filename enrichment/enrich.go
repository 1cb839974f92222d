package enrichment

import "disaster-alert-be/models"

// Apply returns a copy of the report with display fields filled in:
// coordinates resolved from the location when the report has none, and
// severity re-derived from type and description. The stored document is
// never mutated.
func Apply(report models.Report) models.Report {
	if report.Coordinates == nil {
		coords := ResolveCoordinates(report.Location)
		report.Coordinates = &coords
	}
	report.Severity = DeriveSeverity(report.DisasterType, report.Description)
	return report
}
