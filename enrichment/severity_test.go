package enrichment

import (
	"testing"

	"disaster-alert-be/models"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeverity_HighKeywordBeatsTypeDefault(t *testing.T) {
	// "major" is a high keyword; flood would otherwise default to medium.
	severity := DeriveSeverity(models.Flood, "Major flooding, evacuation ongoing")
	assert.Equal(t, models.SeverityHigh, severity)
}

func TestDeriveSeverity_MediumKeyword(t *testing.T) {
	severity := DeriveSeverity(models.OtherType, "significant damage to the bridge")
	assert.Equal(t, models.SeverityMedium, severity)
}

func TestDeriveSeverity_HighBeforeMedium(t *testing.T) {
	// Description contains keywords from both sets; high wins.
	severity := DeriveSeverity(models.Flood, "severe damage across the district")
	assert.Equal(t, models.SeverityHigh, severity)
}

func TestDeriveSeverity_TypeDefaultWhenNoKeyword(t *testing.T) {
	severity := DeriveSeverity(models.Earthquake, "minor cracks noticed")
	assert.Equal(t, models.SeverityHigh, severity)

	severity = DeriveSeverity(models.Landslide, "small slip near the road")
	assert.Equal(t, models.SeverityMedium, severity)
}

func TestDeriveSeverity_UnknownTypeDefaultsLow(t *testing.T) {
	severity := DeriveSeverity(models.OtherType, "something happened")
	assert.Equal(t, models.SeverityLow, severity)
}

func TestDeriveSeverity_CaseInsensitive(t *testing.T) {
	severity := DeriveSeverity(models.OtherType, "CATASTROPHIC failure upstream")
	assert.Equal(t, models.SeverityHigh, severity)
}
