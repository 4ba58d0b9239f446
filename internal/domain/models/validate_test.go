package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDraftAcceptsValidSeedProduction(t *testing.T) {
	draft := SeedProduction{
		SeedType:   "Corn",
		Quantity:   100,
		Price:      2.50,
		ExpiryDate: "2025-12-31",
	}
	assert.Empty(t, ValidateDraft(draft))
}

func TestValidateDraftAcceptsZeroQuantityAndPrice(t *testing.T) {
	draft := SeedProduction{SeedType: "Beans", ExpiryDate: "2026-01-15"}
	assert.Empty(t, ValidateDraft(draft), "zero is non-negative, not missing")
}

func TestValidateDraftRejectsBadSeedProduction(t *testing.T) {
	draft := SeedProduction{
		SeedType:   "",
		Quantity:   -1,
		Price:      -0.5,
		ExpiryDate: "31/12/2025",
	}

	violations := ValidateDraft(draft)
	require.Len(t, violations, 4)

	byField := map[string]FieldViolation{}
	for _, v := range violations {
		byField[v.Field] = v
	}
	assert.Equal(t, "required", byField["SeedType"].Constraint)
	assert.Equal(t, "min", byField["Quantity"].Constraint)
	assert.Equal(t, "min", byField["Price"].Constraint)
	assert.Equal(t, "datetime", byField["ExpiryDate"].Constraint)
}

func TestValidateDraftRejectsBadFarmer(t *testing.T) {
	violations := ValidateDraft(Farmer{Email: "not-an-email"})
	require.NotEmpty(t, violations)

	fields := map[string]bool{}
	for _, v := range violations {
		fields[v.Field] = true
	}
	assert.True(t, fields["TaxID"])
	assert.True(t, fields["Name"])
	assert.True(t, fields["Email"])
}

func TestViolationSummaryJoinsMessages(t *testing.T) {
	violations := []FieldViolation{
		{Field: "SeedType", Message: "SeedType is required"},
		{Field: "ExpiryDate", Message: "ExpiryDate must be a date in YYYY-MM-DD format"},
	}
	summary := ViolationSummary(violations)
	assert.Equal(t, "SeedType is required; ExpiryDate must be a date in YYYY-MM-DD format", summary)
	assert.Empty(t, ViolationSummary(nil))
}
