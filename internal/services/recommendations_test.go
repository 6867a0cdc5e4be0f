package services

import (
	"strings"
	"testing"

	"diapredict/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criticalFactors(n int) []models.RiskFactor {
	factors := make([]models.RiskFactor, n)
	for i := range factors {
		factors[i] = models.RiskFactor{Factor: "x", Severity: models.SeverityCritical}
	}
	return factors
}

func TestRecommendationsNeverAIGenerated(t *testing.T) {
	rec := GenerateRecommendations(baselineValues(), 1, nil)
	assert.False(t, rec.AIGenerated)
}

func TestExerciseEntriesWhenInactive(t *testing.T) {
	values := baselineValues()
	values["PhysActivity"] = 0

	rec := GenerateRecommendations(values, 0, nil)
	assert.Len(t, rec.Exercise, 2)
}

func TestExerciseFallbackWhenActive(t *testing.T) {
	rec := GenerateRecommendations(baselineValues(), 0, nil)
	require.Len(t, rec.Exercise, 3)
	assert.Contains(t, rec.Exercise[0], "Walking")
}

func TestExerciseNeverEmpty(t *testing.T) {
	for _, activity := range []float64{0, 1} {
		values := baselineValues()
		values["PhysActivity"] = activity
		rec := GenerateRecommendations(values, 1, nil)
		assert.NotEmpty(t, rec.Exercise)
	}
}

func TestNutritionAlwaysHasGenericEntries(t *testing.T) {
	rec := GenerateRecommendations(baselineValues(), 0, nil)
	require.Len(t, rec.Nutrition, 4)
	assert.Contains(t, rec.Nutrition[0], "fiber")
	assert.Contains(t, rec.Nutrition[3], "hydrated")
}

func TestBMIRecommendationEmbedsValue(t *testing.T) {
	values := baselineValues()
	values["BMI"] = 27.5

	rec := GenerateRecommendations(values, 0, nil)
	require.Len(t, rec.Lifestyle, 1)
	assert.Contains(t, rec.Lifestyle[0], "27.5")
	// the BMI nutrition entry precedes the generic four
	require.Len(t, rec.Nutrition, 5)
	assert.Contains(t, rec.Nutrition[0], "calorie deficit")
}

func TestSmokerLifestyleEntry(t *testing.T) {
	values := baselineValues()
	values["Smoker"] = 1

	rec := GenerateRecommendations(values, 0, nil)
	require.Len(t, rec.Lifestyle, 1)
	assert.Contains(t, rec.Lifestyle[0], "Quit smoking")
}

func TestMedicalEntriesOrder(t *testing.T) {
	values := baselineValues()
	values["HighBP"] = 1
	values["HighChol"] = 1

	rec := GenerateRecommendations(values, 0, nil)
	require.Len(t, rec.Medical, 5)
	assert.Contains(t, rec.Medical[0], "blood pressure")
	assert.Contains(t, rec.Medical[1], "cholesterol")
	assert.Contains(t, rec.Medical[2], "HbA1c")
}

func TestMedicalGenericEntriesAlwaysPresent(t *testing.T) {
	rec := GenerateRecommendations(baselineValues(), 0, nil)
	require.Len(t, rec.Medical, 3)
	assert.Contains(t, rec.Medical[0], "HbA1c")
}

func TestEmergencyNoteSelection(t *testing.T) {
	tests := []struct {
		name       string
		prediction int
		factors    []models.RiskFactor
		want       string
	}{
		{"high priority", 1, criticalFactors(3), "HIGH PRIORITY"},
		{"elevated with two criticals", 1, criticalFactors(2), "ELEVATED RISK"},
		{"elevated without factors", 1, nil, "ELEVATED RISK"},
		{"maintain even with criticals", 0, criticalFactors(4), "MAINTAIN HEALTHY HABITS"},
		{"maintain healthy", 0, nil, "MAINTAIN HEALTHY HABITS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := GenerateRecommendations(baselineValues(), tt.prediction, tt.factors)
			assert.True(t, strings.Contains(rec.EmergencyNote, tt.want),
				"note %q must contain %q", rec.EmergencyNote, tt.want)
		})
	}
}

func TestEmergencyNoteCountsOnlyCritical(t *testing.T) {
	factors := append(criticalFactors(2),
		models.RiskFactor{Factor: "x", Severity: models.SeverityHigh},
		models.RiskFactor{Factor: "y", Severity: models.SeverityHigh})

	rec := GenerateRecommendations(baselineValues(), 1, factors)
	assert.Contains(t, rec.EmergencyNote, "ELEVATED RISK")
}

func TestRecommendationsDeterministic(t *testing.T) {
	values := baselineValues()
	values["Smoker"] = 1
	values["BMI"] = 31
	values["HighBP"] = 1
	factors := ExtractRiskFactors(values)

	first := GenerateRecommendations(values, 1, factors)
	second := GenerateRecommendations(values, 1, factors)
	assert.Equal(t, first, second)
}
