package services

import (
	"encoding/json"
	"testing"

	"diapredict/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The canonical feature order the model was trained against.
var requiredFeatures = []string{
	"HighBP", "HighChol", "CholCheck", "BMI", "Smoker", "Stroke",
	"HeartDiseaseorAttack", "PhysActivity", "Fruits", "Veggies",
	"HvyAlcoholConsump", "AnyHealthcare", "NoDocbcCost", "GenHlth",
	"MentHlth", "PhysHlth", "DiffWalk", "Sex", "Age", "Education",
	"Income",
}

// validFeatures returns a complete feature mapping with everything at
// its healthy baseline.
func validFeatures() map[string]interface{} {
	features := make(map[string]interface{}, len(requiredFeatures))
	for _, name := range requiredFeatures {
		features[name] = 0.0
	}
	features["GenHlth"] = 2.0
	features["BMI"] = 22.0
	features["PhysActivity"] = 1.0
	return features
}

func TestValidateFeaturesComplete(t *testing.T) {
	assert.NoError(t, ValidateFeatures(validFeatures(), requiredFeatures))
}

func TestValidateFeaturesReportsEveryMissingName(t *testing.T) {
	features := validFeatures()
	delete(features, "BMI")
	delete(features, "Smoker")

	err := ValidateFeatures(features, requiredFeatures)
	require.Error(t, err)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"BMI", "Smoker"}, validationErr.Missing)
	assert.Equal(t, requiredFeatures, validationErr.Required)
}

func TestValidateFeaturesIgnoresExtraKeys(t *testing.T) {
	features := validFeatures()
	features["FavoriteColor"] = "blue"

	assert.NoError(t, ValidateFeatures(features, requiredFeatures))
}

func TestAssembleRowCanonicalOrder(t *testing.T) {
	features := validFeatures()
	features["HighBP"] = 1.0
	features["Income"] = 7.0

	row, values, err := AssembleRow(features, requiredFeatures)
	require.NoError(t, err)
	require.Len(t, row, len(requiredFeatures))

	assert.Equal(t, 1.0, row[0], "HighBP is the first column")
	assert.Equal(t, 22.0, row[3], "BMI is the fourth column")
	assert.Equal(t, 7.0, row[len(row)-1], "Income is the last column")
	assert.Equal(t, 1.0, values["HighBP"])
	assert.Equal(t, 7.0, values["Income"])
}

func TestAssembleRowConvertsNumericTypes(t *testing.T) {
	features := validFeatures()
	features["Age"] = 9
	features["BMI"] = json.Number("27.5")
	features["Sex"] = int64(1)

	row, values, err := AssembleRow(features, requiredFeatures)
	require.NoError(t, err)
	assert.Equal(t, 27.5, values["BMI"])
	assert.Equal(t, 9.0, values["Age"])
	assert.Equal(t, 1.0, row[17])
}

func TestAssembleRowRejectsNonNumericValues(t *testing.T) {
	features := validFeatures()
	features["BMI"] = "thirty-two"

	_, _, err := AssembleRow(features, requiredFeatures)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BMI")
}

func TestAssembleRowDropsUnexpectedKeys(t *testing.T) {
	features := validFeatures()
	features["Unexpected"] = 99.0

	row, values, err := AssembleRow(features, requiredFeatures)
	require.NoError(t, err)
	assert.Len(t, row, len(requiredFeatures))
	assert.NotContains(t, values, "Unexpected")
}
