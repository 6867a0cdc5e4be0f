package services

import (
	"fmt"

	"diapredict/internal/models"
)

// riskRule inspects the raw features and either emits one risk factor
// or nothing. Rules are independent of each other.
type riskRule func(features map[string]float64) *models.RiskFactor

// riskRules is evaluated in this exact order; the order of the emitted
// factors is part of the API contract.
var riskRules = []riskRule{
	highBloodPressureRule,
	highCholesterolRule,
	bmiRule,
	heartDiseaseRule,
	inactivityRule,
	smokingRule,
	generalHealthRule,
}

// ExtractRiskFactors derives severity-tagged clinical concerns from
// the raw (unscaled) feature values. Missing keys fall back to
// defaults instead of erroring, so the extractor is safe to call with
// partial data.
func ExtractRiskFactors(features map[string]float64) []models.RiskFactor {
	factors := []models.RiskFactor{}
	for _, rule := range riskRules {
		if f := rule(features); f != nil {
			factors = append(factors, *f)
		}
	}
	return factors
}

func highBloodPressureRule(features map[string]float64) *models.RiskFactor {
	if featureValue(features, "HighBP", 0) != 1 {
		return nil
	}
	return &models.RiskFactor{
		Factor:      "High Blood Pressure",
		Severity:    models.SeverityHigh,
		Description: "Elevated blood pressure increases diabetes risk",
	}
}

func highCholesterolRule(features map[string]float64) *models.RiskFactor {
	if featureValue(features, "HighChol", 0) != 1 {
		return nil
	}
	return &models.RiskFactor{
		Factor:      "High Cholesterol",
		Severity:    models.SeverityHigh,
		Description: "High cholesterol is associated with diabetes",
	}
}

// bmiRule emits at most one BMI factor: obesity takes precedence over
// overweight.
func bmiRule(features map[string]float64) *models.RiskFactor {
	bmi := featureValue(features, "BMI", 0)
	switch {
	case bmi >= 30:
		return &models.RiskFactor{
			Factor:      fmt.Sprintf("High BMI (%g)", bmi),
			Severity:    models.SeverityCritical,
			Description: "Obesity significantly increases diabetes risk",
		}
	case bmi >= 25:
		return &models.RiskFactor{
			Factor:      fmt.Sprintf("Overweight BMI (%g)", bmi),
			Severity:    models.SeverityModerate,
			Description: "Being overweight increases diabetes risk",
		}
	default:
		return nil
	}
}

func heartDiseaseRule(features map[string]float64) *models.RiskFactor {
	if featureValue(features, "HeartDiseaseorAttack", 0) != 1 {
		return nil
	}
	return &models.RiskFactor{
		Factor:      "Heart Disease",
		Severity:    models.SeverityHigh,
		Description: "Cardiovascular disease is linked to diabetes",
	}
}

func inactivityRule(features map[string]float64) *models.RiskFactor {
	if featureValue(features, "PhysActivity", 0) != 0 {
		return nil
	}
	return &models.RiskFactor{
		Factor:      "Low Physical Activity",
		Severity:    models.SeverityModerate,
		Description: "Lack of exercise increases diabetes risk",
	}
}

func smokingRule(features map[string]float64) *models.RiskFactor {
	if featureValue(features, "Smoker", 0) != 1 {
		return nil
	}
	return &models.RiskFactor{
		Factor:      "Smoking",
		Severity:    models.SeverityHigh,
		Description: "Smoking increases diabetes risk by 30-40%",
	}
}

func generalHealthRule(features map[string]float64) *models.RiskFactor {
	if featureValue(features, "GenHlth", 3) < 4 {
		return nil
	}
	return &models.RiskFactor{
		Factor:      "Poor General Health",
		Severity:    models.SeverityModerate,
		Description: "Poor health status correlates with diabetes",
	}
}

func featureValue(features map[string]float64, name string, fallback float64) float64 {
	if v, ok := features[name]; ok {
		return v
	}
	return fallback
}
