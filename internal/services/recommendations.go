package services

import (
	"fmt"

	"diapredict/internal/models"
)

// Emergency notes; exactly one is attached to every response.
const (
	noteHighPriority = "⚠️ HIGH PRIORITY: Multiple critical risk factors detected. Consult a healthcare provider immediately."
	noteElevatedRisk = "⚠️ ELEVATED RISK: Schedule an appointment with your healthcare provider for comprehensive evaluation."
	noteMaintain     = "✅ MAINTAIN HEALTHY HABITS: Continue preventive measures and regular health monitoring."
)

// GenerateRecommendations synthesizes evidence-based guidance from the
// raw features, the prediction and the extracted risk factors. Every
// entry is templated from fixed rule tables, evaluated in a fixed
// order, so output is deterministic and auditable. No text is ever
// generated by an external service.
func GenerateRecommendations(features map[string]float64, prediction int, riskFactors []models.RiskFactor) models.Recommendations {
	rec := models.Recommendations{
		AIGenerated:   false,
		EmergencyNote: emergencyNote(prediction, riskFactors),
		Lifestyle:     []string{},
		Medical:       []string{},
		Nutrition:     []string{},
		Exercise:      []string{},
	}

	if featureValue(features, "Smoker", 0) == 1 {
		rec.Lifestyle = append(rec.Lifestyle,
			"🚭 Quit smoking - reduces diabetes risk by 30-40% within 5 years")
	}

	if featureValue(features, "PhysActivity", 0) == 0 {
		rec.Exercise = append(rec.Exercise,
			"🏃 Start with 30 minutes of moderate exercise 5 days per week",
			"💪 Include both cardio and strength training exercises")
	}

	if bmi := featureValue(features, "BMI", 0); bmi >= 25 {
		rec.Lifestyle = append(rec.Lifestyle,
			fmt.Sprintf("⚖️ Weight management: Target BMI < 25 (current: %g)", bmi))
		rec.Nutrition = append(rec.Nutrition,
			"🥗 Follow a balanced diet with calorie deficit for weight loss")
	}

	// Generic nutrition guidance applies regardless of other triggers.
	rec.Nutrition = append(rec.Nutrition,
		"🍎 Increase fiber intake: whole grains, vegetables, fruits",
		"🥤 Limit sugary drinks and processed foods",
		"🍽️ Practice portion control and regular meal timing",
		"💧 Stay hydrated: 8-10 glasses of water daily")

	if featureValue(features, "HighBP", 0) == 1 {
		rec.Medical = append(rec.Medical,
			"🩺 Monitor blood pressure regularly, target <130/80 mmHg")
	}

	if featureValue(features, "HighChol", 0) == 1 {
		rec.Medical = append(rec.Medical,
			"💊 Monitor cholesterol levels, consider statin therapy if needed")
	}

	rec.Medical = append(rec.Medical,
		"🔬 Get HbA1c test every 3-6 months",
		"👨‍⚕️ Schedule regular check-ups with healthcare provider",
		"📊 Monitor fasting blood glucose weekly")

	// The exercise category must never come back empty.
	if len(rec.Exercise) == 0 {
		rec.Exercise = append(rec.Exercise,
			"🚶 Walking: 10,000 steps daily",
			"🏋️ Resistance training: 2-3 times per week",
			"🧘 Yoga or stretching: stress management and flexibility")
	}

	return rec
}

func emergencyNote(prediction int, riskFactors []models.RiskFactor) string {
	critical := 0
	for _, rf := range riskFactors {
		if rf.Severity == models.SeverityCritical {
			critical++
		}
	}

	switch {
	case prediction == 1 && critical > 2:
		return noteHighPriority
	case prediction == 1:
		return noteElevatedRisk
	default:
		return noteMaintain
	}
}
