package models

// Risk factor severities, from least to most concerning.
const (
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// RiskFactor is a clinical concern derived from the submitted
// features. Produced fresh per request, never persisted.
type RiskFactor struct {
	Factor      string `json:"factor" example:"High Blood Pressure"`
	Severity    string `json:"severity" example:"high"`
	Description string `json:"description" example:"Elevated blood pressure increases diabetes risk"`
}
