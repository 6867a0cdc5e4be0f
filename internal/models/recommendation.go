package models

// Recommendations is the categorized guidance accompanying a
// prediction. Entries are appended in fixed rule order, so identical
// input always yields identical output. AIGenerated stays false: all
// text comes from fixed rule tables, nothing is generated.
type Recommendations struct {
	AIGenerated   bool     `json:"ai_generated"`
	EmergencyNote string   `json:"emergency_note"`
	Lifestyle     []string `json:"lifestyle"`
	Medical       []string `json:"medical"`
	Nutrition     []string `json:"nutrition"`
	Exercise      []string `json:"exercise"`
}
