package models

import "time"

// PredictionRequest is the body of POST /predict. Feature values are
// decoded as raw JSON values; numeric conversion happens in the
// pipeline so a bad value surfaces as an inference error rather than a
// bind failure.
type PredictionRequest struct {
	Features map[string]interface{} `json:"features"`
}

// BatchPredictionRequest is the body of POST /batch-predict.
type BatchPredictionRequest struct {
	Patients []map[string]interface{} `json:"patients"`
}

// Probabilities holds the class distribution for one prediction.
// Fields are nil when the model does not expose probabilities.
type Probabilities struct {
	NoDiabetes *float64 `json:"no_diabetes"`
	Diabetes   *float64 `json:"diabetes"`
}

// PredictionResponse is the full result of a single prediction.
type PredictionResponse struct {
	Prediction      int             `json:"prediction" example:"1"`
	PredictionLabel string          `json:"prediction_label" example:"High Risk"`
	RiskPercentage  *float64        `json:"risk_percentage" example:"78.5"`
	Confidence      *float64        `json:"confidence" example:"0.785"`
	Probabilities   Probabilities   `json:"probabilities"`
	RiskFactors     []RiskFactor    `json:"risk_factors"`
	Recommendations Recommendations `json:"recommendations"`
	ModelName       string          `json:"model_name" example:"XGBoost"`
	Timestamp       time.Time       `json:"timestamp"`
}

// BatchItem is one patient's outcome within a batch request. PatientID
// is the 1-based position in the submitted list. Either the prediction
// fields or Error is populated, never both.
type BatchItem struct {
	PatientID      int      `json:"patient_id" example:"1"`
	Prediction     *int     `json:"prediction,omitempty" example:"0"`
	RiskLevel      string   `json:"risk_level,omitempty" example:"Low Risk"`
	Confidence     *float64 `json:"confidence,omitempty" example:"0.91"`
	RiskPercentage *float64 `json:"risk_percentage,omitempty" example:"9.0"`
	Error          string   `json:"error,omitempty"`
}

// BatchPredictionResponse reports every submitted patient, failed or
// not. TotalPatients always equals the input count.
type BatchPredictionResponse struct {
	TotalPatients int         `json:"total_patients" example:"3"`
	Predictions   []BatchItem `json:"predictions"`
	Timestamp     time.Time   `json:"timestamp"`
}
