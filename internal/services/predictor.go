package services

import (
	"time"

	"diapredict/internal/ml"
	"diapredict/internal/models"
)

// PredictionService is the pipeline contract the HTTP layer depends
// on. Implementations must never let a pipeline error escape as a
// panic or untyped failure.
type PredictionService interface {
	Predict(features map[string]interface{}) (*models.PredictionResponse, error)
	BatchPredict(patients []map[string]interface{}) *models.BatchPredictionResponse
}

// Predictor sequences validation, scaling, classification, risk-factor
// extraction and recommendation synthesis over the shared read-only
// model artifact. The whole pipeline is synchronous, in-process and
// touches only request-local state, so no locking is needed.
type Predictor struct {
	artifact *ml.Artifact
}

// NewPredictor wires the orchestrator to a loaded model artifact.
func NewPredictor(artifact *ml.Artifact) *Predictor {
	return &Predictor{artifact: artifact}
}

// Predict runs the single-prediction pipeline. It fails fast with a
// *models.ValidationError when required features are missing and wraps
// any scaling/classification failure in a *models.InferenceError.
func (p *Predictor) Predict(features map[string]interface{}) (*models.PredictionResponse, error) {
	if err := ValidateFeatures(features, p.artifact.Features); err != nil {
		return nil, err
	}

	row, values, err := AssembleRow(features, p.artifact.Features)
	if err != nil {
		return nil, &models.InferenceError{Err: err}
	}

	labels, proba, err := p.classify([][]float64{row})
	if err != nil {
		return nil, &models.InferenceError{Err: err}
	}

	prediction := labels[0]
	riskFactors := ExtractRiskFactors(values)

	resp := &models.PredictionResponse{
		Prediction:      prediction,
		PredictionLabel: riskLevel(prediction),
		RiskFactors:     riskFactors,
		Recommendations: GenerateRecommendations(values, prediction, riskFactors),
		ModelName:       p.artifact.ModelName,
		Timestamp:       time.Now(),
	}

	if proba != nil {
		dist := proba[0]
		resp.Probabilities = models.Probabilities{
			NoDiabetes: &dist[0],
			Diabetes:   &dist[1],
		}
		resp.Confidence = floatPtr(maxOf(dist))
		resp.RiskPercentage = floatPtr(dist[1] * 100)
	}

	return resp, nil
}

// BatchPredict attempts every patient independently: an item that
// fails yields a BatchItem carrying only its error, and never aborts
// the siblings. There is no upfront validation against the canonical
// feature list.
func (p *Predictor) BatchPredict(patients []map[string]interface{}) *models.BatchPredictionResponse {
	items := make([]models.BatchItem, 0, len(patients))
	for i, patient := range patients {
		items = append(items, p.batchItem(i+1, patient))
	}

	return &models.BatchPredictionResponse{
		TotalPatients: len(patients),
		Predictions:   items,
		Timestamp:     time.Now(),
	}
}

func (p *Predictor) batchItem(patientID int, features map[string]interface{}) models.BatchItem {
	row, _, err := AssembleRow(features, p.artifact.Features)
	if err != nil {
		return models.BatchItem{PatientID: patientID, Error: err.Error()}
	}

	labels, proba, err := p.classify([][]float64{row})
	if err != nil {
		return models.BatchItem{PatientID: patientID, Error: err.Error()}
	}

	item := models.BatchItem{
		PatientID:  patientID,
		Prediction: &labels[0],
		RiskLevel:  riskLevel(labels[0]),
	}
	if proba != nil {
		dist := proba[0]
		item.Confidence = floatPtr(maxOf(dist))
		item.RiskPercentage = floatPtr(dist[1] * 100)
	}
	return item
}

// classify scales the rows and runs the model, including the
// probability capability when the backend exposes it.
func (p *Predictor) classify(rows [][]float64) ([]int, [][]float64, error) {
	scaled, err := p.artifact.Scaler.Transform(rows)
	if err != nil {
		return nil, nil, err
	}

	labels, err := p.artifact.Model.Predict(scaled)
	if err != nil {
		return nil, nil, err
	}

	var proba [][]float64
	if pc, ok := p.artifact.Model.(ml.ProbabilityClassifier); ok {
		proba, err = pc.PredictProba(scaled)
		if err != nil {
			return nil, nil, err
		}
	}
	return labels, proba, nil
}

func riskLevel(prediction int) string {
	if prediction == 1 {
		return "High Risk"
	}
	return "Low Risk"
}

func maxOf(values []float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func floatPtr(v float64) *float64 {
	return &v
}
