package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact is the trained-model bundle loaded once at process start
// and shared read-only across all requests. No request may mutate it.
type Artifact struct {
	ModelName         string
	Model             Classifier
	Scaler            *StandardScaler
	Features          []string
	FeatureImportance map[string]float64
	Metrics           map[string]float64
}

// artifactFile mirrors the JSON document exported at training time,
// replacing the original joblib bundle.
type artifactFile struct {
	ModelName         string             `json:"model_name"`
	ModelType         string             `json:"model_type"`
	Features          []string           `json:"features"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
	Metrics           map[string]float64 `json:"metrics"`
	Scaler            struct {
		Mean  []float64 `json:"mean"`
		Scale []float64 `json:"scale"`
	} `json:"scaler"`
	Booster *struct {
		BaseScore float64      `json:"base_score"`
		Trees     [][]TreeNode `json:"trees"`
	} `json:"booster,omitempty"`
	Logistic *struct {
		Coefficients []float64 `json:"coefficients"`
		Intercept    float64   `json:"intercept"`
	} `json:"logistic,omitempty"`
}

// LoadArtifact reads the model artifact from disk and wires the
// matching backend behind the Classifier interface.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if len(file.Features) == 0 {
		return nil, fmt.Errorf("model artifact has no feature list")
	}

	scaler, err := NewStandardScaler(file.Scaler.Mean, file.Scaler.Scale)
	if err != nil {
		return nil, fmt.Errorf("invalid scaler parameters: %w", err)
	}
	if len(file.Scaler.Mean) != len(file.Features) {
		return nil, fmt.Errorf("scaler has %d columns, feature list has %d", len(file.Scaler.Mean), len(file.Features))
	}

	var scorer RawScorer
	switch file.ModelType {
	case "gbt":
		if file.Booster == nil {
			return nil, fmt.Errorf("model type gbt but no booster section")
		}
		scorer, err = NewTreeEnsemble(len(file.Features), file.Booster.BaseScore, file.Booster.Trees)
	case "logistic":
		if file.Logistic == nil {
			return nil, fmt.Errorf("model type logistic but no logistic section")
		}
		scorer, err = NewLogisticModel(file.Logistic.Coefficients, file.Logistic.Intercept)
	default:
		return nil, fmt.Errorf("unsupported model type: %q", file.ModelType)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid model parameters: %w", err)
	}

	return &Artifact{
		ModelName:         file.ModelName,
		Model:             NewBoosterAdapter(scorer),
		Scaler:            scaler,
		Features:          file.Features,
		FeatureImportance: file.FeatureImportance,
		Metrics:           file.Metrics,
	}, nil
}
