package ml

import (
	"fmt"
	"math"
)

// Classifier is the uniform capability every model backend is adapted
// to. Rows of the input matrix are samples in the canonical feature
// order; Predict returns one {0,1} label per row.
type Classifier interface {
	Predict(x [][]float64) ([]int, error)
}

// ProbabilityClassifier is the optional capability of producing a
// class distribution. Callers type-assert for it and degrade
// gracefully when absent.
type ProbabilityClassifier interface {
	PredictProba(x [][]float64) ([][]float64, error)
}

// RawScorer is a backend that only exposes a raw scoring function: one
// positive-class probability per row (e.g. a gradient-boosting margin
// pushed through the logistic link). BoosterAdapter turns it into a
// full classifier.
type RawScorer interface {
	Score(x [][]float64) ([]float64, error)
}

// BoosterAdapter wraps a RawScorer to provide predict/predict_proba
// semantics: the label thresholds the positive-class probability at
// 0.5 and the probability matrix is [1-p, p] per row.
type BoosterAdapter struct {
	scorer RawScorer
}

// NewBoosterAdapter adapts a raw scoring backend into a Classifier.
func NewBoosterAdapter(scorer RawScorer) *BoosterAdapter {
	return &BoosterAdapter{scorer: scorer}
}

// Predict returns class labels by thresholding the positive-class
// probability at 0.5; exactly 0.5 classifies as at-risk.
func (a *BoosterAdapter) Predict(x [][]float64) ([]int, error) {
	proba, err := a.scorer.Score(x)
	if err != nil {
		return nil, err
	}

	labels := make([]int, len(proba))
	for i, p := range proba {
		if p >= 0.5 {
			labels[i] = 1
		}
	}
	return labels, nil
}

// PredictProba returns one [p_no, p_yes] row per sample.
func (a *BoosterAdapter) PredictProba(x [][]float64) ([][]float64, error) {
	proba, err := a.scorer.Score(x)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(proba))
	for i, p := range proba {
		out[i] = []float64{1 - p, p}
	}
	return out, nil
}

// sigmoid maps a margin (log-odds) to a probability.
func sigmoid(margin float64) float64 {
	return 1.0 / (1.0 + math.Exp(-margin))
}

// checkMatrix rejects shapes the scorers cannot handle.
func checkMatrix(x [][]float64, columns int) error {
	if len(x) == 0 {
		return fmt.Errorf("empty input matrix")
	}
	for i, row := range x {
		if len(row) != columns {
			return fmt.Errorf("row %d has %d features, expected %d", i, len(row), columns)
		}
	}
	return nil
}
