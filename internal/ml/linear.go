package ml

import "fmt"

// LogisticModel scores samples with exported logistic-regression
// weights: sigmoid(w.x + b).
type LogisticModel struct {
	coefficients []float64
	intercept    float64
}

// NewLogisticModel returns a scorer over the given weights.
func NewLogisticModel(coefficients []float64, intercept float64) (*LogisticModel, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("logistic model has no coefficients")
	}
	return &LogisticModel{coefficients: coefficients, intercept: intercept}, nil
}

// Score returns the positive-class probability for each row.
func (m *LogisticModel) Score(x [][]float64) ([]float64, error) {
	if err := checkMatrix(x, len(m.coefficients)); err != nil {
		return nil, err
	}

	proba := make([]float64, len(x))
	for i, row := range x {
		margin := m.intercept
		for j, w := range m.coefficients {
			margin += w * row[j]
		}
		proba[i] = sigmoid(margin)
	}
	return proba, nil
}
