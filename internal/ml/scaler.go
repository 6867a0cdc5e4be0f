package ml

import "fmt"

// StandardScaler applies the feature-scaling transform the model was
// trained with: (x - mean) / scale per column. Parameters come from
// the model artifact and are never mutated after load.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

// NewStandardScaler validates the exported parameters.
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) == 0 {
		return nil, fmt.Errorf("scaler has no parameters")
	}
	if len(mean) != len(scale) {
		return nil, fmt.Errorf("scaler mean/scale length mismatch: %d vs %d", len(mean), len(scale))
	}
	return &StandardScaler{mean: mean, scale: scale}, nil
}

// Transform returns a scaled copy of the input; the input is left
// untouched.
func (s *StandardScaler) Transform(x [][]float64) ([][]float64, error) {
	if err := checkMatrix(x, len(s.mean)); err != nil {
		return nil, err
	}

	out := make([][]float64, len(x))
	for i, row := range x {
		scaled := make([]float64, len(row))
		for j, v := range row {
			centered := v - s.mean[j]
			if s.scale[j] != 0 {
				centered /= s.scale[j]
			}
			scaled[j] = centered
		}
		out[i] = scaled
	}
	return out, nil
}
