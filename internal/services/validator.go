package services

import (
	"encoding/json"
	"fmt"

	"diapredict/internal/models"
)

// ValidateFeatures checks a submitted feature mapping against the
// required ordered list and reports every missing name at once, not
// just the first. Extra keys are ignored.
func ValidateFeatures(features map[string]interface{}, required []string) error {
	var missing []string
	for _, name := range required {
		if _, ok := features[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &models.ValidationError{Missing: missing, Required: required}
	}
	return nil
}

// AssembleRow reorders the submitted values into the canonical feature
// order and converts them to float64. It also returns the converted
// values by name for the rule-based stages. Unexpected keys are
// silently dropped.
func AssembleRow(features map[string]interface{}, required []string) ([]float64, map[string]float64, error) {
	row := make([]float64, len(required))
	values := make(map[string]float64, len(required))

	for i, name := range required {
		raw, ok := features[name]
		if !ok {
			return nil, nil, fmt.Errorf("missing required feature %q", name)
		}
		v, err := toFloat(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("feature %q: %v", name, err)
		}
		row[i] = v
		values[name] = v
	}
	return row, values, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
}
