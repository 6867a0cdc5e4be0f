package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrModelUnavailable means the classifier or scaler failed to load at
// startup. Inference endpoints report it instead of computing;
// metadata endpoints keep serving.
var ErrModelUnavailable = errors.New("model not loaded")

// ValidationError reports every missing required feature at once, so
// callers never have to resubmit to discover the next one.
type ValidationError struct {
	Missing  []string
	Required []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required features: %s", strings.Join(e.Missing, ", "))
}

// InferenceError wraps a failure inside scaling or classification. In
// batch mode it is scoped to the single offending item.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return e.Err.Error()
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}
