package device

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks a value that violates a model precondition.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptySeries marks a list parameter with no entries.
	ErrEmptySeries = errors.New("empty series request")
)

// ParamError names the offending parameter.
type ParamError struct {
	Model  string
	Param  string
	Value  float64
	Reason string
	Err    error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %s", e.Model, e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func invalidParam(model, param string, value float64, reason string) error {
	return &ParamError{Model: model, Param: param, Value: value, Reason: reason, Err: ErrInvalidParameter}
}

func emptySeries(model, param string) error {
	return fmt.Errorf("%s: %s: %w", model, param, ErrEmptySeries)
}

// IsInputError reports whether err was caused by caller-supplied values.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) || errors.Is(err, ErrEmptySeries)
}
