package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a field of free-text input that is not a number.
type ParseError struct {
	Input string
	Field string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q at position %d in %q", e.Field, e.Index+1, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFloatList parses "10, 20, 30". Blank fields are skipped, so an
// input of only commas yields an empty slice and no error.
func ParseFloatList(input string) ([]float64, error) {
	values := make([]float64, 0)
	for i, field := range strings.Split(input, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &ParseError{Input: input, Field: field, Index: i, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatFloatList is the inverse of ParseFloatList.
func FormatFloatList(values []float64) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(fields, ", ")
}
