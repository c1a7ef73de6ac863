// Package calculator computes chart indicators over a normalized daily series.
// Every function is pure: it reads its arguments and returns fresh slices.
package calculator

import (
	"errors"

	"KlineScope/internal/model"
)

// ErrInvalidPeriod is returned for a zero or negative period.
var ErrInvalidPeriod = errors.New("period must be positive")

// DefaultMAPeriods are the moving-average lines drawn on the main chart.
var DefaultMAPeriods = []int{5, 10, 20, 60}

// missing returns n insufficient-data markers.
func missing(n int) []model.Value {
	return make([]model.Value, n)
}
