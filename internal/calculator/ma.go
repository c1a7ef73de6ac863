package calculator

import (
	"fmt"

	"KlineScope/internal/model"
)

// CalculateMA computes the simple moving average of closing prices.
//
// The first period entries are Missing; entry i >= period is the mean of the
// period closes ending at i, rounded to 3 decimals. The line starts one bar
// later than the shortest full window, as the charts have always drawn it.
func CalculateMA(series model.DailySeries, period int) ([]model.Value, error) {
	if period <= 0 {
		return nil, fmt.Errorf("ma(%d): %w", period, ErrInvalidPeriod)
	}
	n := series.Len()
	result := missing(n)
	for i := period; i < n; i++ {
		sum := 0.0
		for j := 0; j < period; j++ {
			sum += series.Values[i-j].Close
		}
		result[i] = model.Some(model.Round(sum/float64(period), 3))
	}
	return result, nil
}

// CalculateMALines computes one MA line per period.
func CalculateMALines(series model.DailySeries, periods ...int) ([][]model.Value, error) {
	lines := make([][]model.Value, 0, len(periods))
	for _, p := range periods {
		line, err := CalculateMA(series, p)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
