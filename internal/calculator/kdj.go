package calculator

import (
	"fmt"
	"math"

	"KlineScope/internal/model"
)

// KDJParams configure the stochastic window and the K/D smoothing factors.
type KDJParams struct {
	N  int
	M1 int
	M2 int
}

// DefaultKDJParams is the conventional 9/3/3 setup.
var DefaultKDJParams = KDJParams{N: 9, M1: 3, M2: 3}

func (p KDJParams) validate() error {
	if p.N <= 0 || p.M1 <= 0 || p.M2 <= 0 {
		return fmt.Errorf("kdj(%d,%d,%d): %w", p.N, p.M1, p.M2, ErrInvalidPeriod)
	}
	return nil
}

// KDJResult holds the K, D and J lines, each as long as the input series.
type KDJResult struct {
	K []model.Value `json:"k"`
	D []model.Value `json:"d"`
	J []model.Value `json:"j"`
}

// CalculateKDJ computes the stochastic oscillator.
//
// The window at i covers bars max(0, i-N+1)..i, so early windows are partial.
// RSV is 0 when the window high equals its low. K and D start at 50 and are
// smoothed as K = (RSV + (M1-1)K') / M1, D = (K + (M2-1)D') / M2, J = 3K - 2D.
// Entries before N-1 are returned as Missing; the recurrence itself runs from
// the first bar.
func CalculateKDJ(series model.DailySeries, p KDJParams) (KDJResult, error) {
	if err := p.validate(); err != nil {
		return KDJResult{}, err
	}
	bars := series.Values
	n := len(bars)
	res := KDJResult{K: missing(n), D: missing(n), J: missing(n)}

	m1, m2 := float64(p.M1), float64(p.M2)
	var k, d float64
	for i := 0; i < n; i++ {
		low, high := windowRange(bars[max(0, i-p.N+1) : i+1])

		rsv := 0.0
		if high != low {
			rsv = (bars[i].Close - low) / (high - low) * 100
		}

		if i == 0 {
			k, d = 50, 50
		} else {
			k = (rsv + (m1-1)*k) / m1
			d = (k + (m2-1)*d) / m2
		}
		j := 3*k - 2*d

		if i >= p.N-1 {
			res.K[i] = model.Some(k)
			res.D[i] = model.Some(d)
			res.J[i] = model.Some(j)
		}
	}
	return res, nil
}

// windowRange returns the lowest low and highest high of the bars.
// A NaN price poisons the result, as it does for the closes.
func windowRange(bars []model.Candle) (low, high float64) {
	low, high = math.Inf(1), math.Inf(-1)
	for _, b := range bars {
		low = math.Min(low, b.Low)
		high = math.Max(high, b.High)
	}
	return low, high
}
