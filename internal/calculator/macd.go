package calculator

import (
	"fmt"

	"KlineScope/internal/model"
)

// MACDParams are the EMA periods of the MACD indicator.
type MACDParams struct {
	Short  int
	Long   int
	Signal int
}

// DefaultMACDParams is the conventional 12/26/9 setup.
var DefaultMACDParams = MACDParams{Short: 12, Long: 26, Signal: 9}

func (p MACDParams) validate() error {
	if p.Short <= 0 || p.Long <= 0 || p.Signal <= 0 {
		return fmt.Errorf("macd(%d,%d,%d): %w", p.Short, p.Long, p.Signal, ErrInvalidPeriod)
	}
	return nil
}

// MACDResult holds the three MACD lines, each as long as the input series.
type MACDResult struct {
	DIF  []model.Value `json:"dif"`
	DEA  []model.Value `json:"dea"`
	MACD []model.Value `json:"macd"`
}

// CalculateEMA returns the exponential moving average of values seeded with
// values[0], with alpha = 2/(period+1). It has no warm-up gap.
func CalculateEMA(values []float64, period int) []float64 {
	if len(values) == 0 {
		return []float64{}
	}
	alpha := 2 / float64(period+1)
	result := make([]float64, len(values))
	last := values[0]
	result[0] = last
	for i := 1; i < len(values); i++ {
		last = values[i]*alpha + last*(1-alpha)
		result[i] = last
	}
	return result
}

// CalculateMACD computes DIF, DEA and the MACD histogram from closing prices.
//
// DIF is Missing before index Long-1 and DEA before Long+Signal-2. DEA is the
// EMA of DIF with the masked head read as zero. MACD is 2*(DIF-DEA) wherever
// both lines are present.
func CalculateMACD(series model.DailySeries, p MACDParams) (MACDResult, error) {
	if err := p.validate(); err != nil {
		return MACDResult{}, err
	}
	closes := series.Closes()
	n := len(closes)

	emaShort := CalculateEMA(closes, p.Short)
	emaLong := CalculateEMA(closes, p.Long)

	dif := missing(n)
	difRaw := make([]float64, n)
	for i := p.Long - 1; i < n; i++ {
		d := emaShort[i] - emaLong[i]
		dif[i] = model.Some(d)
		difRaw[i] = d
	}

	deaRaw := CalculateEMA(difRaw, p.Signal)
	dea := missing(n)
	for i := max(p.Long+p.Signal-2, 0); i < n; i++ {
		dea[i] = model.Some(deaRaw[i])
	}

	macd := missing(n)
	for i := 0; i < n; i++ {
		d, ok1 := dif[i].Get()
		e, ok2 := dea[i].Get()
		if ok1 && ok2 {
			macd[i] = model.Some((d - e) * 2)
		}
	}

	return MACDResult{DIF: dif, DEA: dea, MACD: macd}, nil
}
