package chart

import (
	"math"
	"strconv"

	"KlineScope/internal/model"
)

// axisPadding widens the price axis beyond the observed span on both ends.
const axisPadding = 0.1

// TimeSharing is the intraday price/average view with its volume pane.
type TimeSharing struct {
	Name   string               `json:"name"`
	Code   string               `json:"code"`
	Empty  bool                 `json:"empty"`
	Series model.IntradaySeries `json:"series"`
	// VolumeSigns colors each volume bar: +1 when the price is not below
	// the previous tick (the previous close for the first tick), else -1.
	VolumeSigns []int `json:"volumeSigns"`
	// AxisMin and AxisMax bound the price axis, rounded to cents.
	AxisMin model.Value `json:"axisMin"`
	AxisMax model.Value `json:"axisMax"`
	// LastChange is the last price against the previous close, like "1.25%".
	// Empty when the rate is not a number.
	LastChange string `json:"lastChange"`
}

// BuildTimeSharing sizes the price axis around the previous close and the
// session's prices.
func BuildTimeSharing(name, code string, series model.IntradaySeries) *TimeSharing {
	view := &TimeSharing{Name: name, Code: code, Series: series}
	if series.Len() == 0 {
		view.Empty = true
		return view
	}
	lo, hi := AxisRange(series.PrePrice, series.Values)
	view.AxisMin, view.AxisMax = model.Finite(lo), model.Finite(hi)
	view.VolumeSigns = VolumeSigns(series.PrePrice, series.Values)

	last := series.Values[series.Len()-1]
	if model.Finite(ChangeRate(last, series.PrePrice)).Valid {
		view.LastChange = FormatChangeRate(last, series.PrePrice)
	}
	return view
}

// VolumeSigns returns +1 for each tick priced at or above the one before it
// and -1 otherwise. The first tick is compared with prePrice. A NaN price
// counts as down.
func VolumeSigns(prePrice float64, prices []float64) []int {
	signs := make([]int, len(prices))
	prev := prePrice
	for i, p := range prices {
		if p >= prev {
			signs[i] = 1
		} else {
			signs[i] = -1
		}
		prev = p
	}
	return signs
}

// AxisRange returns min/max over prePrice and prices, each pushed out by 10%
// of the span. A NaN price yields a NaN range.
func AxisRange(prePrice float64, prices []float64) (lo, hi float64) {
	lo, hi = prePrice, prePrice
	for _, p := range prices {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	diff := math.Abs(hi - lo)
	return model.Round(lo-diff*axisPadding, 2), model.Round(hi+diff*axisPadding, 2)
}

// ChangeRate is the percent change of value against the previous close.
func ChangeRate(value, prePrice float64) float64 {
	return (value - prePrice) / prePrice * 100
}

// FormatChangeRate renders a change rate like "1.25%".
func FormatChangeRate(value, prePrice float64) string {
	return strconv.FormatFloat(ChangeRate(value, prePrice), 'f', 2, 64) + "%"
}
