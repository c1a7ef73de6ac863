// Package chart assembles the data the chart renderer draws: the K-line view
// with its indicator panes and the intraday time-sharing view.
package chart

import (
	"fmt"

	"KlineScope/internal/calculator"
	"KlineScope/internal/model"
)

// MALine is one moving-average overlay on the main pane.
type MALine struct {
	Name   string        `json:"name"`
	Period int           `json:"period"`
	Data   []model.Value `json:"data"`
}

// KLine is the candlestick view with volume, MACD and KDJ panes.
type KLine struct {
	Name         string                `json:"name"`
	Code         string                `json:"code"`
	Empty        bool                  `json:"empty"`
	CategoryData []string              `json:"categoryData"`
	Values       []model.Candle        `json:"values"`
	Volumes      []model.VolumeBar     `json:"volumes"`
	MA           []MALine              `json:"ma"`
	MACD         calculator.MACDResult `json:"macd"`
	KDJ          calculator.KDJResult  `json:"kdj"`
}

// Options selects the indicator parameters of a K-line view.
type Options struct {
	MAPeriods []int
	MACD      calculator.MACDParams
	KDJ       calculator.KDJParams
}

// DefaultOptions draws MA5/10/20/60, MACD(12,26,9) and KDJ(9,3,3).
func DefaultOptions() Options {
	return Options{
		MAPeriods: append([]int(nil), calculator.DefaultMAPeriods...),
		MACD:      calculator.DefaultMACDParams,
		KDJ:       calculator.DefaultKDJParams,
	}
}

// BuildKLine computes every indicator pane for the series.
// An empty series yields a view with Empty set and no panes.
func BuildKLine(name, code string, series model.DailySeries, opts Options) (*KLine, error) {
	view := &KLine{Name: name, Code: code}
	if series.Len() == 0 {
		view.Empty = true
		return view, nil
	}
	view.CategoryData = series.CategoryData
	view.Values = series.Values
	view.Volumes = series.Volumes

	view.MA = make([]MALine, 0, len(opts.MAPeriods))
	for _, p := range opts.MAPeriods {
		data, err := calculator.CalculateMA(series, p)
		if err != nil {
			return nil, err
		}
		view.MA = append(view.MA, MALine{Name: fmt.Sprintf("MA%d", p), Period: p, Data: data})
	}

	var err error
	if view.MACD, err = calculator.CalculateMACD(series, opts.MACD); err != nil {
		return nil, err
	}
	if view.KDJ, err = calculator.CalculateKDJ(series, opts.KDJ); err != nil {
		return nil, err
	}
	return view, nil
}
