package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"KlineScope/internal/chart"
	"KlineScope/internal/kline"
	"KlineScope/internal/model"
)

// Result is everything one pipeline run produces for a symbol.
type Result struct {
	KLine       *chart.KLine
	TimeSharing *chart.TimeSharing
	Snapshot    *model.Snapshot
	// Records counts the raw records normalized, by kind.
	Records map[string]int
}

// Collector orchestrates fetching, normalization and indicator computation.
type Collector struct {
	Source  Source
	Options chart.Options
	now     func() time.Time
}

// NewCollector creates a Collector drawing the default indicator set.
func NewCollector(source Source) *Collector {
	return &Collector{Source: source, Options: chart.DefaultOptions(), now: time.Now}
}

// Collect runs the pipeline for one symbol. Missing intraday data is not an
// error: the result then carries the K-line view only.
func (c *Collector) Collect(ctx context.Context, symbol string) (*Result, error) {
	kd, err := c.Source.FetchKLine(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch kline: %w", err)
	}
	view, err := BuildKLine(kd, c.Options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", symbol, err)
	}
	res := &Result{KLine: view, Records: map[string]int{"kline": len(kd.KLines)}}

	td, err := c.Source.FetchTrends(ctx, symbol)
	switch {
	case errors.Is(err, ErrNotFound):
		log.Debug().Str("symbol", symbol).Msg("no intraday data, k-line only")
	case err != nil:
		return nil, fmt.Errorf("fetch trends: %w", err)
	default:
		ts, err := BuildTimeSharing(td)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", symbol, err)
		}
		res.TimeSharing = ts
		res.Records["trends"] = len(td.Trends)
	}

	res.Snapshot = buildSnapshot(symbol, res.KLine, res.TimeSharing, c.now())
	return res, nil
}

// BuildKLine normalizes a raw K-line payload and computes its indicator panes.
func BuildKLine(kd *model.KLineData, opts chart.Options) (*chart.KLine, error) {
	series, err := kline.ParseDaily(kd.KLines)
	if err != nil {
		return nil, fmt.Errorf("parse kline: %w", err)
	}
	view, err := chart.BuildKLine(kd.Name, kd.Code, series, opts)
	if err != nil {
		return nil, fmt.Errorf("build kline: %w", err)
	}
	return view, nil
}

// BuildTimeSharing normalizes a raw trends payload.
func BuildTimeSharing(td *model.TrendsData) (*chart.TimeSharing, error) {
	series, err := kline.ParseTrends(*td)
	if err != nil {
		return nil, fmt.Errorf("parse trends: %w", err)
	}
	return chart.BuildTimeSharing(td.Name, td.Code, series), nil
}

func buildSnapshot(symbol string, kl *chart.KLine, ts *chart.TimeSharing, at time.Time) *model.Snapshot {
	snap := &model.Snapshot{
		Symbol:  symbol,
		Name:    kl.Name,
		Code:    kl.Code,
		MA:      make(map[string]model.Value, len(kl.MA)),
		TakenAt: at,
	}

	if n := len(kl.Values); n > 0 {
		last := n - 1
		snap.Date = kl.CategoryData[last]
		snap.Close = model.Finite(kl.Values[last].Close)
		for _, line := range kl.MA {
			snap.MA[line.Name] = line.Data[last]
		}
		snap.DIF, snap.DEA, snap.MACD = kl.MACD.DIF[last], kl.MACD.DEA[last], kl.MACD.MACD[last]
		snap.K, snap.D, snap.J = kl.KDJ.K[last], kl.KDJ.D[last], kl.KDJ.J[last]
	}

	if ts != nil && ts.Series.Len() > 0 {
		s := ts.Series
		last := s.Len() - 1
		snap.LastPrice = model.Finite(s.Values[last])
		snap.AvgPrice = model.Finite(s.AvgPrices[last])
		snap.PrePrice = model.Finite(s.PrePrice)
		snap.ChangeRate = model.Finite(chart.ChangeRate(s.Values[last], s.PrePrice))
	}
	return snap
}
