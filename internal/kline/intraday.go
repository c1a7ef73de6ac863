package kline

import (
	"strings"

	"KlineScope/internal/model"
)

const (
	intradayFields = 4
	// timeOffset is where HH:mm starts in "YYYY-MM-DD HH:mm".
	timeOffset = 11
)

// ParseIntraday normalizes time-sharing records "YYYY-MM-DD HH:mm,price,volume,avgPrice"
// together with the previous close.
func ParseIntraday(prePrice string, trends []string) (model.IntradaySeries, error) {
	series := model.IntradaySeries{
		CategoryData: make([]string, 0, len(trends)),
		Values:       make([]float64, 0, len(trends)),
		Volumes:      make([]float64, 0, len(trends)),
		AvgPrices:    make([]float64, 0, len(trends)),
		PrePrice:     leadingFloat(prePrice),
	}

	for i, rec := range trends {
		parts := strings.Split(rec, ",")
		if len(parts) != intradayFields {
			return model.IntradaySeries{}, &RecordError{Index: i, Record: rec, Got: len(parts), Want: intradayFields}
		}

		label := ""
		if len(parts[0]) > timeOffset {
			label = parts[0][timeOffset:]
		}

		series.CategoryData = append(series.CategoryData, label)
		series.Values = append(series.Values, leadingFloat(parts[1]))
		series.Volumes = append(series.Volumes, leadingInt(parts[2]))
		series.AvgPrices = append(series.AvgPrices, leadingFloat(parts[3]))
	}
	return series, nil
}

// ParseTrends is ParseIntraday over an upstream trends payload.
func ParseTrends(data model.TrendsData) (model.IntradaySeries, error) {
	return ParseIntraday(string(data.PrePrice), data.Trends)
}
