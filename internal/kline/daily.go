// Package kline turns raw quote text into normalized chart series.
package kline

import (
	"strings"

	"KlineScope/internal/model"
)

const dailyFields = 6

// ParseDaily normalizes "date,open,close,high,low,volume" records.
//
// Values are emitted as (open, close, low, high). The volume sign is -1 when
// open > close and +1 otherwise. Unparsable numbers become NaN; a record
// without exactly six fields is rejected with a *RecordError.
func ParseDaily(records []string) (model.DailySeries, error) {
	series := model.DailySeries{
		CategoryData: make([]string, 0, len(records)),
		Values:       make([]model.Candle, 0, len(records)),
		Volumes:      make([]model.VolumeBar, 0, len(records)),
	}

	for i, rec := range records {
		parts := strings.Split(rec, ",")
		if len(parts) != dailyFields {
			return model.DailySeries{}, &RecordError{Index: i, Record: rec, Got: len(parts), Want: dailyFields}
		}

		open := wholeNumber(parts[1])
		closePrice := wholeNumber(parts[2])
		high := wholeNumber(parts[3])
		low := wholeNumber(parts[4])
		volume := wholeNumber(parts[5])

		sign := 1
		if open > closePrice {
			sign = -1
		}

		series.CategoryData = append(series.CategoryData, parts[0])
		series.Values = append(series.Values, model.Candle{Open: open, Close: closePrice, Low: low, High: high})
		series.Volumes = append(series.Volumes, model.VolumeBar{Index: i, Volume: volume, Sign: sign})
	}
	return series, nil
}
