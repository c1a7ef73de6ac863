package model

import (
	"encoding/json"
	"strconv"
)

// Candle is one daily bar in chart order: open, close, low, high.
type Candle struct {
	Open  float64
	Close float64
	Low   float64
	High  float64
}

// MarshalJSON encodes the candle positionally as [open, close, low, high].
func (c Candle) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = appendFloat(b, c.Open)
	b = append(b, ',')
	b = appendFloat(b, c.Close)
	b = append(b, ',')
	b = appendFloat(b, c.Low)
	b = append(b, ',')
	b = appendFloat(b, c.High)
	return append(b, ']'), nil
}

// VolumeBar places one volume bar. Sign is -1 on a down day, +1 otherwise.
type VolumeBar struct {
	Index  int
	Volume float64
	Sign   int
}

// MarshalJSON encodes the bar positionally as [index, volume, sign].
func (v VolumeBar) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendInt(b, int64(v.Index), 10)
	b = append(b, ',')
	b = appendFloat(b, v.Volume)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(v.Sign), 10)
	return append(b, ']'), nil
}

// DailySeries is the normalized K-line series. All slices share one length.
type DailySeries struct {
	CategoryData []string    `json:"categoryData"`
	Values       []Candle    `json:"values"`
	Volumes      []VolumeBar `json:"volumes"`
}

// Len returns the number of bars.
func (s DailySeries) Len() int { return len(s.Values) }

// Closes extracts the closing prices.
func (s DailySeries) Closes() []float64 {
	closes := make([]float64, len(s.Values))
	for i, c := range s.Values {
		closes[i] = c.Close
	}
	return closes
}

// IntradaySeries is the normalized time-sharing series for one session.
type IntradaySeries struct {
	CategoryData []string  `json:"categoryData"`
	Values       []float64 `json:"values"`
	Volumes      []float64 `json:"volumes"`
	AvgPrices    []float64 `json:"avgPrices"`
	PrePrice     float64   `json:"prePrice"`
}

// Len returns the number of ticks.
func (s IntradaySeries) Len() int { return len(s.Values) }

// MarshalJSON writes NaN samples as null so a bad tick does not fail the whole payload.
func (s IntradaySeries) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CategoryData []string `json:"categoryData"`
		Values       Floats   `json:"values"`
		Volumes      Floats   `json:"volumes"`
		AvgPrices    Floats   `json:"avgPrices"`
		PrePrice     Value    `json:"prePrice"`
	}{
		CategoryData: s.CategoryData,
		Values:       s.Values,
		Volumes:      s.Volumes,
		AvgPrices:    s.AvgPrices,
		PrePrice:     Some(s.PrePrice),
	})
}

// Floats is a float slice whose NaN and Inf entries encode as null.
type Floats []float64

func (f Floats) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	b := []byte{'['}
	for i, v := range f {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendFloat(b, v)
	}
	return append(b, ']'), nil
}
