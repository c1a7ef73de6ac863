package kline

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KlineScope/internal/model"
)

func TestParseDaily_ReordersToOpenCloseLowHigh(t *testing.T) {
	series, err := ParseDaily([]string{"2024-01-01,10,12,13,9,1000"})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-01"}, series.CategoryData)
	assert.Equal(t, []model.Candle{{Open: 10, Close: 12, Low: 9, High: 13}}, series.Values)
	assert.Equal(t, []model.VolumeBar{{Index: 0, Volume: 1000, Sign: 1}}, series.Volumes)
}

func TestParseDaily_VolumeSign(t *testing.T) {
	series, err := ParseDaily([]string{
		"2024-01-01,10,12,13,9,1000",
		"2024-01-02,12,11,13,10,1200",
		"2024-01-03,11,11,12,10,800",
	})
	require.NoError(t, err)
	require.Equal(t, 3, series.Len())

	assert.Equal(t, 1, series.Volumes[0].Sign)
	assert.Equal(t, -1, series.Volumes[1].Sign)
	assert.Equal(t, 1, series.Volumes[2].Sign, "flat day counts as up")
	for i, v := range series.Volumes {
		assert.Equal(t, i, v.Index)
	}
}

func TestParseDaily_NonNumericBecomesNaN(t *testing.T) {
	series, err := ParseDaily([]string{"2024-01-01,abc,12,13,9,"})
	require.NoError(t, err)

	assert.True(t, math.IsNaN(series.Values[0].Open))
	assert.True(t, math.IsNaN(series.Volumes[0].Volume))
	assert.Equal(t, 12.0, series.Values[0].Close)
	// NaN > 12 is false.
	assert.Equal(t, 1, series.Volumes[0].Sign)
}

func TestParseDaily_MalformedRecord(t *testing.T) {
	_, err := ParseDaily([]string{
		"2024-01-01,10,12,13,9,1000",
		"2024-01-02,10,12,13,9",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 1, recErr.Index)
	assert.Equal(t, 5, recErr.Got)
	assert.Equal(t, 6, recErr.Want)
}

func TestParseDaily_Empty(t *testing.T) {
	series, err := ParseDaily(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, series.Len())
	assert.Empty(t, series.CategoryData)
	assert.Empty(t, series.Volumes)
}

func TestWholeNumber(t *testing.T) {
	cases := map[string]float64{
		"12":        12,
		" 12.5 ":    12.5,
		"-3":        -3,
		".5":        0.5,
		"5.":        5,
		"1e3":       1000,
		"0x10":      16,
		"Infinity":  math.Inf(1),
		"-Infinity": math.Inf(-1),
	}
	for in, want := range cases {
		assert.Equal(t, want, wholeNumber(in), in)
	}
	for _, in := range []string{"", "abc", "12abc", "1,2", "inf", "NaN", "0x"} {
		assert.True(t, math.IsNaN(wholeNumber(in)), in)
	}
}
