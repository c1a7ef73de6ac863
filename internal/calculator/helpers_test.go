package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"KlineScope/internal/model"
)

// seriesFromCloses builds bars whose open, low and high all equal the close.
func seriesFromCloses(closes ...float64) model.DailySeries {
	s := model.DailySeries{}
	for i, c := range closes {
		s.CategoryData = append(s.CategoryData, "")
		s.Values = append(s.Values, model.Candle{Open: c, Close: c, Low: c, High: c})
		s.Volumes = append(s.Volumes, model.VolumeBar{Index: i, Sign: 1})
	}
	return s
}

func seriesFromBars(bars ...model.Candle) model.DailySeries {
	s := model.DailySeries{}
	for i, b := range bars {
		s.CategoryData = append(s.CategoryData, "")
		s.Values = append(s.Values, b)
		s.Volumes = append(s.Volumes, model.VolumeBar{Index: i, Sign: 1})
	}
	return s
}

func requireFloat(t *testing.T, want float64, v model.Value, msgAndArgs ...interface{}) {
	t.Helper()
	got, ok := v.Get()
	require.True(t, ok, msgAndArgs...)
	require.InDelta(t, want, got, 1e-9, msgAndArgs...)
}
