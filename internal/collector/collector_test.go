package collector

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KlineScope/internal/kline"
	"KlineScope/internal/model"
)

func TestCollect_MockSource(t *testing.T) {
	col := NewCollector(&MockSource{Price: 100, Days: 120})
	col.now = func() time.Time { return time.Unix(1700000000, 0) }

	res, err := col.Collect(context.Background(), "DEMO")
	require.NoError(t, err)
	require.NotNil(t, res.KLine)
	require.NotNil(t, res.TimeSharing)

	assert.Equal(t, 120, res.Records["kline"])
	assert.Equal(t, 240, res.Records["trends"])

	snap := res.Snapshot
	assert.Equal(t, "DEMO", snap.Symbol)
	assert.Equal(t, "2024-04-29", snap.Date)
	assert.True(t, snap.Close.Valid)
	assert.True(t, snap.MA["MA60"].Valid)
	assert.True(t, snap.DEA.Valid)
	assert.True(t, snap.K.Valid)
	assert.True(t, snap.LastPrice.Valid)
	assert.True(t, snap.ChangeRate.Valid)
	assert.Equal(t, int64(1700000000), snap.TakenAt.Unix())
}

func TestCollect_ShortHistoryLeavesIndicatorsMissing(t *testing.T) {
	col := NewCollector(&MockSource{Price: 10, Days: 5})
	res, err := col.Collect(context.Background(), "DEMO")
	require.NoError(t, err)

	assert.False(t, res.Snapshot.MA["MA5"].Valid)
	assert.False(t, res.Snapshot.DIF.Valid)
	assert.False(t, res.Snapshot.K.Valid)
}

func TestCollect_MalformedKLine(t *testing.T) {
	col := NewCollector(&MockSource{KLine: &model.KLineData{KLines: []string{"2024-01-01,1,2"}}})
	_, err := col.Collect(context.Background(), "BAD")
	assert.True(t, errors.Is(err, kline.ErrMalformedRecord))
}

func TestCollect_SourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewCollector(&MockSource{Err: boom}).Collect(context.Background(), "X")
	assert.True(t, errors.Is(err, boom))
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "600000.kline.json"), []byte(`{"data":{
		"code":"600000","name":"Demo",
		"klines":["2024-01-01,10,12,13,9,1000","2024-01-02,12,11,13,10,1200"]}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "600000.trends.json"), []byte(`{"data":{
		"code":"600000","name":"Demo","prePrice":11.5,
		"trends":["2024-01-03 09:30,11.6,100,11.6"]}}`), 0o644))

	src := NewFileSource(dir)
	res, err := NewCollector(src).Collect(context.Background(), "600000")
	require.NoError(t, err)

	assert.Equal(t, "Demo", res.KLine.Name)
	assert.Equal(t, []model.Candle{{Open: 10, Close: 12, Low: 9, High: 13}, {Open: 12, Close: 11, Low: 10, High: 13}}, res.KLine.Values)
	require.NotNil(t, res.TimeSharing)
	assert.Equal(t, 11.5, res.TimeSharing.Series.PrePrice)
	assert.Equal(t, []string{"09:30"}, res.TimeSharing.Series.CategoryData)
}

func TestFileSource_MissingTrendsIsKLineOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.kline.json"),
		[]byte(`{"data":{"klines":["2024-01-01,10,12,13,9,1000"]}}`), 0o644))

	res, err := NewCollector(NewFileSource(dir)).Collect(context.Background(), "A")
	require.NoError(t, err)
	assert.Nil(t, res.TimeSharing)
	assert.False(t, res.Snapshot.LastPrice.Valid)
}

func TestFileSource_NotFound(t *testing.T) {
	_, err := NewFileSource(t.TempDir()).FetchKLine(context.Background(), "NONE")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileSource_PrePriceAsString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data":{"prePrice":"9.87","trends":[]}}`), 0o644))

	td, err := ReadTrendsFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.PriceText("9.87"), td.PrePrice)
}
