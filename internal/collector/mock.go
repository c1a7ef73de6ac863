package collector

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"KlineScope/internal/model"
)

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	Price  float64
	Days   int
	KLine  *model.KLineData
	Trends *model.TrendsData
	// Err, when set, is returned by every fetch.
	Err error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchKLine(_ context.Context, symbol string) (*model.KLineData, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.KLine != nil {
		return m.KLine, nil
	}
	return &model.KLineData{Code: symbol, Name: symbol, KLines: generateMockKLines(m.Price, m.Days)}, nil
}

func (m *MockSource) FetchTrends(_ context.Context, symbol string) (*model.TrendsData, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Trends != nil {
		return m.Trends, nil
	}
	return &model.TrendsData{
		Code:     symbol,
		Name:     symbol,
		PrePrice: model.PriceText(strconv.FormatFloat(m.Price, 'f', 2, 64)),
		Trends:   generateMockTrends(m.Price, 240),
	}, nil
}

func generateMockKLines(basePrice float64, count int) []string {
	lines := make([]string, count)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		lines[i] = fmt.Sprintf("%s,%.3f,%.3f,%.3f,%.3f,%d",
			start.AddDate(0, 0, i).Format("2006-01-02"),
			p*0.999, p, p*1.005, p*0.995, 1000000)
	}
	return lines
}

func generateMockTrends(basePrice float64, count int) []string {
	lines := make([]string, count)
	start := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i%20-10)*0.0005)
		lines[i] = fmt.Sprintf("%s,%.3f,%d,%.3f",
			start.Add(time.Duration(i)*time.Minute).Format("2006-01-02 15:04"), p, 100+i, basePrice)
	}
	return lines
}
