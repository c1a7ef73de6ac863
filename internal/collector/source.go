package collector

import (
	"context"
	"errors"

	"KlineScope/internal/model"
)

// ErrNotFound reports that a source holds no data for the symbol.
var ErrNotFound = errors.New("no data for symbol")

// Source supplies raw upstream payloads for a symbol.
type Source interface {
	FetchKLine(ctx context.Context, symbol string) (*model.KLineData, error)
	FetchTrends(ctx context.Context, symbol string) (*model.TrendsData, error)
	Name() string
}
