package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"KlineScope/internal/model"
)

// FileSource reads upstream responses saved as <dir>/<symbol>.kline.json and
// <dir>/<symbol>.trends.json, each wrapped as {"data": {...}}.
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (f *FileSource) Name() string { return "file" }

func (f *FileSource) FetchKLine(ctx context.Context, symbol string) (*model.KLineData, error) {
	return readEnvelope[model.KLineData](ctx, filepath.Join(f.Dir, symbol+".kline.json"))
}

func (f *FileSource) FetchTrends(ctx context.Context, symbol string) (*model.TrendsData, error) {
	return readEnvelope[model.TrendsData](ctx, filepath.Join(f.Dir, symbol+".trends.json"))
}

// ReadKLineFile decodes one saved K-line response.
func ReadKLineFile(path string) (*model.KLineData, error) {
	return readEnvelope[model.KLineData](context.Background(), path)
}

// ReadTrendsFile decodes one saved time-sharing response.
func ReadTrendsFile(path string) (*model.TrendsData, error) {
	return readEnvelope[model.TrendsData](context.Background(), path)
}

func readEnvelope[T any](ctx context.Context, path string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var env model.Envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%s: empty data: %w", path, ErrNotFound)
	}
	return env.Data, nil
}
