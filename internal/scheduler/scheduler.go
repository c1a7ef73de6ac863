package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"KlineScope/internal/collector"
	"KlineScope/internal/metrics"
	"KlineScope/internal/recorder"
)

// Scheduler re-runs the chart pipeline for every symbol on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Metrics   *metrics.Recorder
	Symbols   []string
	OutputDir string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. A run still in progress when the
// next tick fires makes that tick a no-op.
func NewScheduler(ctx context.Context, col *collector.Collector, rec recorder.Recorder, m *metrics.Recorder, symbols []string, outputDir string) *Scheduler {
	logger := cronLogger{}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		Collector: col,
		Recorder:  rec,
		Metrics:   m,
		Symbols:   symbols,
		OutputDir: outputDir,
		Ctx:       ctx,
	}
}

// RegisterAll registers the refresh task.
func (s *Scheduler) RegisterAll(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Int("symbols", len(s.Symbols)).Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the refresh task immediately.
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Info().Msg("running refresh task")
	failed := 0
	for _, symbol := range s.Symbols {
		if s.Ctx.Err() != nil {
			return
		}
		if err := s.Refresh(symbol); err != nil {
			failed++
			log.Error().Err(err).Str("symbol", symbol).Msg("refresh failed")
		}
	}
	log.Info().Int("symbols", len(s.Symbols)).Int("failed", failed).Msg("refresh task done")
}

// Refresh runs the pipeline for one symbol, writes the chart payloads and
// records the snapshot.
func (s *Scheduler) Refresh(symbol string) (err error) {
	start := time.Now()
	defer func() {
		if s.Metrics != nil {
			s.Metrics.RecordRun(symbol, err, time.Since(start))
		}
	}()

	res, err := s.Collector.Collect(s.Ctx, symbol)
	if err != nil {
		return err
	}
	if s.Metrics != nil {
		for kind, n := range res.Records {
			s.Metrics.RecordParsed(kind, n)
		}
	}

	if err := writeJSON(filepath.Join(s.OutputDir, symbol+".kline.json"), res.KLine); err != nil {
		return err
	}
	if res.TimeSharing != nil {
		if err := writeJSON(filepath.Join(s.OutputDir, symbol+".timesharing.json"), res.TimeSharing); err != nil {
			return err
		}
	}

	if err := s.Recorder.RecordSnapshot(res.Snapshot); err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("record snapshot")
	}

	log.Debug().
		Str("symbol", symbol).
		Str("date", res.Snapshot.Date).
		Dur("elapsed", time.Since(start)).
		Msg("refreshed")
	return nil
}

// writeJSON replaces path atomically so the renderer never reads a partial file.
func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

// cronLogger routes cron's own messages to zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
