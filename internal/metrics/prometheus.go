package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Recorder exposes pipeline metrics through Prometheus.
type Recorder struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	records  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lastRun  *prometheus.GaugeVec
}

// New creates a Recorder on its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "klinescope_pipeline_runs_total",
				Help: "Pipeline runs by symbol and outcome",
			},
			[]string{"symbol", "status"},
		),
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "klinescope_records_parsed_total",
				Help: "Raw quote records normalized, by kind",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "klinescope_pipeline_duration_seconds",
				Help:    "Duration of one pipeline run",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"symbol"},
		),
		lastRun: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "klinescope_last_success_timestamp_seconds",
				Help: "Unix time of the last successful run",
			},
			[]string{"symbol"},
		),
	}
	reg.MustRegister(r.runs, r.records, r.duration, r.lastRun)
	return r
}

// RecordRun records the outcome and latency of one run.
func (r *Recorder) RecordRun(symbol string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	} else {
		r.lastRun.WithLabelValues(symbol).SetToCurrentTime()
	}
	r.runs.WithLabelValues(symbol, status).Inc()
	r.duration.WithLabelValues(symbol).Observe(elapsed.Seconds())
}

// RecordParsed adds n normalized records of the given kind.
func (r *Recorder) RecordParsed(kind string, n int) {
	r.records.WithLabelValues(kind).Add(float64(n))
}

// Handler serves the registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Str("path", path).Msg("metrics endpoint listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
