package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"KlineScope/internal/collector"
	"KlineScope/internal/metrics"
	"KlineScope/internal/recorder"
	"KlineScope/internal/scheduler"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Refresh chart payloads for the configured symbols on a schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		log.Info().Str("version", version).Msg("klinescope starting")

		src := collector.NewFileSource(cfg.Source.Dir)
		col := collector.NewCollector(src)
		col.Options = cfg.ChartOptions()
		log.Info().Str("source", src.Name()).Str("dir", cfg.Source.Dir).Msg("data source")

		var rec recorder.Recorder
		if cfg.Database.SQLitePath != "" {
			sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
			if err != nil {
				log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
				rec = recorder.NewNoopRecorder()
			} else {
				rec = sr
				defer sr.Close()
			}
		} else {
			rec = recorder.NewNoopRecorder()
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		m := metrics.New()
		if cfg.Metrics.Addr != "" {
			go func() {
				if err := m.Serve(ctx, cfg.Metrics.Addr, cfg.Metrics.Path); err != nil {
					log.Error().Err(err).Msg("metrics endpoint")
				}
			}()
		}

		sched := scheduler.NewScheduler(ctx, col, rec, m, cfg.Symbols, cfg.Output.Dir)
		if err := sched.RegisterAll(cfg.Schedule.RefreshCron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		if cfg.Schedule.RunOnStart {
			log.Info().Msg("run_on_start enabled, refreshing now")
			go sched.RunNow()
		}

		log.Info().Msg("klinescope is running. Press Ctrl+C to stop.")
		<-ctx.Done()
		log.Info().Msg("shutdown signal received, stopping...")
		return nil
	},
}
