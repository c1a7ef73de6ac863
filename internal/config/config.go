package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"KlineScope/internal/calculator"
	"KlineScope/internal/chart"
)

// Config holds all application configuration.
type Config struct {
	Symbols    []string   `yaml:"symbols" validate:"required,min=1,dive,required"`
	Source     Source     `yaml:"source"`
	Output     Output     `yaml:"output"`
	Schedule   Schedule   `yaml:"schedule"`
	Indicators Indicators `yaml:"indicators"`
	Database   Database   `yaml:"database"`
	Metrics    Metrics    `yaml:"metrics"`
	Log        Log        `yaml:"log"`
}

// Source points at the saved upstream responses.
type Source struct {
	Dir string `yaml:"dir" default:"data/raw" validate:"required"`
}

// Output is where chart payloads are written for the renderer.
type Output struct {
	Dir string `yaml:"dir" default:"data/charts" validate:"required"`
}

type Schedule struct {
	// RefreshCron uses the six-field form with seconds.
	RefreshCron string `yaml:"refresh_cron" default:"0 */5 9-15 * * 1-5" validate:"required"`
	RunOnStart  bool   `yaml:"run_on_start"`
}

type Indicators struct {
	MAPeriods []int      `yaml:"ma_periods" default:"[5,10,20,60]" validate:"min=1,dive,gt=0"`
	MACD      MACDConfig `yaml:"macd"`
	KDJ       KDJConfig  `yaml:"kdj"`
}

type MACDConfig struct {
	Short  int `yaml:"short" default:"12" validate:"gt=0"`
	Long   int `yaml:"long" default:"26" validate:"gt=0"`
	Signal int `yaml:"signal" default:"9" validate:"gt=0"`
}

type KDJConfig struct {
	N  int `yaml:"n" default:"9" validate:"gt=0"`
	M1 int `yaml:"m1" default:"3" validate:"gt=0"`
	M2 int `yaml:"m2" default:"3" validate:"gt=0"`
}

type Database struct {
	// SQLitePath empty disables snapshot recording.
	SQLitePath string `yaml:"sqlite_path"`
}

type Metrics struct {
	// Addr empty disables the metrics endpoint.
	Addr string `yaml:"addr"`
	Path string `yaml:"path" default:"/metrics"`
}

type Log struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
	Format     string `yaml:"format" default:"console" validate:"oneof=console json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" default:"50" validate:"gt=0"`
	MaxAgeDays int    `yaml:"max_age_days" default:"14" validate:"gt=0"`
}

var validate = validator.New()

// Load reads config from a YAML file, then applies .env and environment
// variable overrides and fills defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env is optional; values already in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	applyEnv(cfg)

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("KLINESCOPE_SYMBOLS"); v != "" {
		cfg.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("KLINESCOPE_SOURCE_DIR"); v != "" {
		cfg.Source.Dir = v
	}
	if v := os.Getenv("KLINESCOPE_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("KLINESCOPE_REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if os.Getenv("RUN_ON_START") == "true" {
		cfg.Schedule.RunOnStart = true
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Validate checks field constraints and that the refresh schedule parses.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%s: failed %q rule", e.Namespace(), e.Tag())
		}
		return err
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Schedule.RefreshCron); err != nil {
		return fmt.Errorf("schedule.refresh_cron: %w", err)
	}
	return nil
}

// ChartOptions converts the indicator settings for the chart builder.
func (c *Config) ChartOptions() chart.Options {
	return chart.Options{
		MAPeriods: append([]int(nil), c.Indicators.MAPeriods...),
		MACD: calculator.MACDParams{
			Short:  c.Indicators.MACD.Short,
			Long:   c.Indicators.MACD.Long,
			Signal: c.Indicators.MACD.Signal,
		},
		KDJ: calculator.KDJParams{
			N:  c.Indicators.KDJ.N,
			M1: c.Indicators.KDJ.M1,
			M2: c.Indicators.KDJ.M2,
		},
	}
}
