package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KlineScope/internal/calculator"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "symbols: [\"600000\"]\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"600000"}, cfg.Symbols)
	assert.Equal(t, "data/raw", cfg.Source.Dir)
	assert.Equal(t, []int{5, 10, 20, 60}, cfg.Indicators.MAPeriods)
	assert.Equal(t, 26, cfg.Indicators.MACD.Long)
	assert.Equal(t, 9, cfg.Indicators.KDJ.N)
	assert.Equal(t, "info", cfg.Log.Level)

	opts := cfg.ChartOptions()
	assert.Equal(t, calculator.DefaultMACDParams, opts.MACD)
	assert.Equal(t, calculator.DefaultKDJParams, opts.KDJ)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
symbols: [A, B]
source:
  dir: /srv/raw
indicators:
  ma_periods: [7]
  kdj:
    n: 14
schedule:
  refresh_cron: "*/30 * * * * *"
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/srv/raw", cfg.Source.Dir)
	assert.Equal(t, []int{7}, cfg.Indicators.MAPeriods)
	assert.Equal(t, 14, cfg.Indicators.KDJ.N)
	assert.Equal(t, 3, cfg.Indicators.KDJ.M1)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KLINESCOPE_SYMBOLS", "X,Y")
	t.Setenv("SQLITE_PATH", "/tmp/k.db")
	cfg, err := Load(writeConfig(t, "symbols: [A]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, cfg.Symbols)
	assert.Equal(t, "/tmp/k.db", cfg.Database.SQLitePath)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate(), "symbols are required")
}

func TestValidate_Rejects(t *testing.T) {
	cfg, err := Load(writeConfig(t, "symbols: [A]\nindicators:\n  macd:\n    short: -1\n"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg, err = Load(writeConfig(t, "symbols: [A]\nschedule:\n  refresh_cron: \"not a cron\"\n"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg, err = Load(writeConfig(t, "symbols: [A]\nlog:\n  level: loud\n"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}
