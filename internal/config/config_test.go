package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FINTRACK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "₹", cfg.UI.CurrencySymbol)
	require.NotEmpty(t, cfg.Database.Path)
	require.Equal(t, "fintrack.db", filepath.Base(cfg.Database.Path))
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FINTRACK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("FINTRACK_UI_CURRENCY_SYMBOL", "$")
	t.Setenv("FINTRACK_DATABASE_PATH", "/tmp/override.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, "/tmp/override.db", cfg.Database.Path)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("FINTRACK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.CurrencySymbol = "€"
	cfg.UI.DateFormat = "2006-01-02"
	require.NoError(t, Save(cfg))

	_, err = os.Stat(path)
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, "€", got.UI.CurrencySymbol)
	require.Equal(t, "2006-01-02", got.UI.DateFormat)
}
