package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"agency_code":      "0042",
		"withdrawal_limit": 1000,
		"max_withdrawals":  7,
		"currency_symbol":  "€",
		"log_level":        "info",
		"no_color":         true,
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"withdrawal_limit": "250.25",
	})

	t.Run("loads every key", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", full})

		assert.Equal(t, "0042", cfg.AgencyCode)
		assert.True(t, decimal.NewFromInt(1000).Equal(cfg.WithdrawalLimit))
		assert.Equal(t, 7, cfg.MaxWithdrawals)
		assert.Equal(t, "€", cfg.CurrencySymbol)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.NoColor)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", partial})

		assert.True(t, decimal.RequireFromString("250.25").Equal(cfg.WithdrawalLimit))
		assert.Equal(t, "0001", cfg.AgencyCode)
		assert.Equal(t, 3, cfg.MaxWithdrawals)
		assert.Equal(t, "R$", cfg.CurrencySymbol)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{AgencyCode: "defaults", MaxWithdrawals: 42}
		parseJson(cfg, []string{"-m", "1"})

		assert.Equal(t, "defaults", cfg.AgencyCode)
		assert.Equal(t, 42, cfg.MaxWithdrawals)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})

	t.Run("negative rules → panic", func(t *testing.T) {
		for name, data := range map[string]map[string]any{
			"neg_limit.json": {"withdrawal_limit": "-1"},
			"neg_max.json":   {"max_withdrawals": -3},
		} {
			path := writeTempJSON(t, dir, name, data)
			cfg := &Config{}
			cfg.LoadDefaults()
			require.Panics(t, func() { parseJson(cfg, []string{"-c", path}) }, name)
		}
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-config", bad}) })
	})
}
