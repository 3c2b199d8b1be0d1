package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	defaults := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-g", "0002", "-l", "750.50", "-m", "5", "-s", "$", "-v", "debug", "-nocolor"},
			expected: &Config{
				AgencyCode:      "0002",
				WithdrawalLimit: decimal.RequireFromString("750.50"),
				MaxWithdrawals:  5,
				CurrencySymbol:  "$",
				LogLevel:        "debug",
				NoColor:         true,
			},
		},
		{
			name:     "no flags keeps defaults",
			args:     []string{},
			expected: defaults(),
		},
		{
			name: "config flag and unknown flags are ignored",
			args: []string{"-c", "whatever.json", "-x", "1", "-m", "1"},
			expected: func() *Config {
				c := defaults()
				c.MaxWithdrawals = 1
				return c
			}(),
		},
		{
			name: "comma decimal limit",
			args: []string{"-l", "99,90"},
			expected: func() *Config {
				c := defaults()
				c.WithdrawalLimit = decimal.RequireFromString("99.90")
				return c
			}(),
		},
		{name: "incorrect max withdrawals", args: []string{"-m", "abc"}, expectPanic: true},
		{name: "incorrect limit", args: []string{"-l", "lots"}, expectPanic: true},
		{name: "negative limit", args: []string{"-l=-5"}, expectPanic: true},
		{name: "negative max withdrawals", args: []string{"-m=-1"}, expectPanic: true},
		{
			name: "zero rules are allowed",
			args: []string{"-l=0", "-m=0"},
			expected: func() *Config {
				c := defaults()
				c.WithdrawalLimit = decimal.Zero
				c.MaxWithdrawals = 0
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
