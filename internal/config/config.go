package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/models"
	"github.com/dmitrijs2005/gophbank/internal/money"
	"github.com/shopspring/decimal"
)

// Config holds runtime settings for the GophBank console.
//
// Fields:
//   - AgencyCode: agency every new account is opened under.
//   - WithdrawalLimit: largest amount accepted by a single withdrawal.
//   - MaxWithdrawals: withdrawals allowed per session.
//   - CurrencySymbol: prefix used when displaying amounts.
//   - LogLevel: minimum level written to stderr.
//   - NoColor: disables ANSI colors even on a terminal.
type Config struct {
	AgencyCode      string
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
	CurrencySymbol  string
	LogLevel        string
	NoColor         bool
}

// LoadDefaults populates c with the simulator's fixed rules.
func (c *Config) LoadDefaults() {
	c.AgencyCode = models.DefaultAgencyCode
	c.WithdrawalLimit = decimal.NewFromInt(ledger.DefaultWithdrawalLimit)
	c.MaxWithdrawals = ledger.DefaultMaxWithdrawals
	c.CurrencySymbol = money.DefaultSymbol
	c.LogLevel = "warn"
	c.NoColor = false
}

// LoadConfig constructs a Config from os.Args: defaults, then the JSON file
// (if any), then flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load is LoadConfig over an explicit argument list.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

// validate rejects negative withdrawal rules. Zero is allowed for both and
// blocks every withdrawal.
func (c *Config) validate() error {
	if c.WithdrawalLimit.IsNegative() {
		return fmt.Errorf("withdrawal limit must not be negative, got %s", c.WithdrawalLimit)
	}
	if c.MaxWithdrawals < 0 {
		return fmt.Errorf("max withdrawals must not be negative, got %d", c.MaxWithdrawals)
	}
	return nil
}
