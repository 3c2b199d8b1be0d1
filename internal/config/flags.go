package config

import (
	"flag"

	"github.com/dmitrijs2005/gophbank/internal/flagx"
	"github.com/dmitrijs2005/gophbank/internal/money"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-g string   agency code
//	-l decimal  per-withdrawal limit
//	-m int      maximum withdrawals per session
//	-s string   currency symbol
//	-v string   log level
//	-nocolor    disable colored output
//
// Only these flags are taken from args (see flagx.FilterArgsWithBools), so
// -c/-config and unknown flags do not trip the parser. Panics on bad values,
// including a negative -l or -m.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgsWithBools(args, []string{"-g", "-l", "-m", "-s", "-v"}, []string{"-nocolor"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AgencyCode, "g", cfg.AgencyCode, "agency code for new accounts")
	fs.Func("l", "per-withdrawal limit (default "+cfg.WithdrawalLimit.String()+")", func(s string) error {
		d, err := money.Parse(s)
		if err != nil {
			return err
		}
		cfg.WithdrawalLimit = d
		return nil
	})
	fs.IntVar(&cfg.MaxWithdrawals, "m", cfg.MaxWithdrawals, "maximum withdrawals per session")
	fs.StringVar(&cfg.CurrencySymbol, "s", cfg.CurrencySymbol, "currency symbol")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.NoColor, "nocolor", cfg.NoColor, "disable colored output")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if err := cfg.validate(); err != nil {
		panic(err)
	}
}
