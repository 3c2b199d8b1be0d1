package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophbank/internal/flagx"
	"github.com/shopspring/decimal"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from a zero value.
type JsonConfig struct {
	AgencyCode      *string          `json:"agency_code"`
	WithdrawalLimit *decimal.Decimal `json:"withdrawal_limit"`
	MaxWithdrawals  *int             `json:"max_withdrawals"`
	CurrencySymbol  *string          `json:"currency_symbol"`
	LogLevel        *string          `json:"log_level"`
	NoColor         *bool            `json:"no_color"`
}

// parseJson overlays cfg with the keys present in the JSON file named by
// -c or -config. Without either flag it does nothing.
//
// Panics on read or unmarshal errors and on negative withdrawal rules.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AgencyCode != nil {
		cfg.AgencyCode = *jc.AgencyCode
	}
	if jc.WithdrawalLimit != nil {
		cfg.WithdrawalLimit = *jc.WithdrawalLimit
	}
	if jc.MaxWithdrawals != nil {
		cfg.MaxWithdrawals = *jc.MaxWithdrawals
	}
	if jc.CurrencySymbol != nil {
		cfg.CurrencySymbol = *jc.CurrencySymbol
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.NoColor != nil {
		cfg.NoColor = *jc.NoColor
	}

	if err := cfg.validate(); err != nil {
		panic(err)
	}
}
