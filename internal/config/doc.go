// Package config loads runtime configuration for the GophBank console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-g string   agency code for new accounts
//	-l decimal  per-withdrawal limit
//	-m int      maximum withdrawals per session
//	-s string   currency symbol
//	-v string   log level (debug, info, warn, error)
//	-nocolor    disable colored output
//
// # JSON schema
//
// Every key is optional; absent keys keep the default. The limit may be a
// JSON number or a string:
//
//	{
//	  "agency_code": "0001",
//	  "withdrawal_limit": "500.00",
//	  "max_withdrawals": 3,
//	  "currency_symbol": "R$",
//	  "log_level": "warn",
//	  "no_color": false
//	}
//
// Note: This package does not read environment variables.
package config
