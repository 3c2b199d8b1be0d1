// Package validation holds the structural checks applied to user-supplied
// identifiers before they reach the registry.
//
// The checks are deliberately shallow: an identity number is 11 ASCII digits
// with no checksum, and a date is any three non-empty dash-separated parts.
package validation

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/money"
	"github.com/go-playground/validator/v10"
)

// IdentityLength is the exact number of digits in an identity number.
const IdentityLength = 11

// IsValidIdentity reports whether s is exactly 11 characters, all digits.
func IsValidIdentity(s string) bool {
	if len(s) != IdentityLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsValidDate reports whether s splits on '-' into exactly three non-empty
// parts. Calendar validity is not checked.
func IsValidDate(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// IsValidAmount reports whether s parses as a decimal amount.
// The sign is not checked here; non-positive amounts are rejected by the ledger.
func IsValidAmount(s string) bool {
	_, err := money.Parse(s)
	return err == nil
}

// Validator validates tagged structs. Besides the stock go-playground tags it
// understands:
//
//	identity  IsValidIdentity
//	dmydate   IsValidDate
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("identity", func(fl validator.FieldLevel) bool {
		return IsValidIdentity(fl.Field().String())
	})
	_ = v.RegisterValidation("dmydate", func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	return &Validator{v: v}
}

// Struct validates s and wraps any failure with common.ErrValidation.
func (val *Validator) Struct(s any) error {
	if err := val.v.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}
