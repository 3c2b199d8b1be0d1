// Package common defines sentinel errors shared by the ledger, registry and
// console layers of GophBank. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Registry-level errors.
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateIdentity = errors.New("duplicate identity")

	// Ledger errors (business-rule rejections).
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrLimitExceeded           = errors.New("exceeds per-withdrawal limit")
	ErrWithdrawalCountExceeded = errors.New("maximum withdrawal count exceeded")

	// Validation errors.
	ErrValidation = errors.New("validation error")
)
