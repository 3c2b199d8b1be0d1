package cli

import (
	"errors"

	"github.com/dmitrijs2005/gophbank/internal/common"
)

const (
	msgDepositOK       = "Deposit completed successfully!"
	msgWithdrawOK      = "Withdrawal completed successfully!"
	msgUserCreated     = "User created successfully!"
	msgAccountCreated  = "Account created successfully!"
	msgInvalidOp       = "Invalid operation, please select the desired operation again."
	msgFailedUnhandled = "Operation failed! Unexpected error: "
)

// failureMessage maps an operation error to the text shown to the user.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInsufficientBalance):
		return "Operation failed! You do not have enough balance."
	case errors.Is(err, common.ErrLimitExceeded):
		return "Operation failed! The withdrawal amount exceeds the limit."
	case errors.Is(err, common.ErrWithdrawalCountExceeded):
		return "Operation failed! Maximum number of withdrawals exceeded."
	case errors.Is(err, common.ErrInvalidAmount):
		return "Operation failed! The amount entered is invalid."
	case errors.Is(err, common.ErrDuplicateIdentity):
		return "A user with this identity number already exists!"
	case errors.Is(err, common.ErrUserNotFound):
		return "User not found, account creation flow terminated!"
	case errors.Is(err, common.ErrValidation):
		return "Operation failed! The user data is invalid."
	default:
		return msgFailedUnhandled + err.Error()
	}
}

// isRejection reports whether err is an expected business-rule outcome rather
// than a fault.
func isRejection(err error) bool {
	for _, target := range []error{
		common.ErrInsufficientBalance,
		common.ErrLimitExceeded,
		common.ErrWithdrawalCountExceeded,
		common.ErrInvalidAmount,
		common.ErrDuplicateIdentity,
		common.ErrUserNotFound,
		common.ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
