package domain

import (
	"errors"
	"fmt"
)

var (
	// Balance errors
	ErrAmountOverflow    = errors.New("amount overflow")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountLocked     = errors.New("account is locked")

	// Dispute lifecycle errors
	ErrDepositNotFound   = errors.New("deposit not found")
	ErrTxAlreadyDisputed = errors.New("transaction is already disputed")
	ErrTxNotDisputed     = errors.New("transaction is not disputed")
	ErrDuplicateTx       = errors.New("duplicate deposit transaction id")
)

// Reason returns a stable, low-cardinality label for err, suitable for
// metrics and structured logs.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAmountOverflow):
		return "amount_overflow"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, ErrDepositNotFound):
		return "deposit_not_found"
	case errors.Is(err, ErrTxAlreadyDisputed):
		return "tx_already_disputed"
	case errors.Is(err, ErrTxNotDisputed):
		return "tx_not_disputed"
	case errors.Is(err, ErrDuplicateTx):
		return "duplicate_tx"
	case errors.Is(err, ErrTooLarge):
		return "amount_too_large"
	case errors.Is(err, ErrMultipleDots):
		return "amount_multiple_dots"
	case errors.Is(err, ErrTooPrecise):
		return "amount_too_precise"
	case errors.Is(err, ErrAmountSyntax):
		return "amount_syntax"
	default:
		return "unknown"
	}
}

// InvariantViolation is the panic value used when ledger state would become
// inconsistent. It is never returned as an ordinary error.
type InvariantViolation struct {
	Client ClientID
	Detail string
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violated for client %d: %s", v.Client, v.Detail)
}

func violate(client ClientID, format string, args ...any) {
	panic(InvariantViolation{Client: client, Detail: fmt.Sprintf(format, args...)})
}
