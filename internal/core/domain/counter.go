package domain

import (
	"fmt"
	"time"
)

// Code widths are fixed per code family and part of the visible format.
const (
	CustomerCodeWidth = 3
	PaymentCodeWidth  = 4
)

// PaymentScopePrefix is the fixed prefix for payment-number scopes.
const PaymentScopePrefix = "PT"

// Counter is the per-scope sequence record. One row exists per scope
// (clinic-and-month or PT-and-month); it is created on first use and never
// deleted.
type Counter struct {
	Scope    string `json:"scope"`
	Sequence int64  `json:"sequence"`
}

// MonthScope builds the counter scope for a prefix and a point in time,
// e.g. ("MK", July 2025) -> "MK-2507". Callers capture the time once before
// opening a transaction so that retries keep using the same scope.
func MonthScope(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%s", prefix, at.Format("0601"))
}

// PaymentScope builds the scope used for payment numbers, e.g. "PT-2507".
func PaymentScope(at time.Time) string {
	return MonthScope(PaymentScopePrefix, at)
}

// FormatCode renders a minted sequence as its visible code:
// scope + "-" + zero-padded sequence. ("MK-2507", 1, 3) -> "MK-2507-001".
func FormatCode(scope string, sequence int64, width int) string {
	return fmt.Sprintf("%s-%0*d", scope, width, sequence)
}
