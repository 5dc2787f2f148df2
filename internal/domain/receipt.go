package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrReceiptNotFound is returned when a receipt ID was never issued by the store.
var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptItem represents a single purchased line on a receipt
type ReceiptItem struct {
	ShortDescription string
	Price            decimal.Decimal
}

// Receipt represents a validated purchase receipt. A Receipt is only ever
// constructed by the validation package, so every field is well-formed:
// amounts carry exactly two fraction digits and items is non-empty.
type Receipt struct {
	Retailer     string
	PurchaseDate time.Time
	PurchaseTime time.Time
	Items        []ReceiptItem
	Total        decimal.Decimal
}

// Clone returns a deep copy of the receipt so stored snapshots cannot be
// mutated through the caller's item slice.
func (r Receipt) Clone() Receipt {
	clone := r
	clone.Items = make([]ReceiptItem, len(r.Items))
	copy(clone.Items, r.Items)
	return clone
}

// ScoredReceipt pairs an immutable receipt snapshot with its computed points.
// It is created once per successful submission and never recomputed.
type ScoredReceipt struct {
	Receipt Receipt
	Points  int64
}
