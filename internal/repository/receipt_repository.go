package repository

import (
	"context"

	"github.com/ridwanfathin/receipt-points-service/internal/domain"
)

// ReceiptRepository defines storage for scored receipts. Entries are
// write-once: there is no update, delete or eviction, and stored values
// live until process shutdown.
type ReceiptRepository interface {
	// SaveReceipt stores a scored receipt under a freshly generated opaque
	// identifier and returns that identifier.
	SaveReceipt(ctx context.Context, scored *domain.ScoredReceipt) (string, error)

	// GetPoints returns the points stored for an identifier, or
	// domain.ErrReceiptNotFound for any identifier SaveReceipt never issued.
	GetPoints(ctx context.Context, receiptID string) (int64, error)
}
