package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ridwanfathin/receipt-points-service/internal/domain"
)

// MemoryReceiptRepository keeps scored receipts in a process-lifetime map
// guarded by a single lock. It is safe for concurrent use.
type MemoryReceiptRepository struct {
	mu       sync.RWMutex
	receipts map[string]domain.ScoredReceipt
}

// NewMemoryReceiptRepository creates an empty in-memory repository
func NewMemoryReceiptRepository() *MemoryReceiptRepository {
	return &MemoryReceiptRepository{
		receipts: make(map[string]domain.ScoredReceipt),
	}
}

// SaveReceipt stores a snapshot of the scored receipt under a random UUID.
// The identifier is generated before taking the lock; a v4 collision is
// effectively impossible, but the check costs one map lookup so it is done
// anyway under the write lock.
func (r *MemoryReceiptRepository) SaveReceipt(_ context.Context, scored *domain.ScoredReceipt) (string, error) {
	snapshot := domain.ScoredReceipt{
		Receipt: scored.Receipt.Clone(),
		Points:  scored.Points,
	}

	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		if _, exists := r.receipts[id]; !exists {
			break
		}
		id = uuid.NewString()
	}
	r.receipts[id] = snapshot

	return id, nil
}

// GetPoints returns the points recorded for an identifier
func (r *MemoryReceiptRepository) GetPoints(_ context.Context, receiptID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scored, ok := r.receipts[receiptID]
	if !ok {
		return 0, domain.ErrReceiptNotFound
	}
	return scored.Points, nil
}

// Len reports how many receipts are currently stored
func (r *MemoryReceiptRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.receipts)
}
