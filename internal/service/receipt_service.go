package service

import (
	"context"
	"fmt"

	"github.com/ridwanfathin/receipt-points-service/internal/domain"
	"github.com/ridwanfathin/receipt-points-service/internal/model"
	"github.com/ridwanfathin/receipt-points-service/internal/points"
	"github.com/ridwanfathin/receipt-points-service/internal/repository"
	"github.com/ridwanfathin/receipt-points-service/internal/validation"
)

// ReceiptServiceError represents an error in the receipt service
type ReceiptServiceError struct {
	Op  string
	Err error
}

func (e *ReceiptServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *ReceiptServiceError) Unwrap() error {
	return e.Err
}

// ReceiptService defines the interface for the receipt scoring workflow
type ReceiptService interface {
	// ProcessReceipt validates a submission, computes its points, stores the
	// result and returns the issued identifier. A validation failure is
	// returned as a *validation.Error; it is never conflated with internal
	// failures such as a store error.
	ProcessReceipt(ctx context.Context, req *model.ReceiptRequest) (string, error)

	// GetPoints returns the points for a previously processed receipt, or an
	// error wrapping domain.ErrReceiptNotFound for an unknown identifier.
	GetPoints(ctx context.Context, receiptID string) (int64, error)
}

// ReceiptServiceImpl implements the ReceiptService interface
type ReceiptServiceImpl struct {
	repository repository.ReceiptRepository
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(repo repository.ReceiptRepository) ReceiptService {
	return &ReceiptServiceImpl{
		repository: repo,
	}
}

// ProcessReceipt runs the submission workflow: validate, score, store
func (s *ReceiptServiceImpl) ProcessReceipt(ctx context.Context, req *model.ReceiptRequest) (string, error) {
	receipt, err := validation.ValidateReceipt(req)
	if err != nil {
		return "", &ReceiptServiceError{
			Op:  "validate_receipt",
			Err: err,
		}
	}

	scored := &domain.ScoredReceipt{
		Receipt: *receipt,
		Points:  points.Calculate(receipt),
	}

	receiptID, err := s.repository.SaveReceipt(ctx, scored)
	if err != nil {
		return "", &ReceiptServiceError{
			Op:  "store_receipt",
			Err: err,
		}
	}

	return receiptID, nil
}

// GetPoints retrieves the stored points for a receipt identifier
func (s *ReceiptServiceImpl) GetPoints(ctx context.Context, receiptID string) (int64, error) {
	pts, err := s.repository.GetPoints(ctx, receiptID)
	if err != nil {
		return 0, &ReceiptServiceError{
			Op:  "get_points",
			Err: err,
		}
	}
	return pts, nil
}
