package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/receipt-points-service/internal/domain"
	"github.com/ridwanfathin/receipt-points-service/internal/model"
	"github.com/ridwanfathin/receipt-points-service/internal/service"
	"github.com/ridwanfathin/receipt-points-service/internal/validation"
)

// ReceiptHandler handles HTTP requests for receipt scoring
type ReceiptHandler struct {
	receiptService service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// ProcessReceipt handles the POST /receipts/process endpoint
// @Summary Submit a receipt for scoring
// @Description Validates a receipt, awards points against the scoring rules and returns an ID for later lookup
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body model.ReceiptRequest true "Receipt data"
// @Success 200 {object} model.ProcessReceiptResponse "ID of the processed receipt"
// @Failure 400 {object} model.ErrorResponse "The receipt is invalid"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /receipts/process [post]
func (h *ReceiptHandler) ProcessReceipt(c *gin.Context) {
	var req model.ReceiptRequest
	if err := bindJSON(c, &req); err != nil {
		logError(c, "failed_to_bind_receipt", err)
		respondBadRequest(c, ErrReceiptInvalid)
		return
	}

	receiptID, err := h.receiptService.ProcessReceipt(c.Request.Context(), &req)
	if err != nil {
		// Per-field detail goes to the log only; the response body stays
		// the collapsed contract message.
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			logError(c, "receipt_validation_failed", err)
			respondBadRequest(c, ErrReceiptInvalid)
			return
		}

		logError(c, "failed_to_process_receipt", err)
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, model.ProcessReceiptResponse{ID: receiptID})
}

// GetPoints handles the GET /receipts/{receiptId}/points endpoint
// @Summary Get points for a receipt
// @Description Returns the points awarded to a previously processed receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param receiptId path string true "Receipt ID"
// @Success 200 {object} model.PointsResponse "Points for the receipt"
// @Failure 404 {object} model.ErrorResponse "No receipt found for that ID"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /receipts/{receiptId}/points [get]
func (h *ReceiptHandler) GetPoints(c *gin.Context) {
	receiptID := c.Param("receiptId")

	pts, err := h.receiptService.GetPoints(c.Request.Context(), receiptID)
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			respondNotFound(c, ErrReceiptNotFound)
			return
		}

		logError(c, "failed_to_get_points", err)
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, model.PointsResponse{Points: pts})
}

// RegisterRoutes registers the API routes for the receipt handler
func (h *ReceiptHandler) RegisterRoutes(router *gin.Engine) {
	receipts := router.Group("/receipts")
	{
		receipts.POST("/process", h.ProcessReceipt)
		receipts.GET("/:receiptId/points", h.GetPoints)
	}
}
