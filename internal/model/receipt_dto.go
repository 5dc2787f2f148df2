package model

// ReceiptRequest is the raw submission body for POST /receipts/process.
// Amounts stay strings here; the validation package checks every field
// and produces the typed domain.Receipt.
type ReceiptRequest struct {
	Retailer     string        `json:"retailer"`
	PurchaseDate string        `json:"purchaseDate"`
	PurchaseTime string        `json:"purchaseTime"`
	Items        []ItemRequest `json:"items"`
	Total        string        `json:"total"`
}

// ItemRequest represents a single item in a receipt submission
type ItemRequest struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// ProcessReceiptResponse carries the identifier issued for a processed receipt
type ProcessReceiptResponse struct {
	ID string `json:"id"`
}

// PointsResponse carries the points awarded to a stored receipt
type PointsResponse struct {
	Points int64 `json:"points"`
}

// ErrorResponse is the uniform client error body
type ErrorResponse struct {
	Error string `json:"error"`
}
