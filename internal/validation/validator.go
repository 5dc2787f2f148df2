package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/receipt-points-service/internal/domain"
	"github.com/ridwanfathin/receipt-points-service/internal/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// RE2's \w only covers ASCII, so the word-character classes are spelled
// out with \p{L}\p{N}_ to accept Unicode letters and digits the same way
// the scoring rules count them.
var (
	retailerPattern    = regexp.MustCompile(`^[\p{L}\p{N}_\s\-&]+$`)
	descriptionPattern = regexp.MustCompile(`^[\p{L}\p{N}_\s\-]+$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern        = regexp.MustCompile(`^\d{2}:\d{2}$`)
	amountPattern      = regexp.MustCompile(`^\d+\.\d{2}$`)
)

// FieldError describes a single field that failed validation
type FieldError struct {
	Field   string
	Message string
}

// Error collects every field that failed validation for one submission.
// Callers collapse it to a uniform client error at the HTTP boundary; the
// per-field detail exists for logging and tests.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "invalid receipt: " + strings.Join(msgs, "; ")
}

// ValidateReceipt checks a raw submission field by field and returns the
// typed receipt, or an *Error listing every failing field. No partial state
// is produced on failure.
func ValidateReceipt(req *model.ReceiptRequest) (*domain.Receipt, error) {
	var fieldErrs []FieldError

	addErr := func(field, message string) {
		fieldErrs = append(fieldErrs, FieldError{Field: field, Message: message})
	}

	if !retailerPattern.MatchString(req.Retailer) {
		addErr("retailer", "must be non-empty and contain only word characters, whitespace, hyphens and ampersands")
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		addErr("purchaseDate", err.Error())
	}

	purchaseTime, err := parseTime(req.PurchaseTime)
	if err != nil {
		addErr("purchaseTime", err.Error())
	}

	total, err := parseAmount(req.Total)
	if err != nil {
		addErr("total", err.Error())
	}

	items := make([]domain.ReceiptItem, 0, len(req.Items))
	if len(req.Items) == 0 {
		addErr("items", "at least one item is required")
	}
	for i, item := range req.Items {
		if !descriptionPattern.MatchString(item.ShortDescription) {
			addErr(fmt.Sprintf("items[%d].shortDescription", i), "must be non-empty and contain only word characters, whitespace and hyphens")
		}
		price, err := parseAmount(item.Price)
		if err != nil {
			addErr(fmt.Sprintf("items[%d].price", i), err.Error())
			continue
		}
		items = append(items, domain.ReceiptItem{
			ShortDescription: item.ShortDescription,
			Price:            price,
		})
	}

	if len(fieldErrs) > 0 {
		return nil, &Error{Fields: fieldErrs}
	}

	return &domain.Receipt{
		Retailer:     req.Retailer,
		PurchaseDate: purchaseDate,
		PurchaseTime: purchaseTime,
		Items:        items,
		Total:        total,
	}, nil
}

// parseDate validates a YYYY-MM-DD string and rejects calendar-impossible
// dates that still match the pattern, e.g. 2022-02-30.
func parseDate(value string) (time.Time, error) {
	if !datePattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a valid calendar date")
	}
	return date, nil
}

// parseTime validates a 24-hour HH:MM string.
func parseTime(value string) (time.Time, error) {
	if !timePattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("invalid time format: expected HH:MM")
	}
	clock, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a valid 24-hour time")
	}
	return clock, nil
}

// parseAmount validates a decimal string with exactly two fraction digits.
// No sign, no scientific notation.
func parseAmount(value string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(value) {
		return decimal.Decimal{}, fmt.Errorf("invalid amount: expected a value like 12.00")
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount: %v", err)
	}
	return amount, nil
}
