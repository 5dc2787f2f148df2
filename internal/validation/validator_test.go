package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/receipt-points-service/internal/model"
)

func validRequest() *model.ReceiptRequest {
	return &model.ReceiptRequest{
		Retailer:     "Target",
		PurchaseDate: "2022-01-01",
		PurchaseTime: "13:01",
		Items: []model.ItemRequest{
			{ShortDescription: "Mountain Dew 12PK", Price: "6.49"},
		},
		Total: "6.49",
	}
}

func TestValidateReceiptValid(t *testing.T) {
	receipt, err := ValidateReceipt(validRequest())
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.Equal(t, "Target", receipt.Retailer)
	assert.Equal(t, 2022, receipt.PurchaseDate.Year())
	assert.Equal(t, 1, receipt.PurchaseDate.Day())
	assert.Equal(t, 13, receipt.PurchaseTime.Hour())
	assert.Equal(t, 1, receipt.PurchaseTime.Minute())
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Mountain Dew 12PK", receipt.Items[0].ShortDescription)
	assert.Equal(t, "6.49", receipt.Items[0].Price.StringFixed(2))
	assert.Equal(t, "6.49", receipt.Total.StringFixed(2))
}

func TestValidateReceiptRetailerWithAmpersand(t *testing.T) {
	req := validRequest()
	req.Retailer = "M&M Corner Market"

	_, err := ValidateReceipt(req)
	assert.NoError(t, err)
}

func TestValidateReceiptUnicode(t *testing.T) {
	t.Run("retailer", func(t *testing.T) {
		req := validRequest()
		req.Retailer = "Café Zürich"

		receipt, err := ValidateReceipt(req)
		require.NoError(t, err)
		assert.Equal(t, "Café Zürich", receipt.Retailer)
	})

	t.Run("description", func(t *testing.T) {
		req := validRequest()
		req.Items = []model.ItemRequest{
			{ShortDescription: "Crème Brûlée", Price: "4.50"},
		}

		_, err := ValidateReceipt(req)
		assert.NoError(t, err)
	})

	t.Run("symbols still rejected", func(t *testing.T) {
		req := validRequest()
		req.Retailer = "Café™"

		_, err := ValidateReceipt(req)
		requireFieldError(t, err, "retailer")
	})
}

func TestValidateReceiptRetailer(t *testing.T) {
	invalid := []string{"", "Target!", "$tore", "Shop@Home"}

	for _, retailer := range invalid {
		req := validRequest()
		req.Retailer = retailer

		_, err := ValidateReceipt(req)
		requireFieldError(t, err, "retailer")
	}
}

func TestValidateReceiptMissingPurchaseDate(t *testing.T) {
	req := validRequest()
	req.PurchaseDate = ""

	_, err := ValidateReceipt(req)
	requireFieldError(t, err, "purchaseDate")
}

func TestValidateReceiptPurchaseDate(t *testing.T) {
	invalid := []string{"01-01-2022", "2022/01/01", "2022-1-1", "2022-13-01", "2022-02-30", "not-a-date"}

	for _, date := range invalid {
		req := validRequest()
		req.PurchaseDate = date

		_, err := ValidateReceipt(req)
		requireFieldError(t, err, "purchaseDate")
	}
}

func TestValidateReceiptPurchaseTime(t *testing.T) {
	invalid := []string{"", "1:01", "13:1", "25:00", "13:60", "13-01"}

	for _, clock := range invalid {
		req := validRequest()
		req.PurchaseTime = clock

		_, err := ValidateReceipt(req)
		requireFieldError(t, err, "purchaseTime")
	}
}

func TestValidateReceiptAmounts(t *testing.T) {
	invalid := []string{"", "6", "6.4", "6.495", "-6.49", ".49", "6,49", "1.2e2", "+6.49"}

	for _, amount := range invalid {
		req := validRequest()
		req.Total = amount

		_, err := ValidateReceipt(req)
		requireFieldError(t, err, "total")
	}
}

func TestValidateReceiptItems(t *testing.T) {
	t.Run("missing items", func(t *testing.T) {
		req := validRequest()
		req.Items = nil

		_, err := ValidateReceipt(req)
		requireFieldError(t, err, "items")
	})

	t.Run("empty items", func(t *testing.T) {
		req := validRequest()
		req.Items = []model.ItemRequest{}

		_, err := ValidateReceipt(req)
		requireFieldError(t, err, "items")
	})

	t.Run("bad description", func(t *testing.T) {
		req := validRequest()
		req.Items = []model.ItemRequest{
			{ShortDescription: "Chips & Dip", Price: "3.00"},
		}

		_, err := ValidateReceipt(req)
		requireFieldError(t, err, "items[0].shortDescription")
	})

	t.Run("bad price", func(t *testing.T) {
		req := validRequest()
		req.Items = []model.ItemRequest{
			{ShortDescription: "Gatorade", Price: "2.2"},
		}

		_, err := ValidateReceipt(req)
		requireFieldError(t, err, "items[0].price")
	})
}

func TestValidateReceiptAccumulatesFieldErrors(t *testing.T) {
	req := &model.ReceiptRequest{
		Retailer:     "$",
		PurchaseDate: "bad",
		PurchaseTime: "bad",
		Items: []model.ItemRequest{
			{ShortDescription: "!", Price: "x"},
		},
		Total: "x",
	}

	_, err := ValidateReceipt(req)
	require.Error(t, err)

	var validationErr *Error
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 6)
}

func TestValidateReceiptNoPartialResultOnFailure(t *testing.T) {
	req := validRequest()
	req.Total = "bad"

	receipt, err := ValidateReceipt(req)
	assert.Error(t, err)
	assert.Nil(t, receipt)
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)

	var validationErr *Error
	require.ErrorAs(t, err, &validationErr)

	for _, f := range validationErr.Fields {
		if f.Field == field {
			return
		}
	}
	t.Fatalf("expected a validation error for field %q, got %v", field, validationErr.Fields)
}
