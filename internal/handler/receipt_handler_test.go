package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/receipt-points-service/internal/repository"
	"github.com/ridwanfathin/receipt-points-service/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	receiptService := service.NewReceiptService(repository.NewMemoryReceiptRepository())
	NewReceiptHandler(receiptService).RegisterRoutes(router)

	return router
}

func postReceipt(t *testing.T, router *gin.Engine, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/receipts/process", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func getPoints(t *testing.T, router *gin.Engine, receiptID string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/receipts/"+receiptID+"/points", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func cornerMarketReceipt() map[string]interface{} {
	item := map[string]interface{}{
		"shortDescription": "Gatorade",
		"price":            "2.25",
	}
	return map[string]interface{}{
		"retailer":     "M&M Corner Market",
		"purchaseDate": "2022-03-20",
		"purchaseTime": "14:33",
		"items":        []interface{}{item, item, item, item},
		"total":        "9.00",
	}
}

func TestProcessAndGetPoints(t *testing.T) {
	router := newTestRouter()

	body, err := json.Marshal(cornerMarketReceipt())
	require.NoError(t, err)

	resp := postReceipt(t, router, body)
	require.Equal(t, http.StatusOK, resp.Code)

	var processed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &processed))
	require.NotEmpty(t, processed.ID)

	resp = getPoints(t, router, processed.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	var points struct {
		Points int64 `json:"points"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &points))
	assert.Equal(t, int64(109), points.Points)
}

func TestProcessReceiptMissingField(t *testing.T) {
	router := newTestRouter()

	receipt := cornerMarketReceipt()
	delete(receipt, "purchaseDate")
	body, err := json.Marshal(receipt)
	require.NoError(t, err)

	resp := postReceipt(t, router, body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error": "The receipt is invalid."}`, resp.Body.String())
}

func TestProcessReceiptMalformedJSON(t *testing.T) {
	router := newTestRouter()

	resp := postReceipt(t, router, []byte(`{"retailer": `))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error": "The receipt is invalid."}`, resp.Body.String())
}

func TestProcessReceiptNonStringPrice(t *testing.T) {
	router := newTestRouter()

	receipt := cornerMarketReceipt()
	receipt["total"] = 9.00
	body, err := json.Marshal(receipt)
	require.NoError(t, err)

	resp := postReceipt(t, router, body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error": "The receipt is invalid."}`, resp.Body.String())
}

func TestGetPointsUnknownID(t *testing.T) {
	router := newTestRouter()

	resp := getPoints(t, router, "adb6b560-0eef-42bc-9d16-df48f30e89b2")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error": "No receipt found for that ID."}`, resp.Body.String())
}

func TestValidationDetailNeverLeaks(t *testing.T) {
	router := newTestRouter()

	// Two very different failures must produce byte-identical error bodies.
	missingItems := cornerMarketReceipt()
	missingItems["items"] = []interface{}{}
	badRetailer := cornerMarketReceipt()
	badRetailer["retailer"] = "$$$"

	bodies := make([]string, 0, 2)
	for _, receipt := range []map[string]interface{}{missingItems, badRetailer} {
		body, err := json.Marshal(receipt)
		require.NoError(t, err)

		resp := postReceipt(t, router, body)
		require.Equal(t, http.StatusBadRequest, resp.Code)
		bodies = append(bodies, resp.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
}
