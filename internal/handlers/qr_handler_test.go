package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/invoicepay/backend/internal/models"
	"github.com/invoicepay/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRHandler_InvoiceQR(t *testing.T) {
	ledger := services.NewLedgerService()
	handler := NewQRHandler(services.NewQRService(ledger))

	r := chi.NewRouter()
	r.Get("/x402/invoice/{id}/qr", handler.InvoiceQR)

	t.Run("renders a QR for a known invoice", func(t *testing.T) {
		invoice, err := ledger.CreateInvoice("alice", 5, "")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/x402/invoice/"+invoice.ID+"/qr", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]any)
		assert.NotEmpty(t, data["qrCode"])
		assert.NotEmpty(t, data["qrImage"])
	})

	t.Run("404 for an unknown invoice", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/x402/invoice/unknown/qr", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
