package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/invoicepay/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentRouter(ledger *LedgerService) chi.Router {
	ps := NewPaymentService(ledger)
	r := chi.NewRouter()
	r.Post("/x402/create-invoice", ps.CreateInvoice)
	r.Post("/x402/pay-invoice", ps.PayInvoice)
	r.Post("/x402/topup", ps.TopUp)
	r.Get("/x402/invoice/{id}", ps.GetInvoice)
	r.Get("/x402/balance", ps.GetBalance)
	r.Get("/x402/admin/clients", ps.GetAllClients)
	r.Get("/x402/admin/invoices", ps.GetAllInvoices)
	return r
}

func doJSON(t *testing.T, router chi.Router, method, target string, body any, headers map[string]string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	r := httptest.NewRequest(method, target, &buf)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	var resp models.APIResponse
	if w.Body.Len() > 0 {
		json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestPaymentService_CreateInvoice(t *testing.T) {
	router := newPaymentRouter(NewLedgerService())

	t.Run("creates a pending invoice", func(t *testing.T) {
		w, resp := doJSON(t, router, "POST", "/x402/create-invoice", CreateInvoiceRequest{
			ClientID:    "alice",
			Amount:      5,
			Description: "manual invoice",
		}, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Invoice created successfully", resp.Message)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "alice", data["clientId"])
		assert.Equal(t, float64(5), data["amount"])
		assert.Equal(t, "pending", data["status"])
		assert.NotEmpty(t, data["id"])
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		w, resp := doJSON(t, router, "POST", "/x402/create-invoice", map[string]any{
			"clientId": "alice",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Validation failed", resp.Error)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/x402/create-invoice", map[string]any{
			"clientId": "alice",
			"amount":   -1,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/x402/create-invoice", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/x402/create-invoice", map[string]any{
			"clientId": "alice",
			"amount":   5,
			"extra":    true,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentService_PayInvoice(t *testing.T) {
	ledger := NewLedgerService()
	router := newPaymentRouter(ledger)

	ledger.TopUp("payer", 20)
	invoice, err := ledger.CreateInvoice("issuer", 8, "")
	require.NoError(t, err)

	t.Run("pays a pending invoice", func(t *testing.T) {
		w, resp := doJSON(t, router, "POST", "/x402/pay-invoice", PayInvoiceRequest{
			InvoiceID:     invoice.ID,
			PayerClientID: "payer",
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Invoice paid successfully", resp.Message)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "paid", data["status"])
		assert.Equal(t, "payer", data["paidBy"])
		assert.Equal(t, int64(12), ledger.GetBalance("payer"))
		assert.Equal(t, int64(8), ledger.GetBalance("issuer"))
	})

	t.Run("second payment surfaces the ledger message", func(t *testing.T) {
		w, resp := doJSON(t, router, "POST", "/x402/pay-invoice", PayInvoiceRequest{
			InvoiceID:     invoice.ID,
			PayerClientID: "payer",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "invoice is already paid", resp.Error)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		w, resp := doJSON(t, router, "POST", "/x402/pay-invoice", PayInvoiceRequest{
			InvoiceID:     "missing",
			PayerClientID: "payer",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invoice not found", resp.Error)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		big, err := ledger.CreateInvoice("issuer", 100, "")
		require.NoError(t, err)

		w, resp := doJSON(t, router, "POST", "/x402/pay-invoice", PayInvoiceRequest{
			InvoiceID:     big.ID,
			PayerClientID: "payer",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "insufficient balance: required 100, available 12", resp.Error)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/x402/pay-invoice", map[string]any{
			"invoiceId": invoice.ID,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentService_TopUp(t *testing.T) {
	ledger := NewLedgerService()
	router := newPaymentRouter(ledger)

	t.Run("credits the client", func(t *testing.T) {
		w, resp := doJSON(t, router, "POST", "/x402/topup", TopUpRequest{
			ClientID: "alice",
			Amount:   10,
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "alice", data["clientId"])
		assert.Equal(t, float64(10), data["newBalance"])
		assert.Equal(t, float64(10), data["topUpAmount"])
		assert.Equal(t, int64(10), ledger.GetBalance("alice"))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/x402/topup", map[string]any{
			"clientId": "alice",
			"amount":   0,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, int64(10), ledger.GetBalance("alice"))
	})

	t.Run("rejects missing client", func(t *testing.T) {
		w, _ := doJSON(t, router, "POST", "/x402/topup", map[string]any{
			"amount": 10,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentService_GetInvoice(t *testing.T) {
	ledger := NewLedgerService()
	router := newPaymentRouter(ledger)
	invoice, _ := ledger.CreateInvoice("alice", 3, "")

	t.Run("returns the invoice", func(t *testing.T) {
		w, resp := doJSON(t, router, "GET", "/x402/invoice/"+invoice.ID, nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]any)
		assert.Equal(t, invoice.ID, data["id"])
	})

	t.Run("404 for unknown id", func(t *testing.T) {
		w, resp := doJSON(t, router, "GET", "/x402/invoice/unknown", nil, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Invoice not found", resp.Error)
	})
}

func TestPaymentService_GetBalance(t *testing.T) {
	ledger := NewLedgerService()
	router := newPaymentRouter(ledger)
	ledger.TopUp("alice", 7)

	t.Run("returns the balance", func(t *testing.T) {
		w, resp := doJSON(t, router, "GET", "/x402/balance", nil, map[string]string{
			ClientIDHeader: "alice",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]any)
		assert.Equal(t, float64(7), data["balance"])
	})

	t.Run("zero for unknown client", func(t *testing.T) {
		w, resp := doJSON(t, router, "GET", "/x402/balance", nil, map[string]string{
			ClientIDHeader: "ghost",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]any)
		assert.Equal(t, float64(0), data["balance"])
	})

	t.Run("400 without identity header", func(t *testing.T) {
		w, resp := doJSON(t, router, "GET", "/x402/balance", nil, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "X-Client-Id header is required", resp.Error)
	})
}

func TestPaymentService_AdminLists(t *testing.T) {
	ledger := NewLedgerService()
	router := newPaymentRouter(ledger)
	ledger.TopUp("alice", 1)
	ledger.TopUp("bob", 2)
	ledger.CreateInvoice("alice", 1, "")

	t.Run("lists clients", func(t *testing.T) {
		w, resp := doJSON(t, router, "GET", "/x402/admin/clients", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, resp.Data.([]any), 2)
	})

	t.Run("lists invoices", func(t *testing.T) {
		w, resp := doJSON(t, router, "GET", "/x402/admin/invoices", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, resp.Data.([]any), 1)
	})
}
