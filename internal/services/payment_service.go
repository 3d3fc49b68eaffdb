package services

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/invoicepay/backend/internal/models"
)

// ClientIDHeader carries the caller-supplied client identity. The token
// is opaque and deliberately unauthenticated.
const ClientIDHeader = "X-Client-Id"

// PaymentService exposes the payment management API over the ledger.
type PaymentService struct {
	ledger    *LedgerService
	validator *ValidationHelper
}

func NewPaymentService(ledger *LedgerService) *PaymentService {
	return &PaymentService{
		ledger:    ledger,
		validator: NewValidationHelper(),
	}
}

// CreateInvoiceRequest is the body of POST /x402/create-invoice.
type CreateInvoiceRequest struct {
	ClientID    string `json:"clientId" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description,omitempty"`
}

// PayInvoiceRequest is the body of POST /x402/pay-invoice.
type PayInvoiceRequest struct {
	InvoiceID     string `json:"invoiceId" validate:"required"`
	PayerClientID string `json:"payerClientId" validate:"required"`
}

// TopUpRequest is the body of POST /x402/topup.
type TopUpRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
}

// CreateInvoice creates a payment invoice
// @Summary Create invoice
// @Description Create a pending invoice payable to the named client
// @Tags x402
// @Accept json
// @Produce json
// @Param request body CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /x402/create-invoice [post]
func (ps *PaymentService) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest

	if err := DecodeBody(w, r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	if err := ps.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	invoice, err := ps.ledger.CreateInvoice(req.ClientID, req.Amount, req.Description)
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	SendJSON(w, http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    invoice,
		Message: "Invoice created successfully",
	})
}

// PayInvoice settles an existing invoice
// @Summary Pay invoice
// @Description Pay a pending invoice from the payer's balance
// @Tags x402
// @Accept json
// @Produce json
// @Param request body PayInvoiceRequest true "Payment data"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /x402/pay-invoice [post]
func (ps *PaymentService) PayInvoice(w http.ResponseWriter, r *http.Request) {
	var req PayInvoiceRequest

	if err := DecodeBody(w, r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	if err := ps.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	invoice, err := ps.ledger.PayInvoice(req.InvoiceID, req.PayerClientID)
	if err != nil {
		// Not-found, already-settled and insufficient-funds all surface
		// as 400 with the ledger's message.
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    invoice,
		Message: "Invoice paid successfully",
	})
}

// TopUp adds balance to a client's channel
// @Summary Top up balance
// @Description Add credit units to the named client's balance
// @Tags x402
// @Accept json
// @Produce json
// @Param request body TopUpRequest true "Top-up data"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /x402/topup [post]
func (ps *PaymentService) TopUp(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest

	if err := DecodeBody(w, r, &req); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	if err := ps.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	client, err := ps.ledger.TopUp(req.ClientID, req.Amount)
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data: map[string]any{
			"clientId":    client.ID,
			"newBalance":  client.Balance,
			"topUpAmount": req.Amount,
		},
		Message: "Balance topped up successfully",
	})
}

// GetInvoice returns an invoice by id
// @Summary Get invoice
// @Description Get invoice status by ID
// @Tags x402
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /x402/invoice/{id} [get]
func (ps *PaymentService) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	invoice, ok := ps.ledger.GetInvoice(id)
	if !ok {
		SendErrorResponse(w, "Invoice not found", http.StatusNotFound, nil)
		return
	}

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    invoice,
		Message: "Invoice retrieved successfully",
	})
}

// GetBalance returns the calling client's balance
// @Summary Get balance
// @Description Get the balance for the client named in the X-Client-Id header
// @Tags x402
// @Produce json
// @Param X-Client-Id header string true "Client ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /x402/balance [get]
func (ps *PaymentService) GetBalance(w http.ResponseWriter, r *http.Request) {
	clientID := r.Header.Get(ClientIDHeader)
	if clientID == "" {
		SendErrorResponse(w, "X-Client-Id header is required", http.StatusBadRequest, nil)
		return
	}

	balance := ps.ledger.GetBalance(clientID)

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data: map[string]any{
			"clientId": clientID,
			"balance":  balance,
		},
		Message: "Balance retrieved successfully",
	})
}

// GetAllClients lists every known client
// @Summary List clients
// @Description List all client accounts (admin/debug)
// @Tags admin
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /x402/admin/clients [get]
func (ps *PaymentService) GetAllClients(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    ps.ledger.ListClients(),
		Message: "All clients retrieved successfully",
	})
}

// GetAllInvoices lists every invoice
// @Summary List invoices
// @Description List all invoices (admin/debug)
// @Tags admin
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /x402/admin/invoices [get]
func (ps *PaymentService) GetAllInvoices(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    ps.ledger.ListInvoices(),
		Message: "All invoices retrieved successfully",
	})
}
