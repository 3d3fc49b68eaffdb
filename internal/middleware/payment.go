package middleware

import (
	"fmt"
	"net/http"

	"github.com/invoicepay/backend/internal/models"
	"github.com/invoicepay/backend/internal/services"
	"github.com/rs/zerolog/log"
)

// PaymentRequired wraps a protected resource with a fixed per-request
// cost. A request with enough credit is debited atomically and passed
// through; the debit is not reversed if the downstream handler fails.
// A request without enough credit receives a 402 carrying a freshly
// minted invoice for the cost.
//
// The gate itself is stateless; all monetary state lives in the ledger.
func PaymentRequired(ledger *services.LedgerService, cost int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := r.Header.Get(services.ClientIDHeader)

			if clientID == "" {
				services.SendJSON(w, http.StatusBadRequest, models.APIResponse{
					Success: false,
					Error:   "Missing X-Client-Id header",
					Message: "Client ID is required for payment verification",
				})
				return
			}

			if ledger.Debit(clientID, cost) {
				log.Info().
					Str("clientId", clientID).
					Int64("cost", cost).
					Str("path", r.URL.Path).
					Msg("payment successful")
				next.ServeHTTP(w, r)
				return
			}

			// Insufficient balance: mint an invoice and deny with 402.
			invoice, err := ledger.CreateInvoice(clientID, cost, "API access for "+r.URL.Path)
			if err != nil {
				services.SendErrorResponse(w, "Internal server error", http.StatusInternalServerError, nil)
				return
			}

			log.Info().
				Str("clientId", clientID).
				Str("invoiceId", invoice.ID).
				Str("path", r.URL.Path).
				Msg("payment required")

			services.SendPaymentRequired(w, &models.PaymentRequiredResponse{
				Error:   "Payment Required",
				Code:    http.StatusPaymentRequired,
				Invoice: invoice,
				Message: fmt.Sprintf("Insufficient balance. Please pay invoice %s to access this resource.", invoice.ID),
			})
		})
	}
}

// RequireClientID rejects requests without the client identity header and
// lazily creates the client's ledger account.
func RequireClientID(ledger *services.LedgerService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := r.Header.Get(services.ClientIDHeader)

			if clientID == "" {
				services.SendJSON(w, http.StatusBadRequest, models.APIResponse{
					Success: false,
					Error:   "Missing X-Client-Id header",
					Message: "Client ID is required",
				})
				return
			}

			ledger.EnsureClient(clientID)
			next.ServeHTTP(w, r)
		})
	}
}
