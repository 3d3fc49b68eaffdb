package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/invoicepay/backend/internal/models"
	"github.com/invoicepay/backend/internal/services"
)

type QRHandler struct {
	service *services.QRService
}

func NewQRHandler(service *services.QRService) *QRHandler {
	return &QRHandler{
		service: service,
	}
}

// InvoiceQR renders a payment QR code for an invoice
// @Summary Invoice QR code
// @Description Render the invoice payment payload as a QR code image
// @Tags x402
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /x402/invoice/{id}/qr [get]
func (h *QRHandler) InvoiceQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	qrCode, qrImage, err := h.service.GenerateInvoiceQR(id)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			services.SendErrorResponse(w, "Invoice not found", http.StatusNotFound, nil)
			return
		}
		services.SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	services.SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data: map[string]any{
			"qrCode":  qrCode,
			"qrImage": qrImage,
		},
		Message: "Invoice QR code generated successfully",
	})
}
