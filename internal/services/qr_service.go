package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// QRService renders payment QR codes for pending invoices so a payer can
// scan the settlement details instead of copying the invoice id.
type QRService struct {
	ledger *LedgerService
}

func NewQRService(ledger *LedgerService) *QRService {
	return &QRService{
		ledger: ledger,
	}
}

// GenerateInvoiceQR encodes the invoice payment payload as a QR code.
// It returns the base64url payload and a base64 PNG rendering of it.
func (s *QRService) GenerateInvoiceQR(invoiceID string) (string, string, error) {
	invoice, ok := s.ledger.GetInvoice(invoiceID)
	if !ok {
		return "", "", ErrInvoiceNotFound
	}

	qrData := map[string]any{
		"invoiceId": invoice.ID,
		"clientId":  invoice.ClientID,
		"amount":    invoice.Amount,
		"status":    invoice.Status,
	}

	jsonData, err := json.Marshal(qrData)
	if err != nil {
		return "", "", err
	}

	qrCode := base64.URLEncoding.EncodeToString(jsonData)

	qr, err := qrcode.New(qrCode, qrcode.Medium)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		return "", "", err
	}

	qrImage := base64.StdEncoding.EncodeToString(buf.Bytes())

	return qrCode, qrImage, nil
}

// DecodeQRPayload reverses GenerateInvoiceQR's payload encoding.
func DecodeQRPayload(qrCode string) (map[string]any, error) {
	jsonData, err := base64.URLEncoding.DecodeString(qrCode)
	if err != nil {
		return nil, fmt.Errorf("invalid QR payload: %w", err)
	}

	var result map[string]any
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, fmt.Errorf("invalid QR payload: %w", err)
	}

	return result, nil
}
