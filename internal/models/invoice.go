package models

import (
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusExpired InvoiceStatus = "expired"
)

// Invoice records an amount owed to ClientID by a future payer.
// Amount is fixed at creation; the status moves from pending to paid
// at most once, at settlement.
type Invoice struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"clientId"` // recipient of the payment
	Amount      int64         `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	Description string        `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	PaidAt      *time.Time    `json:"paidAt,omitempty"`
	PaidBy      string        `json:"paidBy,omitempty"`
}
