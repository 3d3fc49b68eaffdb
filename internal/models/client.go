package models

import (
	"time"
)

// Client is a ledger-tracked identity holding a credit balance.
// The ID is an opaque, caller-supplied token; it is not authenticated.
type Client struct {
	ID        string    `json:"id"`
	Balance   int64     `json:"balance"` // credit units, never negative
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
