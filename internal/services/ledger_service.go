package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/invoicepay/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// ErrInvoiceNotFound is returned by PayInvoice for an unknown invoice id.
var ErrInvoiceNotFound = errors.New("invoice not found")

// ErrInvalidAmount is returned when a credit amount is zero or negative.
var ErrInvalidAmount = errors.New("amount must be greater than 0")

// AlreadySettledError is returned when paying an invoice that is no
// longer pending.
type AlreadySettledError struct {
	Status models.InvoiceStatus
}

func (e *AlreadySettledError) Error() string {
	return fmt.Sprintf("invoice is already %s", e.Status)
}

// InsufficientFundsError is returned when the payer cannot cover the
// invoice amount.
type InsufficientFundsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, available %d", e.Required, e.Available)
}

// LedgerService is the single source of truth for client balances and
// invoices. All monetary state lives here; other components only ever
// see copies returned by its methods.
//
// A single mutex guards every mutation so that the check-and-subtract of
// Debit, and the three-way debit/credit/mark-paid of PayInvoice, are
// each observed as one atomic step. State is in-memory only and lives
// for one process lifetime.
type LedgerService struct {
	mu       sync.RWMutex
	clients  map[string]*models.Client
	invoices map[string]*models.Invoice
}

func NewLedgerService() *LedgerService {
	return &LedgerService{
		clients:  make(map[string]*models.Client),
		invoices: make(map[string]*models.Invoice),
	}
}

// ensureClientLocked creates the client with a zero balance if absent.
// Callers must hold the write lock.
func (s *LedgerService) ensureClientLocked(clientID string) *models.Client {
	client, ok := s.clients[clientID]
	if !ok {
		now := time.Now()
		client = &models.Client{
			ID:        clientID,
			Balance:   0,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.clients[clientID] = client
		log.Info().Str("clientId", clientID).Msg("created new client channel")
	}
	return client
}

// EnsureClient returns the client for clientID, creating it with a zero
// balance if it does not exist yet.
func (s *LedgerService) EnsureClient(clientID string) *models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyClient(s.ensureClientLocked(clientID))
}

// TopUp adds amount credit units to the client's balance, creating the
// client if absent. The amount must be positive.
func (s *LedgerService) TopUp(clientID string, amount int64) (*models.Client, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client := s.ensureClientLocked(clientID)
	client.Balance += amount
	client.UpdatedAt = time.Now()

	log.Info().
		Str("clientId", clientID).
		Int64("amount", amount).
		Int64("balance", client.Balance).
		Msg("topped up client channel")

	return copyClient(client), nil
}

// HasCredit reports whether the client exists and can afford amount.
// It never creates the client.
func (s *LedgerService) HasCredit(clientID string, amount int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[clientID]
	return ok && client.Balance >= amount
}

// Debit atomically checks the balance and subtracts amount if the client
// can afford it. Otherwise it returns false and leaves state untouched.
func (s *LedgerService) Debit(clientID string, amount int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[clientID]
	if !ok || client.Balance < amount {
		return false
	}

	client.Balance -= amount
	client.UpdatedAt = time.Now()

	log.Info().
		Str("clientId", clientID).
		Int64("amount", amount).
		Int64("balance", client.Balance).
		Msg("deducted credit")

	return true
}

// CreateInvoice stores a new pending invoice payable to clientID.
func (s *LedgerService) CreateInvoice(clientID string, amount int64, description string) (*models.Invoice, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	invoice := &models.Invoice{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		Amount:      amount,
		Status:      models.InvoiceStatusPending,
		Description: description,
		CreatedAt:   time.Now(),
	}
	s.invoices[invoice.ID] = invoice

	log.Info().
		Str("invoiceId", invoice.ID).
		Str("clientId", clientID).
		Int64("amount", amount).
		Msg("created invoice")

	return copyInvoice(invoice), nil
}

// PayInvoice settles a pending invoice: it debits the payer, credits the
// invoice recipient and marks the invoice paid, all under one critical
// section. On any failure no state is mutated.
//
// Any non-pending status (paid, or expired once an expiry policy exists)
// is rejected with AlreadySettledError.
func (s *LedgerService) PayInvoice(invoiceID, payerClientID string) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return nil, ErrInvoiceNotFound
	}

	if invoice.Status != models.InvoiceStatusPending {
		return nil, &AlreadySettledError{Status: invoice.Status}
	}

	payer := s.ensureClientLocked(payerClientID)
	if payer.Balance < invoice.Amount {
		return nil, &InsufficientFundsError{
			Required:  invoice.Amount,
			Available: payer.Balance,
		}
	}

	now := time.Now()

	payer.Balance -= invoice.Amount
	payer.UpdatedAt = now

	recipient := s.ensureClientLocked(invoice.ClientID)
	recipient.Balance += invoice.Amount
	recipient.UpdatedAt = now

	invoice.Status = models.InvoiceStatusPaid
	invoice.PaidAt = &now
	invoice.PaidBy = payerClientID

	log.Info().
		Str("invoiceId", invoiceID).
		Str("payerClientId", payerClientID).
		Int64("amount", invoice.Amount).
		Msg("invoice paid")

	return copyInvoice(invoice), nil
}

// GetInvoice returns the invoice with the given id, if it exists.
func (s *LedgerService) GetInvoice(id string) (*models.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoice, ok := s.invoices[id]
	if !ok {
		return nil, false
	}
	return copyInvoice(invoice), true
}

// GetBalance returns the client's balance, or 0 for an unknown client.
func (s *LedgerService) GetBalance(clientID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[clientID]
	if !ok {
		return 0
	}
	return client.Balance
}

// ListClients returns a snapshot of all known clients.
func (s *LedgerService) ListClients() []*models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]*models.Client, 0, len(s.clients))
	for _, client := range s.clients {
		clients = append(clients, copyClient(client))
	}
	return clients
}

// ListInvoices returns a snapshot of all invoices.
func (s *LedgerService) ListInvoices() []*models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoices := make([]*models.Invoice, 0, len(s.invoices))
	for _, invoice := range s.invoices {
		invoices = append(invoices, copyInvoice(invoice))
	}
	return invoices
}

func copyClient(c *models.Client) *models.Client {
	clone := *c
	return &clone
}

func copyInvoice(i *models.Invoice) *models.Invoice {
	clone := *i
	if i.PaidAt != nil {
		paidAt := *i.PaidAt
		clone.PaidAt = &paidAt
	}
	return &clone
}
