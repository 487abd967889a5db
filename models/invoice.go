package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "PENDING"
	InvoicePaid    InvoiceStatus = "PAID"
)

// Invoice represents an invoice issued against a project. Amounts are stored
// in minor currency units.
type Invoice struct {
	ID          uuid.UUID     `json:"id"`
	ProjectID   uuid.UUID     `json:"project_id"`
	UserID      uuid.UUID     `json:"user_id"`
	AmountCents int64         `json:"amount_cents"`
	Status      InvoiceStatus `json:"status"`
	DueDate     time.Time     `json:"due_date"`
	PaidDate    *time.Time    `json:"paid_date,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
