package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/enum"
)

// Invoice is a billable document, usually generated from an accepted
// quote. PaidAmount is cumulative and monotonically non-decreasing; it
// may exceed Total (overpayment is accepted and classifies as PAID).
type Invoice struct {
	ID         uuid.UUID          `json:"id"`
	Reference  string             `json:"reference"` // FAC-{year}-{seq}
	QuoteID    *uuid.UUID         `json:"quote_id,omitempty"`
	ClientID   uuid.UUID          `json:"client_id"`
	ClientName string             `json:"client_name"`
	Date       time.Time          `json:"date"`
	DueDate    time.Time          `json:"due_date"` // creation date + 30 days
	Status     enum.InvoiceStatus `json:"status"`
	Items      []QuoteItem        `json:"items"`
	SubTotal   float64            `json:"sub_total"`
	TaxAmount  float64            `json:"tax_amount"`
	Total      float64            `json:"total"`
	PaidAmount float64            `json:"paid_amount"`
}

// Payment is an immutable record of money received against an invoice.
// Append-only.
type Payment struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Method    string    `json:"method"`
	User      string    `json:"user"`
}
