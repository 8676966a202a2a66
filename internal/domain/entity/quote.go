package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/enum"
)

// QuoteItem is a line item, shared by quotes and the invoices copied
// from them.
type QuoteItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
}

// Quote is a sales quote. Reference and dates are immutable once created;
// only the status changes over time.
type Quote struct {
	ID         uuid.UUID        `json:"id"`
	Reference  string           `json:"reference"` // DEV-{year}-{seq}
	ClientID   uuid.UUID        `json:"client_id"`
	ClientName string           `json:"client_name"`
	Date       time.Time        `json:"date"`
	ValidUntil time.Time        `json:"valid_until"` // creation date + 15 days
	Status     enum.QuoteStatus `json:"status"`
	Items      []QuoteItem      `json:"items"`
	SubTotal   float64          `json:"sub_total"`
	TaxAmount  float64          `json:"tax_amount"`
	Total      float64          `json:"total"`
	Notes      string           `json:"notes,omitempty"`
}

// TotalQuantity sums the line item quantities
func (q *Quote) TotalQuantity() int {
	var n int
	for _, item := range q.Items {
		n += item.Quantity
	}
	return n
}
