package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/enum"
)

// Product represents an article held in inventory.
// Stock and Reserved are owned by the stock ledger: no other component
// writes them. Reserved may exceed Stock (over-reservation is accepted,
// not rejected).
type Product struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand"`
	BuyPrice  float64   `json:"buy_price"`
	SellPrice float64   `json:"sell_price"`
	TaxRate   float64   `json:"tax_rate"`
	Stock     int       `json:"stock"`    // physical on-hand quantity, never negative
	Reserved  int       `json:"reserved"` // committed to accepted-but-undelivered quotes
	MinStock  int       `json:"min_stock"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// IsLowStock reports whether the product is at or below its reorder threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// StockMovement is an immutable audit-trail record of a change to a
// product's stock or reservation counters. Append-only.
type StockMovement struct {
	ID          uuid.UUID         `json:"id"`
	ProductID   uuid.UUID         `json:"product_id"`
	ProductName string            `json:"product_name"`
	Type        enum.MovementType `json:"type"`
	Quantity    int               `json:"quantity"`
	Reference   string            `json:"reference,omitempty"` // quote/delivery reference or free-text reason
	Date        time.Time         `json:"date"`
	User        string            `json:"user"`
}
