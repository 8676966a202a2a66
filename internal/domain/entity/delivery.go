package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/enum"
)

// DeliveryNote tracks a physical shipment. QuoteReference links it to the
// originating quote; a note without one is a manual delivery and never
// affects inventory.
type DeliveryNote struct {
	ID             uuid.UUID           `json:"id"`
	Reference      string              `json:"reference"` // BL-{6 trailing digits of a ms timestamp}
	QuoteReference string              `json:"quote_reference,omitempty"`
	ClientName     string              `json:"client_name"`
	Date           time.Time           `json:"date"`
	Status         enum.DeliveryStatus `json:"status"`
	Address        string              `json:"address"`
	Driver         string              `json:"driver,omitempty"`
	ItemsCount     int                 `json:"items_count"`
}
