package entity

import "github.com/google/uuid"

// Supplier is read-only reference data: no purchase-order workflow exists
type Supplier struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	TaxID       string    `json:"tax_id,omitempty"`
	Address     string    `json:"address,omitempty"`
	Category    string    `json:"category"`
}
