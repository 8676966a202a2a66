package entity

import (
	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/enum"
)

// Client is a buyer account. TotalSpent accumulates payments received;
// CreditBalance is the outstanding amount owed by the client (positive =
// client owes the business). Both are mutated by the billing workflow only.
type Client struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Company       string          `json:"company,omitempty"`
	TaxID         string          `json:"tax_id,omitempty"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address,omitempty"`
	Type          enum.ClientType `json:"type"`
	TotalSpent    float64         `json:"total_spent"`
	CreditBalance float64         `json:"credit_balance"`
}
