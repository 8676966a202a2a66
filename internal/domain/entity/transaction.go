package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/enum"
)

// Transaction is an immutable cash-register ledger entry, independent of
// invoice-level payment tracking. Append-only.
type Transaction struct {
	ID          uuid.UUID                 `json:"id"`
	Date        time.Time                 `json:"date"`
	Direction   enum.TransactionDirection `json:"direction"`
	Category    enum.TransactionCategory  `json:"category"`
	Amount      float64                   `json:"amount"`
	Method      string                    `json:"method"`
	Description string                    `json:"description"`
	Reference   string                    `json:"reference,omitempty"` // payment or invoice id
	User        string                    `json:"user"`
}
