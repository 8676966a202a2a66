package entity

import "github.com/google/uuid"

// AuditTimeFormat is the local display format audit entries are stamped
// with (day first, as the original ledger printed them).
const AuditTimeFormat = "02/01/2006 15:04:05"

// AuditLog is an immutable activity record. Exactly one entry is written
// per externally-invoked mutating operation.
type AuditLog struct {
	ID        uuid.UUID `json:"id"`
	User      string    `json:"user"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Module    string    `json:"module"`
	Details   string    `json:"details,omitempty"`
	Timestamp string    `json:"timestamp"` // AuditTimeFormat
	IP        string    `json:"ip,omitempty"`
}
