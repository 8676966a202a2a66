package repository

import (
	"context"

	"github.com/techstock/techstock-api/internal/domain/entity"
)

// AuditLogRepository is the append-only activity log, newest first
type AuditLogRepository interface {
	List(ctx context.Context) ([]entity.AuditLog, error)
	Append(ctx context.Context, log entity.AuditLog) error
}
