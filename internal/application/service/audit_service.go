package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
)

// AuditService appends immutable activity records for every mutating
// operation. Recording is best-effort: a failed store write is not
// recoverable at this layer, so it never fails the operation it traces.
type AuditService struct {
	auditRepo repository.AuditLogRepository
	now       func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		now:       time.Now,
	}
}

// Record appends one entry at the head of the log, stamped with the
// acting identity (or the System sentinel) and the local display time.
func (s *AuditService) Record(ctx context.Context, actor entity.Actor, action, module, details string) {
	actor = actor.OrSystem()
	_ = s.auditRepo.Append(ctx, entity.AuditLog{
		ID:        uuid.New(),
		User:      actor.Name,
		Role:      actor.Role,
		Action:    action,
		Module:    module,
		Details:   details,
		Timestamp: s.now().Format(entity.AuditTimeFormat),
	})
}

// AuditFilter narrows the audit log listing
type AuditFilter struct {
	Search string
	Module string
	Date   string // YYYY-MM-DD
}

// List returns the filtered log, newest first
func (s *AuditService) List(ctx context.Context, filter AuditFilter) ([]entity.AuditLog, error) {
	logs, err := s.auditRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var datePrefix string
	if filter.Date != "" {
		if parsed, err := time.Parse("2006-01-02", filter.Date); err == nil {
			datePrefix = parsed.Format("02/01/2006")
		}
	}

	search := strings.ToLower(filter.Search)
	out := make([]entity.AuditLog, 0, len(logs))
	for _, log := range logs {
		if search != "" &&
			!strings.Contains(strings.ToLower(log.User), search) &&
			!strings.Contains(strings.ToLower(log.Action), search) &&
			!strings.Contains(strings.ToLower(log.Details), search) {
			continue
		}
		if filter.Module != "" && log.Module != filter.Module {
			continue
		}
		if datePrefix != "" && !strings.HasPrefix(log.Timestamp, datePrefix) {
			continue
		}
		out = append(out, log)
	}
	return out, nil
}

// Modules returns the distinct module labels present in the log
func (s *AuditService) Modules(ctx context.Context) ([]string, error) {
	logs, err := s.auditRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, log := range logs {
		if !seen[log.Module] {
			seen[log.Module] = true
			out = append(out, log.Module)
		}
	}
	return out, nil
}

// ExportCSV serializes the filtered log to a comma-separated table with
// every field double-quoted, matching the historical export format.
func (s *AuditService) ExportCSV(ctx context.Context, filter AuditFilter) ([]byte, error) {
	logs, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	writeRow(&b, "Timestamp", "User", "Module", "Action", "Details")
	for _, log := range logs {
		writeRow(&b, log.Timestamp, log.User, log.Module, log.Action, log.Details)
	}
	return []byte(b.String()), nil
}

func writeRow(b *strings.Builder, fields ...string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
