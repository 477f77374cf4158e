package services

import (
	"context"

	"trend-studio/models"
)

// AILogStore serves stored generative-call audit entries.
type AILogStore interface {
	FindRecent(ctx context.Context, limit int64) ([]models.AILog, error)
}

// AuditService exposes the generative-call audit trail for the monitoring
// endpoint.
type AuditService struct {
	logs AILogStore
}

func NewAuditService(logs AILogStore) *AuditService {
	return &AuditService{logs: logs}
}

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// RecentCalls returns the newest audit entries, bounded to a sane page size.
func (s *AuditService) RecentCalls(ctx context.Context, limit int64) ([]models.AILog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	entries, err := s.logs.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.AILog{}
	}
	return entries, nil
}
