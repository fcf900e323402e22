package service

import (
	"context"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

// AuditService serves the read side of the access audit trail.
type AuditService struct {
	reader ports.AuditReader
}

func NewAuditService(reader ports.AuditReader) *AuditService {
	return &AuditService{reader: reader}
}

func (s *AuditService) List(ctx context.Context, filter domain.AuditFilter) (*ports.AuditPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = DefaultPageSize
	}
	if filter.PageSize > MaxPageSize {
		filter.PageSize = MaxPageSize
	}

	items, total, err := s.reader.ListEvents(ctx, filter)
	if err != nil {
		return nil, domain.Upstream("Failed to fetch audit events", err)
	}
	if items == nil {
		items = []*domain.AuditEvent{}
	}

	return &ports.AuditPage{
		Items:      items,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		Total:      total,
		TotalPages: (total + filter.PageSize - 1) / filter.PageSize,
	}, nil
}
