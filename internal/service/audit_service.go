package service

import (
	"context"
	"time"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"
)

// AuditLogResponse flattens an audit row for the admin activity feed.
type AuditLogResponse struct {
	ID         string    `json:"id"`
	UserEmail  string    `json:"user_email"`
	UserName   string    `json:"user_name"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuditService interface {
	List(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	audits repository.AuditRepository
}

func NewAuditService(audits repository.AuditRepository) AuditService {
	return &auditService{audits: audits}
}

func (s *auditService) List(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.audits.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	items := make([]AuditLogResponse, 0, len(logs))
	for _, entry := range logs {
		items = append(items, toAuditResponse(entry))
	}
	return items, total, nil
}

func toAuditResponse(entry model.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:         entry.ID.String(),
		UserEmail:  "system",
		Action:     entry.Action,
		EntityID:   entry.EntityID,
		EntityName: entry.EntityName,
		Details:    entry.Details,
		CreatedAt:  entry.CreatedAt,
	}
	if entry.User != nil {
		resp.UserEmail = entry.User.Email
		resp.UserName = entry.User.Name
	}
	return resp
}
