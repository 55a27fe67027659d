package service

import (
	"context"
	"encoding/json"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"

	"github.com/google/uuid"
)

// recordContentAudit writes one audit row for a content mutation. The actor id
// comes from the JWT; an unparsable id degrades to a system entry rather than
// failing the mutation's transaction.
func recordContentAudit(ctx context.Context, audits repository.AuditRepository, actorID, action, section, entityID, entityName string) error {
	var userID *uuid.UUID
	if parsed, err := uuid.Parse(actorID); err == nil {
		userID = &parsed
	}

	details, _ := json.Marshal(map[string]string{"section": section})
	return audits.Create(ctx, &model.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(details),
	})
}
