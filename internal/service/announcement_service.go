package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"
	"schoolsite/internal/websocket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrContentNotFound is shared by the content services for missing records.
var ErrContentNotFound = errors.New("record not found")

// --- DTOs ---

type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Type        string `json:"type" binding:"omitempty,oneof=general event enrollment achievement"`
	ExternalURL string `json:"external_url"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateAnnouncementRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Date        string  `json:"date"`
	Type        string  `json:"type" binding:"omitempty,oneof=general event enrollment achievement"`
	ExternalURL *string `json:"external_url"`
	IsActive    *bool   `json:"is_active"`
}

// AnnouncementService backs both the public announcements page (active only)
// and the admin manager (everything).
type AnnouncementService interface {
	Create(ctx context.Context, actorID string, req CreateAnnouncementRequest) (*model.Announcement, error)
	Get(ctx context.Context, id string) (*model.Announcement, error)
	ListPublic(ctx context.Context, page, limit int) ([]model.Announcement, int64, error)
	ListAll(ctx context.Context, annType string, page, limit int) ([]model.Announcement, int64, error)
	Update(ctx context.Context, actorID, id string, req UpdateAnnouncementRequest) (*model.Announcement, error)
	Delete(ctx context.Context, actorID, id string) error
}

type announcementService struct {
	repo   repository.AnnouncementRepository
	audits repository.AuditRepository
	txm    repository.TransactionManager
	hub    Broadcaster
}

func NewAnnouncementService(
	repo repository.AnnouncementRepository,
	audits repository.AuditRepository,
	txm repository.TransactionManager,
	hub Broadcaster,
) AnnouncementService {
	return &announcementService{repo: repo, audits: audits, txm: txm, hub: hub}
}

// --- Implementation ---

func (s *announcementService) Create(ctx context.Context, actorID string, req CreateAnnouncementRequest) (*model.Announcement, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("invalid date: expected YYYY-MM-DD")
	}

	annType := req.Type
	if annType == "" {
		annType = model.AnnouncementTypeGeneral
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	announcement := model.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		Date:        date,
		Type:        annType,
		ExternalURL: req.ExternalURL,
		IsActive:    active,
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.repo.Create(txCtx, &announcement); createErr != nil {
			return fmt.Errorf("failed to create announcement: %w", createErr)
		}
		return s.recordAudit(txCtx, actorID, model.ActionCreateContent, announcement.ID.String(), announcement.Title)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged("announcements")
	return &announcement, nil
}

func (s *announcementService) Get(ctx context.Context, id string) (*model.Announcement, error) {
	annID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid announcement id: %w", err)
	}

	announcement, err := s.repo.FindByID(ctx, annID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return announcement, nil
}

func (s *announcementService) ListPublic(ctx context.Context, page, limit int) ([]model.Announcement, int64, error) {
	return s.repo.ListActive(ctx, page, limit)
}

func (s *announcementService) ListAll(ctx context.Context, annType string, page, limit int) ([]model.Announcement, int64, error) {
	return s.repo.ListAll(ctx, annType, page, limit)
}

func (s *announcementService) Update(ctx context.Context, actorID, id string, req UpdateAnnouncementRequest) (*model.Announcement, error) {
	announcement, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		announcement.Title = req.Title
	}
	if req.Content != "" {
		announcement.Content = req.Content
	}
	if req.Date != "" {
		date, parseErr := time.Parse("2006-01-02", req.Date)
		if parseErr != nil {
			return nil, errors.New("invalid date: expected YYYY-MM-DD")
		}
		announcement.Date = date
	}
	if req.Type != "" {
		announcement.Type = req.Type
	}
	if req.ExternalURL != nil {
		announcement.ExternalURL = *req.ExternalURL
	}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.repo.Update(txCtx, announcement); updateErr != nil {
			return fmt.Errorf("failed to update announcement: %w", updateErr)
		}
		return s.recordAudit(txCtx, actorID, model.ActionUpdateContent, announcement.ID.String(), announcement.Title)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged("announcements")
	return announcement, nil
}

func (s *announcementService) Delete(ctx context.Context, actorID, id string) error {
	announcement, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.repo.Delete(txCtx, announcement.ID); deleteErr != nil {
			return fmt.Errorf("failed to delete announcement: %w", deleteErr)
		}
		return s.recordAudit(txCtx, actorID, model.ActionDeleteContent, announcement.ID.String(), announcement.Title)
	})
	if err != nil {
		return err
	}

	s.notifyChanged("announcements")
	return nil
}

// --- Helpers ---

func (s *announcementService) recordAudit(ctx context.Context, actorID, action, entityID, entityName string) error {
	var userID *uuid.UUID
	if parsed, err := uuid.Parse(actorID); err == nil {
		userID = &parsed
	}

	details, _ := json.Marshal(map[string]string{"section": "announcements"})
	return s.audits.Create(ctx, &model.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(details),
	})
}

func (s *announcementService) notifyChanged(section string) {
	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.EventContentChanged, map[string]string{"section": section})
	}
}
