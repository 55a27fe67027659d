package service

import (
	"context"
	"errors"
	"fmt"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"
	"schoolsite/internal/websocket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type PersonnelInput struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position" binding:"required"`
	Department   string `json:"department"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	PhotoURL     string `json:"photo_url"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type HistoricalPersonnelInput struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Years        string `json:"years"`
	PhotoURL     string `json:"photo_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// PersonnelService backs the public staff directory and its admin manager,
// covering both current and historical personnel.
type PersonnelService interface {
	Create(ctx context.Context, actorID string, req PersonnelInput) (*model.Personnel, error)
	ListPublic(ctx context.Context) ([]model.Personnel, error)
	ListAll(ctx context.Context, department string) ([]model.Personnel, error)
	Update(ctx context.Context, actorID, id string, req PersonnelInput) (*model.Personnel, error)
	Delete(ctx context.Context, actorID, id string) error

	CreateHistorical(ctx context.Context, actorID string, req HistoricalPersonnelInput) (*model.HistoricalPersonnel, error)
	ListHistoricalPublic(ctx context.Context, category string) ([]model.HistoricalPersonnel, error)
	ListHistoricalAll(ctx context.Context, category string) ([]model.HistoricalPersonnel, error)
	UpdateHistorical(ctx context.Context, actorID, id string, req HistoricalPersonnelInput) (*model.HistoricalPersonnel, error)
	DeleteHistorical(ctx context.Context, actorID, id string) error
}

type personnelService struct {
	repo   repository.PersonnelRepository
	audits repository.AuditRepository
	txm    repository.TransactionManager
	hub    Broadcaster
}

func NewPersonnelService(
	repo repository.PersonnelRepository,
	audits repository.AuditRepository,
	txm repository.TransactionManager,
	hub Broadcaster,
) PersonnelService {
	return &personnelService{repo: repo, audits: audits, txm: txm, hub: hub}
}

// --- Current personnel ---

func (s *personnelService) Create(ctx context.Context, actorID string, req PersonnelInput) (*model.Personnel, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	p := model.Personnel{
		Name:         req.Name,
		Position:     req.Position,
		Department:   req.Department,
		Email:        req.Email,
		Phone:        req.Phone,
		PhotoURL:     req.PhotoURL,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
	}

	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.repo.Create(txCtx, &p); createErr != nil {
			return fmt.Errorf("failed to create personnel: %w", createErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionCreateContent, "personnel", p.ID.String(), p.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return &p, nil
}

func (s *personnelService) ListPublic(ctx context.Context) ([]model.Personnel, error) {
	return s.repo.ListActive(ctx)
}

func (s *personnelService) ListAll(ctx context.Context, department string) ([]model.Personnel, error) {
	return s.repo.ListAll(ctx, department)
}

func (s *personnelService) Update(ctx context.Context, actorID, id string, req PersonnelInput) (*model.Personnel, error) {
	pID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid personnel id: %w", err)
	}

	p, err := s.repo.FindByID(ctx, pID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	p.Name = req.Name
	p.Position = req.Position
	p.Department = req.Department
	p.Email = req.Email
	p.Phone = req.Phone
	p.PhotoURL = req.PhotoURL
	p.Description = req.Description
	p.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.repo.Update(txCtx, p); updateErr != nil {
			return fmt.Errorf("failed to update personnel: %w", updateErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "personnel", p.ID.String(), p.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return p, nil
}

func (s *personnelService) Delete(ctx context.Context, actorID, id string) error {
	pID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid personnel id: %w", err)
	}

	p, err := s.repo.FindByID(ctx, pID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.repo.Delete(txCtx, pID); deleteErr != nil {
			return fmt.Errorf("failed to delete personnel: %w", deleteErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionDeleteContent, "personnel", p.ID.String(), p.Name)
	})
	if err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

// --- Historical personnel ---

func (s *personnelService) CreateHistorical(ctx context.Context, actorID string, req HistoricalPersonnelInput) (*model.HistoricalPersonnel, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	p := model.HistoricalPersonnel{
		Name:         req.Name,
		Position:     req.Position,
		Category:     req.Category,
		Years:        req.Years,
		PhotoURL:     req.PhotoURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
	}

	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.repo.CreateHistorical(txCtx, &p); createErr != nil {
			return fmt.Errorf("failed to create historical personnel: %w", createErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionCreateContent, "historical_personnel", p.ID.String(), p.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return &p, nil
}

func (s *personnelService) ListHistoricalPublic(ctx context.Context, category string) ([]model.HistoricalPersonnel, error) {
	return s.repo.ListHistorical(ctx, category, true)
}

func (s *personnelService) ListHistoricalAll(ctx context.Context, category string) ([]model.HistoricalPersonnel, error) {
	return s.repo.ListHistorical(ctx, category, false)
}

func (s *personnelService) UpdateHistorical(ctx context.Context, actorID, id string, req HistoricalPersonnelInput) (*model.HistoricalPersonnel, error) {
	pID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid historical personnel id: %w", err)
	}

	p, err := s.repo.FindHistoricalByID(ctx, pID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	p.Name = req.Name
	p.Position = req.Position
	p.Category = req.Category
	p.Years = req.Years
	p.PhotoURL = req.PhotoURL
	p.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.repo.UpdateHistorical(txCtx, p); updateErr != nil {
			return fmt.Errorf("failed to update historical personnel: %w", updateErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "historical_personnel", p.ID.String(), p.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return p, nil
}

func (s *personnelService) DeleteHistorical(ctx context.Context, actorID, id string) error {
	pID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid historical personnel id: %w", err)
	}

	p, err := s.repo.FindHistoricalByID(ctx, pID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.repo.DeleteHistorical(txCtx, pID); deleteErr != nil {
			return fmt.Errorf("failed to delete historical personnel: %w", deleteErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionDeleteContent, "historical_personnel", p.ID.String(), p.Name)
	})
	if err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

func (s *personnelService) notifyChanged() {
	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.EventContentChanged, map[string]string{"section": "personnel"})
	}
}
