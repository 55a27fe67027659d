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

type ProgramInput struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Details      string `json:"details"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// ProgramService backs the public programs page and its admin manager.
type ProgramService interface {
	Create(ctx context.Context, actorID string, req ProgramInput) (*model.Program, error)
	Get(ctx context.Context, id string) (*model.Program, error)
	ListPublic(ctx context.Context) ([]model.Program, error)
	ListAll(ctx context.Context) ([]model.Program, error)
	Update(ctx context.Context, actorID, id string, req ProgramInput) (*model.Program, error)
	Delete(ctx context.Context, actorID, id string) error
}

type programService struct {
	repo   repository.ProgramRepository
	audits repository.AuditRepository
	txm    repository.TransactionManager
	hub    Broadcaster
}

func NewProgramService(
	repo repository.ProgramRepository,
	audits repository.AuditRepository,
	txm repository.TransactionManager,
	hub Broadcaster,
) ProgramService {
	return &programService{repo: repo, audits: audits, txm: txm, hub: hub}
}

func (s *programService) Create(ctx context.Context, actorID string, req ProgramInput) (*model.Program, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	p := model.Program{
		Title:        req.Title,
		Description:  req.Description,
		Details:      req.Details,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
	}

	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.repo.Create(txCtx, &p); createErr != nil {
			return fmt.Errorf("failed to create program: %w", createErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionCreateContent, "programs", p.ID.String(), p.Title)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return &p, nil
}

func (s *programService) Get(ctx context.Context, id string) (*model.Program, error) {
	pID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid program id: %w", err)
	}

	p, err := s.repo.FindByID(ctx, pID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *programService) ListPublic(ctx context.Context) ([]model.Program, error) {
	return s.repo.List(ctx, true)
}

func (s *programService) ListAll(ctx context.Context) ([]model.Program, error) {
	return s.repo.List(ctx, false)
}

func (s *programService) Update(ctx context.Context, actorID, id string, req ProgramInput) (*model.Program, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = req.Title
	p.Description = req.Description
	p.Details = req.Details
	p.Icon = req.Icon
	p.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.repo.Update(txCtx, p); updateErr != nil {
			return fmt.Errorf("failed to update program: %w", updateErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "programs", p.ID.String(), p.Title)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return p, nil
}

func (s *programService) Delete(ctx context.Context, actorID, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.repo.Delete(txCtx, p.ID); deleteErr != nil {
			return fmt.Errorf("failed to delete program: %w", deleteErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionDeleteContent, "programs", p.ID.String(), p.Title)
	})
	if err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

func (s *programService) notifyChanged() {
	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.EventContentChanged, map[string]string{"section": "programs"})
	}
}
