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

type OrganizationInput struct {
	Name            string `json:"name" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=student faculty alumni"`
	Description     string `json:"description"`
	LogoURL         string `json:"logo_url"`
	TeacherInCharge string `json:"teacher_in_charge"`
	DisplayOrder    int    `json:"display_order"`
	IsActive        *bool  `json:"is_active"`
}

type OrganizationMemberInput struct {
	Name           string `json:"name" binding:"required"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	MemberCategory string `json:"member_category"`
	PhotoURL       string `json:"photo_url"`
	DisplayOrder   int    `json:"display_order"`
}

type OrganizationPhotoInput struct {
	PhotoURL     string `json:"photo_url" binding:"required"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
}

// OrganizationService manages clubs and bodies along with their rosters
// and photo galleries.
type OrganizationService interface {
	Create(ctx context.Context, actorID string, req OrganizationInput) (*model.Organization, error)
	GetDetail(ctx context.Context, id string) (*model.Organization, error)
	ListPublic(ctx context.Context, orgType string) ([]model.Organization, error)
	ListAll(ctx context.Context, orgType string) ([]model.Organization, error)
	Update(ctx context.Context, actorID, id string, req OrganizationInput) (*model.Organization, error)
	Delete(ctx context.Context, actorID, id string) error

	AddMember(ctx context.Context, actorID, orgID string, req OrganizationMemberInput) (*model.OrganizationMember, error)
	UpdateMember(ctx context.Context, actorID, memberID string, req OrganizationMemberInput) (*model.OrganizationMember, error)
	RemoveMember(ctx context.Context, actorID, memberID string) error

	AddPhoto(ctx context.Context, actorID, orgID string, req OrganizationPhotoInput) (*model.OrganizationPhoto, error)
	RemovePhoto(ctx context.Context, actorID, photoID string) error
}

type organizationService struct {
	repo   repository.OrganizationRepository
	audits repository.AuditRepository
	txm    repository.TransactionManager
	hub    Broadcaster
}

func NewOrganizationService(
	repo repository.OrganizationRepository,
	audits repository.AuditRepository,
	txm repository.TransactionManager,
	hub Broadcaster,
) OrganizationService {
	return &organizationService{repo: repo, audits: audits, txm: txm, hub: hub}
}

func (s *organizationService) Create(ctx context.Context, actorID string, req OrganizationInput) (*model.Organization, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	org := model.Organization{
		Name:            req.Name,
		Type:            req.Type,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		TeacherInCharge: req.TeacherInCharge,
		DisplayOrder:    req.DisplayOrder,
		IsActive:        active,
	}

	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.repo.Create(txCtx, &org); createErr != nil {
			return fmt.Errorf("failed to create organization: %w", createErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionCreateContent, "organizations", org.ID.String(), org.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return &org, nil
}

func (s *organizationService) GetDetail(ctx context.Context, id string) (*model.Organization, error) {
	orgID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid organization id: %w", err)
	}

	org, err := s.repo.FindByIDWithRelations(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return org, nil
}

func (s *organizationService) ListPublic(ctx context.Context, orgType string) ([]model.Organization, error) {
	return s.repo.List(ctx, orgType, true)
}

func (s *organizationService) ListAll(ctx context.Context, orgType string) ([]model.Organization, error) {
	return s.repo.List(ctx, orgType, false)
}

func (s *organizationService) Update(ctx context.Context, actorID, id string, req OrganizationInput) (*model.Organization, error) {
	orgID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid organization id: %w", err)
	}

	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	org.Name = req.Name
	org.Type = req.Type
	org.Description = req.Description
	org.LogoURL = req.LogoURL
	org.TeacherInCharge = req.TeacherInCharge
	org.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		org.IsActive = *req.IsActive
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.repo.Update(txCtx, org); updateErr != nil {
			return fmt.Errorf("failed to update organization: %w", updateErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "organizations", org.ID.String(), org.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return org, nil
}

func (s *organizationService) Delete(ctx context.Context, actorID, id string) error {
	orgID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid organization id: %w", err)
	}

	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.repo.Delete(txCtx, org.ID); deleteErr != nil {
			return fmt.Errorf("failed to delete organization: %w", deleteErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionDeleteContent, "organizations", org.ID.String(), org.Name)
	})
	if err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

func (s *organizationService) AddMember(ctx context.Context, actorID, orgID string, req OrganizationMemberInput) (*model.OrganizationMember, error) {
	parsedOrgID, err := uuid.Parse(orgID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization id: %w", err)
	}

	// Ensure the parent exists before attaching a roster entry
	org, err := s.repo.FindByID(ctx, parsedOrgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	member := model.OrganizationMember{
		OrganizationID: org.ID,
		Name:           req.Name,
		Position:       req.Position,
		Department:     req.Department,
		MemberCategory: req.MemberCategory,
		PhotoURL:       req.PhotoURL,
		DisplayOrder:   req.DisplayOrder,
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if addErr := s.repo.AddMember(txCtx, &member); addErr != nil {
			return fmt.Errorf("failed to add member: %w", addErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "organizations", org.ID.String(), org.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return &member, nil
}

func (s *organizationService) UpdateMember(ctx context.Context, actorID, memberID string, req OrganizationMemberInput) (*model.OrganizationMember, error) {
	parsedID, err := uuid.Parse(memberID)
	if err != nil {
		return nil, fmt.Errorf("invalid member id: %w", err)
	}

	member, err := s.repo.FindMemberByID(ctx, parsedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	member.Name = req.Name
	member.Position = req.Position
	member.Department = req.Department
	member.MemberCategory = req.MemberCategory
	member.PhotoURL = req.PhotoURL
	member.DisplayOrder = req.DisplayOrder

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.repo.UpdateMember(txCtx, member); updateErr != nil {
			return fmt.Errorf("failed to update member: %w", updateErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "organizations", member.OrganizationID.String(), member.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return member, nil
}

func (s *organizationService) RemoveMember(ctx context.Context, actorID, memberID string) error {
	parsedID, err := uuid.Parse(memberID)
	if err != nil {
		return fmt.Errorf("invalid member id: %w", err)
	}

	member, err := s.repo.FindMemberByID(ctx, parsedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if removeErr := s.repo.RemoveMember(txCtx, member.ID); removeErr != nil {
			return fmt.Errorf("failed to remove member: %w", removeErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "organizations", member.OrganizationID.String(), member.Name)
	})
	if err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

func (s *organizationService) AddPhoto(ctx context.Context, actorID, orgID string, req OrganizationPhotoInput) (*model.OrganizationPhoto, error) {
	parsedOrgID, err := uuid.Parse(orgID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization id: %w", err)
	}

	org, err := s.repo.FindByID(ctx, parsedOrgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	photo := model.OrganizationPhoto{
		OrganizationID: org.ID,
		PhotoURL:       req.PhotoURL,
		Caption:        req.Caption,
		DisplayOrder:   req.DisplayOrder,
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if addErr := s.repo.AddPhoto(txCtx, &photo); addErr != nil {
			return fmt.Errorf("failed to add photo: %w", addErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "organizations", org.ID.String(), org.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return &photo, nil
}

func (s *organizationService) RemovePhoto(ctx context.Context, actorID, photoID string) error {
	parsedID, err := uuid.Parse(photoID)
	if err != nil {
		return fmt.Errorf("invalid photo id: %w", err)
	}

	photo, err := s.repo.FindPhotoByID(ctx, parsedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if removeErr := s.repo.RemovePhoto(txCtx, photo.ID); removeErr != nil {
			return fmt.Errorf("failed to remove photo: %w", removeErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "organizations", photo.OrganizationID.String(), photo.Caption)
	})
	if err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

func (s *organizationService) notifyChanged() {
	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.EventContentChanged, map[string]string{"section": "organizations"})
	}
}
