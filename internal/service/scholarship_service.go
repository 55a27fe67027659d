package service

import (
	"context"
	"errors"
	"fmt"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"
	"schoolsite/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ScholarshipInput struct {
	Name           string `json:"name" binding:"required"`
	Type           string `json:"type" binding:"omitempty,oneof=academic athletic financial"`
	Description    string `json:"description"`
	DiscountAmount string `json:"discount_amount"` // decimal string, e.g. "5000.00"
	DiscountNote   string `json:"discount_note"`
	Eligibility    string `json:"eligibility"`
	DisplayOrder   int    `json:"display_order"`
	IsActive       *bool  `json:"is_active"`
}

type ApplicationInfoInput struct {
	Requirements string `json:"requirements"`
	HowToApply   string `json:"how_to_apply"`
	DeadlineInfo string `json:"deadline_info"`
	ContactInfo  string `json:"contact_info"`
}

// ScholarshipService backs the public scholarships page, the singleton
// application-info block, and their admin managers.
type ScholarshipService interface {
	Create(ctx context.Context, actorID string, req ScholarshipInput) (*model.Scholarship, error)
	Get(ctx context.Context, id string) (*model.Scholarship, error)
	ListPublic(ctx context.Context, schType string) ([]model.Scholarship, error)
	ListAll(ctx context.Context, schType string) ([]model.Scholarship, error)
	Update(ctx context.Context, actorID, id string, req ScholarshipInput) (*model.Scholarship, error)
	Delete(ctx context.Context, actorID, id string) error

	GetApplicationInfo(ctx context.Context) (*model.ScholarshipApplicationInfo, error)
	SaveApplicationInfo(ctx context.Context, actorID string, req ApplicationInfoInput) (*model.ScholarshipApplicationInfo, error)
}

type scholarshipService struct {
	repo   repository.ScholarshipRepository
	audits repository.AuditRepository
	txm    repository.TransactionManager
	hub    Broadcaster
}

func NewScholarshipService(
	repo repository.ScholarshipRepository,
	audits repository.AuditRepository,
	txm repository.TransactionManager,
	hub Broadcaster,
) ScholarshipService {
	return &scholarshipService{repo: repo, audits: audits, txm: txm, hub: hub}
}

func (s *scholarshipService) Create(ctx context.Context, actorID string, req ScholarshipInput) (*model.Scholarship, error) {
	amount, err := parseDiscount(req.DiscountAmount)
	if err != nil {
		return nil, err
	}

	schType := req.Type
	if schType == "" {
		schType = model.ScholarshipTypeAcademic
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	sch := model.Scholarship{
		Name:           req.Name,
		Type:           schType,
		Description:    req.Description,
		DiscountAmount: amount,
		DiscountNote:   req.DiscountNote,
		Eligibility:    req.Eligibility,
		DisplayOrder:   req.DisplayOrder,
		IsActive:       active,
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.repo.Create(txCtx, &sch); createErr != nil {
			return fmt.Errorf("failed to create scholarship: %w", createErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionCreateContent, "scholarships", sch.ID.String(), sch.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return &sch, nil
}

func (s *scholarshipService) Get(ctx context.Context, id string) (*model.Scholarship, error) {
	schID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid scholarship id: %w", err)
	}

	sch, err := s.repo.FindByID(ctx, schID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return sch, nil
}

func (s *scholarshipService) ListPublic(ctx context.Context, schType string) ([]model.Scholarship, error) {
	return s.repo.List(ctx, schType, true)
}

func (s *scholarshipService) ListAll(ctx context.Context, schType string) ([]model.Scholarship, error) {
	return s.repo.List(ctx, schType, false)
}

func (s *scholarshipService) Update(ctx context.Context, actorID, id string, req ScholarshipInput) (*model.Scholarship, error) {
	sch, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	amount, err := parseDiscount(req.DiscountAmount)
	if err != nil {
		return nil, err
	}

	sch.Name = req.Name
	if req.Type != "" {
		sch.Type = req.Type
	}
	sch.Description = req.Description
	sch.DiscountAmount = amount
	sch.DiscountNote = req.DiscountNote
	sch.Eligibility = req.Eligibility
	sch.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		sch.IsActive = *req.IsActive
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.repo.Update(txCtx, sch); updateErr != nil {
			return fmt.Errorf("failed to update scholarship: %w", updateErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "scholarships", sch.ID.String(), sch.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return sch, nil
}

func (s *scholarshipService) Delete(ctx context.Context, actorID, id string) error {
	sch, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.repo.Delete(txCtx, sch.ID); deleteErr != nil {
			return fmt.Errorf("failed to delete scholarship: %w", deleteErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionDeleteContent, "scholarships", sch.ID.String(), sch.Name)
	})
	if err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

func (s *scholarshipService) GetApplicationInfo(ctx context.Context) (*model.ScholarshipApplicationInfo, error) {
	info, err := s.repo.GetApplicationInfo(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Singleton not seeded yet; an empty block is a valid state
			return &model.ScholarshipApplicationInfo{}, nil
		}
		return nil, err
	}
	return info, nil
}

func (s *scholarshipService) SaveApplicationInfo(ctx context.Context, actorID string, req ApplicationInfoInput) (*model.ScholarshipApplicationInfo, error) {
	info, err := s.repo.GetApplicationInfo(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		info = &model.ScholarshipApplicationInfo{}
	}

	info.Requirements = req.Requirements
	info.HowToApply = req.HowToApply
	info.DeadlineInfo = req.DeadlineInfo
	info.ContactInfo = req.ContactInfo

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if saveErr := s.repo.SaveApplicationInfo(txCtx, info); saveErr != nil {
			return fmt.Errorf("failed to save application info: %w", saveErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "scholarship_application_info", info.ID.String(), "application info")
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return info, nil
}

func (s *scholarshipService) notifyChanged() {
	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.EventContentChanged, map[string]string{"section": "scholarships"})
	}
}

func parseDiscount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.New("invalid discount_amount: expected a decimal number")
	}
	if amount.IsNegative() {
		return decimal.Zero, errors.New("discount_amount cannot be negative")
	}
	return amount, nil
}
