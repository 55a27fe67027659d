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

type AboutContentInput struct {
	History             string `json:"history"`
	MissionOld          string `json:"mission_old"`
	MissionNew          string `json:"mission_new"`
	VisionOld           string `json:"vision_old"`
	VisionNew           string `json:"vision_new"`
	CoreValues          string `json:"core_values"`
	JHSPrincipalHistory string `json:"jhs_principal_history"`
	SHSPrincipalHistory string `json:"shs_principal_history"`
	CampusMapURL        string `json:"campus_map_url"`
}

type HomeContentInput struct {
	HeroTitle      string `json:"hero_title" binding:"required"`
	HeroSubtitle   string `json:"hero_subtitle"`
	HeroImageURL   string `json:"hero_image_url"`
	WhyChooseTitle string `json:"why_choose_title"`
	WhyChooseItems string `json:"why_choose_items"`
}

type ContactInfoInput struct {
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email" binding:"omitempty,email"`
	OfficeHours     string `json:"office_hours"`
	GoogleMapsEmbed string `json:"google_maps_embed"`
	SocialLinks     string `json:"social_links"`
}

type EnrollmentContentInput struct {
	EnrollmentDates      string `json:"enrollment_dates"`
	EntranceExamSchedule string `json:"entrance_exam_schedule"`
	StartOfClasses       string `json:"start_of_classes"`
	NewStudentsSteps     string `json:"new_students_steps"`
	IncomingStudentSteps string `json:"incoming_students_steps"`
	TransfereesSteps     string `json:"transferees_steps"`
	ContactNumber        string `json:"contact_number"`
	Notes                string `json:"notes"`
}

type ImportantDateInput struct {
	Event        string `json:"event" binding:"required"`
	Date         string `json:"date" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// SiteContentService edits the singleton page-content rows in place and
// manages the enrollment calendar. Reads never fail on a missing row; an
// unseeded singleton reads back as an empty block.
type SiteContentService interface {
	GetAbout(ctx context.Context) (*model.AboutContent, error)
	SaveAbout(ctx context.Context, actorID string, req AboutContentInput) (*model.AboutContent, error)
	GetHome(ctx context.Context) (*model.HomeContent, error)
	SaveHome(ctx context.Context, actorID string, req HomeContentInput) (*model.HomeContent, error)
	GetContact(ctx context.Context) (*model.ContactInfo, error)
	SaveContact(ctx context.Context, actorID string, req ContactInfoInput) (*model.ContactInfo, error)
	GetEnrollment(ctx context.Context) (*model.EnrollmentContent, error)
	SaveEnrollment(ctx context.Context, actorID string, req EnrollmentContentInput) (*model.EnrollmentContent, error)

	ListImportantDates(ctx context.Context, includeInactive bool) ([]model.ImportantDate, error)
	CreateImportantDate(ctx context.Context, actorID string, req ImportantDateInput) (*model.ImportantDate, error)
	UpdateImportantDate(ctx context.Context, actorID, id string, req ImportantDateInput) (*model.ImportantDate, error)
	DeleteImportantDate(ctx context.Context, actorID, id string) error
}

type siteContentService struct {
	repo   repository.SiteContentRepository
	audits repository.AuditRepository
	txm    repository.TransactionManager
	hub    Broadcaster
}

func NewSiteContentService(
	repo repository.SiteContentRepository,
	audits repository.AuditRepository,
	txm repository.TransactionManager,
	hub Broadcaster,
) SiteContentService {
	return &siteContentService{repo: repo, audits: audits, txm: txm, hub: hub}
}

func (s *siteContentService) GetAbout(ctx context.Context) (*model.AboutContent, error) {
	c, err := s.repo.GetAbout(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.AboutContent{}, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *siteContentService) SaveAbout(ctx context.Context, actorID string, req AboutContentInput) (*model.AboutContent, error) {
	c, err := s.repo.GetAbout(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c = &model.AboutContent{}
	}

	c.History = req.History
	c.MissionOld = req.MissionOld
	c.MissionNew = req.MissionNew
	c.VisionOld = req.VisionOld
	c.VisionNew = req.VisionNew
	c.CoreValues = req.CoreValues
	c.JHSPrincipalHistory = req.JHSPrincipalHistory
	c.SHSPrincipalHistory = req.SHSPrincipalHistory
	c.CampusMapURL = req.CampusMapURL

	if err := s.saveSingleton(ctx, actorID, "about", c.ID.String(), func(txCtx context.Context) error {
		return s.repo.SaveAbout(txCtx, c)
	}); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *siteContentService) GetHome(ctx context.Context) (*model.HomeContent, error) {
	c, err := s.repo.GetHome(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.HomeContent{}, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *siteContentService) SaveHome(ctx context.Context, actorID string, req HomeContentInput) (*model.HomeContent, error) {
	c, err := s.repo.GetHome(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c = &model.HomeContent{}
	}

	c.HeroTitle = req.HeroTitle
	c.HeroSubtitle = req.HeroSubtitle
	c.HeroImageURL = req.HeroImageURL
	c.WhyChooseTitle = req.WhyChooseTitle
	c.WhyChooseItems = req.WhyChooseItems

	if err := s.saveSingleton(ctx, actorID, "home", c.ID.String(), func(txCtx context.Context) error {
		return s.repo.SaveHome(txCtx, c)
	}); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *siteContentService) GetContact(ctx context.Context) (*model.ContactInfo, error) {
	c, err := s.repo.GetContact(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.ContactInfo{}, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *siteContentService) SaveContact(ctx context.Context, actorID string, req ContactInfoInput) (*model.ContactInfo, error) {
	c, err := s.repo.GetContact(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c = &model.ContactInfo{}
	}

	c.Address = req.Address
	c.Phone = req.Phone
	c.Email = req.Email
	c.OfficeHours = req.OfficeHours
	c.GoogleMapsEmbed = req.GoogleMapsEmbed
	c.SocialLinks = req.SocialLinks

	if err := s.saveSingleton(ctx, actorID, "contact", c.ID.String(), func(txCtx context.Context) error {
		return s.repo.SaveContact(txCtx, c)
	}); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *siteContentService) GetEnrollment(ctx context.Context) (*model.EnrollmentContent, error) {
	c, err := s.repo.GetEnrollment(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.EnrollmentContent{}, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *siteContentService) SaveEnrollment(ctx context.Context, actorID string, req EnrollmentContentInput) (*model.EnrollmentContent, error) {
	c, err := s.repo.GetEnrollment(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c = &model.EnrollmentContent{}
	}

	c.EnrollmentDates = req.EnrollmentDates
	c.EntranceExamSchedule = req.EntranceExamSchedule
	c.StartOfClasses = req.StartOfClasses
	c.NewStudentsSteps = req.NewStudentsSteps
	c.IncomingStudentSteps = req.IncomingStudentSteps
	c.TransfereesSteps = req.TransfereesSteps
	c.ContactNumber = req.ContactNumber
	c.Notes = req.Notes

	if err := s.saveSingleton(ctx, actorID, "enrollment", c.ID.String(), func(txCtx context.Context) error {
		return s.repo.SaveEnrollment(txCtx, c)
	}); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *siteContentService) ListImportantDates(ctx context.Context, includeInactive bool) ([]model.ImportantDate, error) {
	return s.repo.ListImportantDates(ctx, !includeInactive)
}

func (s *siteContentService) CreateImportantDate(ctx context.Context, actorID string, req ImportantDateInput) (*model.ImportantDate, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	date := model.ImportantDate{
		Event:        req.Event,
		Date:         req.Date,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
	}

	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.repo.CreateImportantDate(txCtx, &date); createErr != nil {
			return fmt.Errorf("failed to create important date: %w", createErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionCreateContent, "important_dates", date.ID.String(), date.Event)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return &date, nil
}

func (s *siteContentService) UpdateImportantDate(ctx context.Context, actorID, id string, req ImportantDateInput) (*model.ImportantDate, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid important date id: %w", err)
	}

	date, err := s.repo.FindImportantDateByID(ctx, parsedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	date.Event = req.Event
	date.Date = req.Date
	date.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		date.IsActive = *req.IsActive
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.repo.UpdateImportantDate(txCtx, date); updateErr != nil {
			return fmt.Errorf("failed to update important date: %w", updateErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, "important_dates", date.ID.String(), date.Event)
	})
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return date, nil
}

func (s *siteContentService) DeleteImportantDate(ctx context.Context, actorID, id string) error {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid important date id: %w", err)
	}

	date, err := s.repo.FindImportantDateByID(ctx, parsedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.repo.DeleteImportantDate(txCtx, date.ID); deleteErr != nil {
			return fmt.Errorf("failed to delete important date: %w", deleteErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionDeleteContent, "important_dates", date.ID.String(), date.Event)
	})
	if err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

func (s *siteContentService) saveSingleton(ctx context.Context, actorID, section, entityID string, save func(context.Context) error) error {
	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if saveErr := save(txCtx); saveErr != nil {
			return fmt.Errorf("failed to save %s content: %w", section, saveErr)
		}
		return recordContentAudit(txCtx, s.audits, actorID, model.ActionUpdateContent, section, entityID, section+" content")
	})
	if err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

func (s *siteContentService) notifyChanged() {
	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.EventContentChanged, map[string]string{"section": "site"})
	}
}
