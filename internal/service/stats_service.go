package service

import (
	"context"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	PendingRequests     int64 `json:"pending_requests"`
	ApprovedRequests    int64 `json:"approved_requests"`
	RejectedRequests    int64 `json:"rejected_requests"`
	ActiveAnnouncements int64 `json:"active_announcements"`
	ActivePersonnel     int64 `json:"active_personnel"`
	ActivePrograms      int64 `json:"active_programs"`
	ActiveScholarships  int64 `json:"active_scholarships"`
	ActiveOrganizations int64 `json:"active_organizations"`
}

type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	requests      repository.AdminRequestRepository
	announcements repository.AnnouncementRepository
	personnel     repository.PersonnelRepository
	programs      repository.ProgramRepository
	scholarships  repository.ScholarshipRepository
	organizations repository.OrganizationRepository
}

func NewStatsService(
	requests repository.AdminRequestRepository,
	announcements repository.AnnouncementRepository,
	personnel repository.PersonnelRepository,
	programs repository.ProgramRepository,
	scholarships repository.ScholarshipRepository,
	organizations repository.OrganizationRepository,
) StatsService {
	return &statsService{
		requests:      requests,
		announcements: announcements,
		personnel:     personnel,
		programs:      programs,
		scholarships:  scholarships,
		organizations: organizations,
	}
}

func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.PendingRequests, err = s.requests.CountByStatus(ctx, model.RequestStatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedRequests, err = s.requests.CountByStatus(ctx, model.RequestStatusApproved); err != nil {
		return nil, err
	}
	if stats.RejectedRequests, err = s.requests.CountByStatus(ctx, model.RequestStatusRejected); err != nil {
		return nil, err
	}
	if stats.ActiveAnnouncements, err = s.announcements.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.ActivePersonnel, err = s.personnel.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.ActivePrograms, err = s.programs.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveScholarships, err = s.scholarships.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveOrganizations, err = s.organizations.CountActive(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
