package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"schoolsite/internal/identity"
	"schoolsite/internal/mailer"
	"schoolsite/internal/model"
	"schoolsite/internal/repository"
	"schoolsite/internal/websocket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sentinel errors the handler maps to specific HTTP statuses and messages.
var (
	// ErrDuplicatePendingRequest: a pending request for this email already exists.
	ErrDuplicatePendingRequest = errors.New("a request with this email already exists, please wait for approval")
	// ErrRequestNotFound: no request with the given id.
	ErrRequestNotFound = errors.New("access request not found")
	// ErrRequestAlreadyReviewed: the request already left pending; decisions are one-way.
	ErrRequestAlreadyReviewed = errors.New("access request has already been reviewed")
)

// --- DTOs ---

type SubmitRequestDTO struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Reason string `json:"reason"`
}

type RequestFilter struct {
	Status string // pending, approved, rejected or empty for all
	Page   int
	Limit  int
}

type AdminRequestResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by"`
	ReviewerName string  `json:"reviewer_name,omitempty"`
	ReviewedAt   *string `json:"reviewed_at"`
	CreatedAt    string  `json:"created_at"`
}

// --- Interface ---

// AdminRequestService implements the access-request workflow: public intake,
// admin listing, one-way approve/reject decisions and hard deletion.
type AdminRequestService interface {
	Submit(ctx context.Context, req SubmitRequestDTO) (AdminRequestResponse, error)
	List(ctx context.Context, filter RequestFilter) ([]AdminRequestResponse, int64, error)
	Approve(ctx context.Context, id string, reviewerID string) (AdminRequestResponse, error)
	Reject(ctx context.Context, id string, reviewerID string) (AdminRequestResponse, error)
	Delete(ctx context.Context, id string, reviewerID string) error
}

// Broadcaster pushes events to connected admin dashboards. Satisfied by
// *websocket.Hub; may be nil.
type Broadcaster interface {
	BroadcastEvent(eventType string, payload interface{})
}

type adminRequestService struct {
	requests repository.AdminRequestRepository
	audits   repository.AuditRepository
	txm      repository.TransactionManager
	provider identity.Provider
	mail     mailer.Mailer
	hub      Broadcaster
}

func NewAdminRequestService(
	requests repository.AdminRequestRepository,
	audits repository.AuditRepository,
	txm repository.TransactionManager,
	provider identity.Provider,
	mail mailer.Mailer,
	hub Broadcaster,
) AdminRequestService {
	return &adminRequestService{
		requests: requests,
		audits:   audits,
		txm:      txm,
		provider: provider,
		mail:     mail,
		hub:      hub,
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// --- Implementation ---

func (s *adminRequestService) Submit(ctx context.Context, req SubmitRequestDTO) (AdminRequestResponse, error) {
	// Local validation before any store call
	if req.Name == "" {
		return AdminRequestResponse{}, errors.New("name is required")
	}
	if req.Email == "" {
		return AdminRequestResponse{}, errors.New("email is required")
	}
	if !emailRegex.MatchString(req.Email) {
		return AdminRequestResponse{}, errors.New("invalid email format")
	}

	// Duplicate-pending check before insert; the partial unique index backs
	// this up against races
	if _, err := s.requests.FindPendingByEmail(ctx, req.Email); err == nil {
		return AdminRequestResponse{}, ErrDuplicatePendingRequest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AdminRequestResponse{}, fmt.Errorf("failed to check existing requests: %w", err)
	}

	request := model.AdminRequest{
		Name:   req.Name,
		Email:  req.Email,
		Reason: req.Reason,
		Status: model.RequestStatusPending,
	}

	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.requests.Create(txCtx, &request); createErr != nil {
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return ErrDuplicatePendingRequest
			}
			return fmt.Errorf("failed to create access request: %w", createErr)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"name":  req.Name,
			"email": req.Email,
		})
		audit := model.AuditLog{
			Action:     model.ActionSubmitAccessRequest,
			EntityID:   request.ID.String(),
			EntityName: req.Name,
			Details:    string(details),
		}
		if auditErr := s.audits.Create(txCtx, &audit); auditErr != nil {
			return fmt.Errorf("failed to write audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return AdminRequestResponse{}, err
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.EventAccessRequestSubmitted, map[string]string{
			"id":    request.ID.String(),
			"name":  request.Name,
			"email": request.Email,
		})
	}

	return toRequestResponse(request), nil
}

func (s *adminRequestService) List(ctx context.Context, filter RequestFilter) ([]AdminRequestResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	requests, total, err := s.requests.List(ctx, filter.Status, filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch access requests: %w", err)
	}

	result := make([]AdminRequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, toRequestResponse(r))
	}

	return result, total, nil
}

func (s *adminRequestService) Approve(ctx context.Context, id string, reviewerID string) (AdminRequestResponse, error) {
	requestID, reviewer, err := parseDecisionIDs(id, reviewerID)
	if err != nil {
		return AdminRequestResponse{}, err
	}

	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdminRequestResponse{}, ErrRequestNotFound
		}
		return AdminRequestResponse{}, fmt.Errorf("failed to load access request: %w", err)
	}
	if !request.IsPending() {
		return AdminRequestResponse{}, ErrRequestAlreadyReviewed
	}

	// Provision the account first. "Already exists" is non-fatal: a previously
	// created account may be approved again. Any other provisioning failure
	// aborts with the request left pending.
	_, provErr := s.provider.CreateAccount(ctx, identity.CreateAccountInput{
		Email:         request.Email,
		Name:          request.Name,
		Password:      oneTimePassword(),
		MarkConfirmed: true,
	})
	if provErr != nil && !errors.Is(provErr, identity.ErrAccountExists) {
		return AdminRequestResponse{}, fmt.Errorf("account provisioning failed: %w", provErr)
	}

	now := time.Now()
	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		// Conditional update keyed on current status: a concurrent decision
		// that got there first wins and this one reports already-reviewed
		rows, updateErr := s.requests.UpdateStatus(txCtx, requestID, model.RequestStatusPending, model.RequestStatusApproved, reviewer, now)
		if updateErr != nil {
			return fmt.Errorf("failed to update access request: %w", updateErr)
		}
		if rows == 0 {
			return ErrRequestAlreadyReviewed
		}

		details, _ := json.Marshal(map[string]interface{}{
			"email":          request.Email,
			"account_reused": errors.Is(provErr, identity.ErrAccountExists),
		})
		audit := model.AuditLog{
			UserID:     &reviewer,
			Action:     model.ActionApproveAccessRequest,
			EntityID:   request.ID.String(),
			EntityName: request.Name,
			Details:    string(details),
		}
		return s.audits.Create(txCtx, &audit)
	})
	if err != nil {
		return AdminRequestResponse{}, err
	}

	// Password-setup notice; delivery failure is logged but does not undo the
	// approval
	if s.mail != nil {
		msg := mailer.Message{
			ToName:    request.Name,
			ToAddress: request.Email,
			Subject:   "Your admin access request was approved",
			Body: fmt.Sprintf("Hello %s,\n\nYour request for admin access has been approved. "+
				"Use the password reset option on the login page to set your password.\n", request.Name),
		}
		if mailErr := s.mail.Send(ctx, msg); mailErr != nil {
			log.Println("Failed to send approval notice:", mailErr)
		}
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.EventAccessRequestReviewed, map[string]string{
			"id":     request.ID.String(),
			"status": model.RequestStatusApproved,
		})
	}

	return s.reload(ctx, requestID)
}

func (s *adminRequestService) Reject(ctx context.Context, id string, reviewerID string) (AdminRequestResponse, error) {
	requestID, reviewer, err := parseDecisionIDs(id, reviewerID)
	if err != nil {
		return AdminRequestResponse{}, err
	}

	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdminRequestResponse{}, ErrRequestNotFound
		}
		return AdminRequestResponse{}, fmt.Errorf("failed to load access request: %w", err)
	}
	if !request.IsPending() {
		return AdminRequestResponse{}, ErrRequestAlreadyReviewed
	}

	now := time.Now()
	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		rows, updateErr := s.requests.UpdateStatus(txCtx, requestID, model.RequestStatusPending, model.RequestStatusRejected, reviewer, now)
		if updateErr != nil {
			return fmt.Errorf("failed to update access request: %w", updateErr)
		}
		if rows == 0 {
			return ErrRequestAlreadyReviewed
		}

		details, _ := json.Marshal(map[string]interface{}{"email": request.Email})
		audit := model.AuditLog{
			UserID:     &reviewer,
			Action:     model.ActionRejectAccessRequest,
			EntityID:   request.ID.String(),
			EntityName: request.Name,
			Details:    string(details),
		}
		return s.audits.Create(txCtx, &audit)
	})
	if err != nil {
		return AdminRequestResponse{}, err
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.EventAccessRequestReviewed, map[string]string{
			"id":     request.ID.String(),
			"status": model.RequestStatusRejected,
		})
	}

	return s.reload(ctx, requestID)
}

func (s *adminRequestService) Delete(ctx context.Context, id string, reviewerID string) error {
	requestID, reviewer, err := parseDecisionIDs(id, reviewerID)
	if err != nil {
		return err
	}

	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("failed to load access request: %w", err)
	}

	return s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.requests.Delete(txCtx, requestID); deleteErr != nil {
			return fmt.Errorf("failed to delete access request: %w", deleteErr)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"email":  request.Email,
			"status": request.Status,
		})
		audit := model.AuditLog{
			UserID:     &reviewer,
			Action:     model.ActionDeleteAccessRequest,
			EntityID:   request.ID.String(),
			EntityName: request.Name,
			Details:    string(details),
		}
		return s.audits.Create(txCtx, &audit)
	})
}

// --- Helpers ---

func (s *adminRequestService) reload(ctx context.Context, id uuid.UUID) (AdminRequestResponse, error) {
	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return AdminRequestResponse{}, fmt.Errorf("failed to reload access request: %w", err)
	}
	return toRequestResponse(*request), nil
}

func parseDecisionIDs(id, reviewerID string) (uuid.UUID, uuid.UUID, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid access request id: %w", err)
	}
	reviewer, err := uuid.Parse(reviewerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid reviewer id: %w", err)
	}
	return requestID, reviewer, nil
}

// oneTimePassword generates a throwaway credential for a provisioned account.
// The account holder never sees it; they set a real password via the emailed
// reset flow.
func oneTimePassword() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in serious trouble
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func toRequestResponse(r model.AdminRequest) AdminRequestResponse {
	resp := AdminRequestResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Email:     r.Email,
		Reason:    r.Reason,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.ReviewedBy != nil {
		reviewedBy := r.ReviewedBy.String()
		resp.ReviewedBy = &reviewedBy
	}
	if r.Reviewer != nil {
		resp.ReviewerName = r.Reviewer.Name
	}
	if r.ReviewedAt != nil {
		reviewedAt := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
