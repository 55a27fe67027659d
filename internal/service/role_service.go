package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"schoolsite/internal/identity"
	"schoolsite/internal/model"
	"schoolsite/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type GrantRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin user"`
}

type RoleAssignmentResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type BootstrapAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RoleService manages role assignments. Approving an access request provisions
// an account but does not grant the admin role; that grant happens here, as an
// explicit admin action.
type RoleService interface {
	Grant(ctx context.Context, actorID string, req GrantRoleRequest) (*RoleAssignmentResponse, error)
	Revoke(ctx context.Context, actorID string, req GrantRoleRequest) error
	ListAdmins(ctx context.Context) ([]RoleAssignmentResponse, error)
	// BootstrapAdmin creates the very first admin account (dev/setup only).
	BootstrapAdmin(ctx context.Context, req BootstrapAdminRequest) (*RoleAssignmentResponse, error)
}

type roleService struct {
	roles    repository.RoleRepository
	users    repository.UserRepository
	audits   repository.AuditRepository
	txm      repository.TransactionManager
	provider identity.Provider
}

func NewRoleService(
	roles repository.RoleRepository,
	users repository.UserRepository,
	audits repository.AuditRepository,
	txm repository.TransactionManager,
	provider identity.Provider,
) RoleService {
	return &roleService{roles: roles, users: users, audits: audits, txm: txm, provider: provider}
}

// --- Implementation ---

func (s *roleService) Grant(ctx context.Context, actorID string, req GrantRoleRequest) (*RoleAssignmentResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id: %w", err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("no account exists for this email")
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if grantErr := s.roles.Grant(txCtx, user.ID, req.Role); grantErr != nil {
			return fmt.Errorf("failed to grant role: %w", grantErr)
		}

		details, _ := json.Marshal(map[string]string{"email": req.Email, "role": req.Role})
		audit := model.AuditLog{
			UserID:     &actor,
			Action:     model.ActionGrantRole,
			EntityID:   user.ID.String(),
			EntityName: user.Name,
			Details:    string(details),
		}
		return s.audits.Create(txCtx, &audit)
	})
	if err != nil {
		return nil, err
	}

	return &RoleAssignmentResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Role:   req.Role,
	}, nil
}

func (s *roleService) Revoke(ctx context.Context, actorID string, req GrantRoleRequest) error {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor id: %w", err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return errors.New("no account exists for this email")
	}

	// An admin cannot revoke their own admin role; the site must always keep
	// at least the acting admin
	if user.ID == actor && req.Role == model.RoleAdmin {
		return errors.New("cannot revoke your own admin role")
	}

	return s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if revokeErr := s.roles.Revoke(txCtx, user.ID, req.Role); revokeErr != nil {
			return fmt.Errorf("failed to revoke role: %w", revokeErr)
		}

		details, _ := json.Marshal(map[string]string{"email": req.Email, "role": req.Role})
		audit := model.AuditLog{
			UserID:     &actor,
			Action:     model.ActionRevokeRole,
			EntityID:   user.ID.String(),
			EntityName: user.Name,
			Details:    string(details),
		}
		return s.audits.Create(txCtx, &audit)
	})
}

func (s *roleService) ListAdmins(ctx context.Context) ([]RoleAssignmentResponse, error) {
	assignments, err := s.roles.ListByRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admins: %w", err)
	}

	result := make([]RoleAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, RoleAssignmentResponse{
			UserID:    a.UserID.String(),
			Email:     a.User.Email,
			Name:      a.User.Name,
			Role:      a.Role,
			CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return result, nil
}

func (s *roleService) BootstrapAdmin(ctx context.Context, req BootstrapAdminRequest) (*RoleAssignmentResponse, error) {
	account, err := s.provider.CreateAccount(ctx, identity.CreateAccountInput{
		Email:         req.Email,
		Name:          req.Name,
		Password:      req.Password,
		MarkConfirmed: true,
	})
	if err != nil {
		if errors.Is(err, identity.ErrAccountExists) {
			return nil, errors.New("email already exists")
		}
		return nil, err
	}

	uid, err := uuid.Parse(account.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid account id: %w", err)
	}

	if err := s.roles.Grant(ctx, uid, model.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to grant admin role: %w", err)
	}

	return &RoleAssignmentResponse{
		UserID: account.ID,
		Email:  account.Email,
		Name:   account.Name,
		Role:   model.RoleAdmin,
	}, nil
}
