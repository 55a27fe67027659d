package identity

import (
	"context"
	"errors"
	"fmt"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// localProvider backs accounts with the users table. It stands in for the
// hosted auth service the site originally delegated to.
type localProvider struct {
	users repository.UserRepository
}

// NewLocalProvider returns a Provider backed by the application database.
func NewLocalProvider(users repository.UserRepository) Provider {
	return &localProvider{users: users}
}

func (p *localProvider) CreateAccount(ctx context.Context, in CreateAccountInput) (*Account, error) {
	if in.Email == "" {
		return nil, errors.New("identity: email is required")
	}

	// Pre-check so the common duplicate case surfaces as the sentinel instead
	// of a driver-specific constraint error
	if _, err := p.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrAccountExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("identity: lookup failed: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("identity: failed to hash password: %w", err)
	}

	user := &model.User{
		Email:          in.Email,
		Name:           in.Name,
		Password:       string(hashed),
		EmailConfirmed: in.MarkConfirmed,
	}

	if err := p.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("identity: failed to create account: %w", err)
	}

	return toAccount(user), nil
}

func (p *localProvider) VerifyCredentials(ctx context.Context, email, password string) (*Account, error) {
	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return toAccount(user), nil
}

func (p *localProvider) GetAccount(ctx context.Context, id string) (*Account, error) {
	user, err := p.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("identity: account not found: %w", err)
	}
	return toAccount(user), nil
}

func toAccount(u *model.User) *Account {
	return &Account{
		ID:             u.ID.String(),
		Email:          u.Email,
		Name:           u.Name,
		EmailConfirmed: u.EmailConfirmed,
	}
}
