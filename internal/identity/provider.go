package identity

import (
	"context"
	"errors"
)

// Sentinel errors so callers can branch on outcome instead of matching
// on message text.
var (
	// ErrAccountExists is returned by CreateAccount when an account with the
	// given email already exists. Approval treats this as non-fatal.
	ErrAccountExists = errors.New("identity: account already exists")

	// ErrInvalidCredentials is returned by SignIn for a bad email/password pair.
	ErrInvalidCredentials = errors.New("identity: invalid email or password")
)

// Account is the provider's view of a user account.
type Account struct {
	ID             string
	Email          string
	Name           string
	EmailConfirmed bool
}

// CreateAccountInput carries everything needed to provision an account.
// MarkConfirmed skips the usual email-confirmation step (used when an admin
// provisions the account on the requester's behalf).
type CreateAccountInput struct {
	Email         string
	Name          string
	Password      string
	MarkConfirmed bool
}

// Provider owns user accounts and credential checks. The review workflow only
// depends on CreateAccount and its ErrAccountExists outcome; the auth service
// uses the rest.
type Provider interface {
	CreateAccount(ctx context.Context, in CreateAccountInput) (*Account, error)
	VerifyCredentials(ctx context.Context, email, password string) (*Account, error)
	GetAccount(ctx context.Context, id string) (*Account, error)
}
