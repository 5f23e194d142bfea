package identity

import (
	"context"

	"github.com/bissquit/campus-registry/internal/domain"
)

// Repository defines the account store the authorizer depends on.
//
// Implementations must enforce email uniqueness on their own: CreateAccount
// returns ErrEmailTaken when the email collides with an existing account,
// even if a preceding GetAccountByEmail reported it as free.
type Repository interface {
	// GetAccountByEmail returns ErrAccountNotFound when no account uses email.
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	// CreateAccount stores account and fills in ID and CreatedAt.
	CreateAccount(ctx context.Context, account *domain.Account) error
}
