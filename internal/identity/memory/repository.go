// Package memory provides an in-process identity repository for development
// and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bissquit/campus-registry/internal/domain"
	"github.com/bissquit/campus-registry/internal/identity"
	"github.com/google/uuid"
)

// Repository implements identity.Repository in memory.
// Email uniqueness is enforced under the same lock as the insert.
type Repository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{accounts: make(map[string]domain.Account)}
}

// GetAccountByEmail returns a copy of the stored account.
func (r *Repository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, identity.ErrAccountNotFound
	}
	return &account, nil
}

// CreateAccount stores account, assigning a UUID and creation time.
func (r *Repository) CreateAccount(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Email]; exists {
		return identity.ErrEmailTaken
	}

	account.ID = uuid.NewString()
	account.CreatedAt = time.Now().UTC()
	r.accounts[account.Email] = *account
	return nil
}

// Len returns the number of stored accounts.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
