// Package identity implements account registration.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/bissquit/campus-registry/internal/domain"
	"github.com/bissquit/campus-registry/internal/pkg/ctxlog"
	"github.com/go-playground/validator/v10"
)

// Config contains authorizer settings.
type Config struct {
	// Timeout bounds the store calls and hash derivation of one
	// registration. Zero disables the bound.
	Timeout time.Duration
}

// Service registers new accounts.
type Service struct {
	repo      Repository
	hasher    PasswordHasher
	validator *validator.Validate
	timeout   time.Duration
}

// NewService creates a new identity service.
func NewService(repo Repository, hasher PasswordHasher, cfg Config) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		validator: newValidator(),
		timeout:   cfg.Timeout,
	}
}

// Authorize validates creds, provisions a new account and returns its
// public identity.
//
// The returned error always matches exactly one of ErrValidation,
// ErrAccountExists, ErrPersistence or ErrRegistrationFailed.
func (s *Service) Authorize(ctx context.Context, creds Credentials) (*domain.PublicIdentity, error) {
	ctx = ctxlog.With(ctx, "operation", "register")

	identity, err := s.authorize(ctx, creds)
	if err != nil && !isOutcome(err) {
		ctxlog.FromContext(ctx).Error("registration failed", "error", err)
		err = ErrRegistrationFailed
	}
	recordRegistration(err)
	if err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *Service) authorize(ctx context.Context, creds Credentials) (*domain.PublicIdentity, error) {
	logger := ctxlog.FromContext(ctx)

	creds = Normalize(creds)
	if err := validate(s.validator, creds); err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	_, err := s.repo.GetAccountByEmail(ctx, creds.Email)
	switch {
	case err == nil:
		logger.Info("registration rejected: email already registered")
		return nil, ErrAccountExists
	case errors.Is(err, ErrAccountNotFound):
	default:
		logger.Error("failed to look up account", "error", err)
		return nil, ErrPersistence
	}

	hash, err := s.hasher.Hash(ctx, creds.Password)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		return nil, ErrRegistrationFailed
	}

	account := &domain.Account{
		FirstName:    creds.FirstName,
		LastName:     creds.LastName,
		Email:        creds.Email,
		Role:         domain.Role(creds.Role),
		PasswordHash: hash,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			logger.Info("registration rejected: email registered concurrently")
			return nil, ErrAccountExists
		}
		logger.Error("failed to create account", "error", err)
		return nil, ErrPersistence
	}

	logger.Info("account registered", "account_id", account.ID, "role", account.Role)

	return account.PublicIdentity(), nil
}

func isOutcome(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrAccountExists) ||
		errors.Is(err, ErrPersistence) ||
		errors.Is(err, ErrRegistrationFailed)
}
