// Package services contains server-side business logic. AccountService
// registers regular users, creates seeded accounts of any class and
// authenticates accounts of every class through one procedure.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/common"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/cryptox"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/logging"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/repositories/repomanager"
)

// AccountService validates credentials and talks to the class stores.
type AccountService struct {
	repomanager     repomanager.RepositoryManager
	hasher          cryptox.SecretHasher
	validator       *inputValidator
	logger          logging.Logger
	enforceStrength bool

	// dummyHash is verified when an identifier is unknown so that a miss
	// costs about as much as a wrong secret.
	dummyHash string
}

// Option configures an AccountService.
type Option func(*AccountService)

// WithSecretStrength turns the strength policy on or off (default off).
func WithSecretStrength(enforce bool) Option {
	return func(s *AccountService) { s.enforceStrength = enforce }
}

func WithLogger(l logging.Logger) Option {
	return func(s *AccountService) { s.logger = l }
}

// NewAccountService constructs an AccountService. It hashes a random value
// once with hasher, so construction costs one hash.
func NewAccountService(m repomanager.RepositoryManager, hasher cryptox.SecretHasher, opts ...Option) (*AccountService, error) {
	s := &AccountService{
		repomanager: m,
		hasher:      hasher,
		validator:   newInputValidator(),
		logger:      logging.Nop(),
	}
	for _, o := range opts {
		o(s)
	}

	filler, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("dummy secret: %w", err)
	}
	s.dummyHash, err = hasher.Hash(filler)
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}

	return s, nil
}

// Register creates a regular user. Checks run in this order and the first
// failure is returned: ErrMissingFields, ErrInvalidIdentifier, ErrWeakSecret
// (only when the strength policy is on), ErrDuplicateIdentifier.
func (s *AccountService) Register(ctx context.Context, identifier, secret string) (*models.Account, error) {
	return s.create(ctx, models.ClassUser, identifier, secret)
}

// Seed creates an account of any class, applying the same checks as
// Register. It backs the out-of-band seeding tool for admins and
// super-admins.
func (s *AccountService) Seed(ctx context.Context, class models.AccountClass, identifier, secret string) (*models.Account, error) {
	return s.create(ctx, class, identifier, secret)
}

func (s *AccountService) create(ctx context.Context, class models.AccountClass, identifier, secret string) (*models.Account, error) {
	if identifier == "" || secret == "" {
		return nil, common.ErrMissingFields
	}
	if !s.validator.validIdentifier(identifier) {
		return nil, common.ErrInvalidIdentifier
	}
	if s.enforceStrength && !s.validator.strongSecret(secret) {
		return nil, common.ErrWeakSecret
	}

	repo, err := s.repomanager.Accounts(class)
	if err != nil {
		return nil, err
	}

	// Early exit only. The store's unique constraint decides races.
	_, err = repo.FindByIdentifier(ctx, identifier)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateIdentifier
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("lookup %s: %w", class, err)
	}

	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	account, err := repo.Insert(ctx, &models.Account{Identifier: identifier, SecretHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateIdentifier) {
			return nil, common.ErrDuplicateIdentifier
		}
		return nil, fmt.Errorf("insert %s: %w", class, err)
	}

	s.logger.Info(ctx, "account created", "class", class.String(), "identifier", identifier, "id", account.ID)
	return account, nil
}

// Authenticate looks identifier up in the store of class and verifies
// secret against the stored hash. An unknown identifier and a wrong secret
// both yield ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, class models.AccountClass, identifier, secret string) (*models.Account, error) {
	if identifier == "" || secret == "" {
		return nil, common.ErrMissingFields
	}

	repo, err := s.repomanager.Accounts(class)
	if err != nil {
		return nil, err
	}

	account, err := repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(secret, s.dummyHash)
			s.logger.Info(ctx, "authentication failed", "class", class.String(), "identifier", identifier)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup %s: %w", class, err)
	}

	ok, err := s.hasher.Verify(secret, account.SecretHash)
	if err != nil {
		s.logger.Error(ctx, "stored hash unreadable", "class", class.String(), "id", account.ID, "error", err)
		return nil, fmt.Errorf("verify secret: %w", err)
	}
	if !ok {
		s.logger.Info(ctx, "authentication failed", "class", class.String(), "identifier", identifier)
		return nil, common.ErrInvalidCredentials
	}

	s.logger.Info(ctx, "authenticated", "class", class.String(), "identifier", identifier)
	return account, nil
}
