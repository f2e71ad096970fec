// Package service implements the domain operations of the platform: account
// registration and approval, project and offer lifecycles, applications,
// ratings and inquiries. Every operation validates role, ownership and
// current state before touching the store.
package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wojtuswowo/charity-connect-rbac/internal/auth"
	"github.com/wojtuswowo/charity-connect-rbac/internal/authz"
	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
	"github.com/wojtuswowo/charity-connect-rbac/internal/storage"
)

// AccountService manages registration, login and account approval.
type AccountService struct {
	store storage.AccountStore
	log   zerolog.Logger
}

func NewAccounts(store storage.AccountStore, log zerolog.Logger) *AccountService {
	return &AccountService{store: store, log: log}
}

// Register creates a donor or beneficiary account awaiting worker approval.
// Worker and administrator accounts cannot self-register.
func (s *AccountService) Register(ctx context.Context, email, password, firstName, lastName string, role models.Role) (models.Account, error) {
	if !role.SelfServiceRole() {
		return models.Account{}, models.ErrPermissionDenied
	}
	if err := auth.ValidatePassword(password); err != nil {
		return models.Account{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Account{}, err
	}

	acct, err := s.store.CreateAccount(ctx, models.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		IsApproved:   false,
	})
	if err != nil {
		return models.Account{}, err
	}

	s.log.Info().Int("account_id", acct.ID).Str("role", string(role)).Msg("account registered")
	return acct, nil
}

// Authenticate verifies the credentials. The approval flag is deliberately
// not checked here: unapproved accounts can log in, approval only gates
// worker moderation visibility.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	acct, err := s.store.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Account{}, models.ErrInvalidCredentials
		}
		return models.Account{}, err
	}

	if err := auth.CheckPassword(password, acct.PasswordHash); err != nil {
		return models.Account{}, models.ErrInvalidCredentials
	}

	return acct, nil
}

// Get returns a single account by id.
func (s *AccountService) Get(ctx context.Context, id int) (models.Account, error) {
	return s.store.GetAccount(ctx, id)
}

// Approve marks an account as approved. Worker only.
func (s *AccountService) Approve(ctx context.Context, caller models.Account, accountID int) error {
	if !authz.Can(caller, authz.ActionApproveAccount, nil) {
		return models.ErrPermissionDenied
	}
	if err := s.store.ApproveAccount(ctx, accountID); err != nil {
		return err
	}

	s.log.Info().Int("account_id", accountID).Int("worker_id", caller.ID).Msg("account approved")
	return nil
}

// PendingAccounts lists unapproved accounts for the worker panel.
func (s *AccountService) PendingAccounts(ctx context.Context, caller models.Account) ([]models.Account, error) {
	if !authz.Can(caller, authz.ActionApproveAccount, nil) {
		return nil, models.ErrPermissionDenied
	}
	return s.store.ListPendingAccounts(ctx)
}

// CreateWorker creates an organization worker account. Administrator only;
// workers are approved from the start.
func (s *AccountService) CreateWorker(ctx context.Context, caller models.Account, email, password, firstName, lastName string) (models.Account, error) {
	if !authz.Can(caller, authz.ActionCreateWorker, nil) {
		return models.Account{}, models.ErrPermissionDenied
	}
	if err := auth.ValidatePassword(password); err != nil {
		return models.Account{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Account{}, err
	}

	acct, err := s.store.CreateAccount(ctx, models.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.RoleWorker,
		IsApproved:   true,
	})
	if err != nil {
		return models.Account{}, err
	}

	s.log.Info().Int("account_id", acct.ID).Int("admin_id", caller.ID).Msg("worker account created")
	return acct, nil
}
