package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/go-playground/validator/v10"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	validate    *validator.Validate
	now         func() time.Time
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	settings := applyOptions(options)
	return &accountService{
		accountRepo: repo,
		validate:    newRequestValidator(),
		now:         settings.now,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	account := domain.Account{
		Code:          req.Code,
		Name:          req.Name,
		Type:          req.Type,
		Category:      req.Category,
		NormalBalance: req.NormalBalance,
		Description:   req.Description,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
		}
		s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_code", account.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("account_code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository", slog.Bool("active_only", activeOnly))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	account, err := s.GetAccount(ctx, code)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil && *req.Name != account.Name {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = *req.Name
		updated = true
	}
	if req.Type != nil && *req.Type != account.Type {
		account.Type = *req.Type
		updated = true
	}
	if req.Category != nil && *req.Category != account.Category {
		account.Category = *req.Category
		updated = true
	}
	if req.NormalBalance != nil && *req.NormalBalance != account.NormalBalance {
		account.NormalBalance = *req.NormalBalance
		updated = true
	}
	if req.Description != nil && *req.Description != account.Description {
		account.Description = *req.Description
		updated = true
	}

	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = s.now().UTC()
	account.LastUpdatedBy = userID
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account in repository", slog.String("account_code", code))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_code", code))
	return account, nil
}

func (s *accountService) ToggleAccountActive(ctx context.Context, code string, userID string) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, code)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := s.accountRepo.SetAccountActive(ctx, code, !account.IsActive, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to toggle account status", slog.String("account_code", code))
		return nil, fmt.Errorf("failed to toggle account status: %w", err)
	}

	account.IsActive = !account.IsActive
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID
	s.LogInfo(ctx, "Account status toggled", slog.String("account_code", code), slog.Bool("is_active", account.IsActive))
	return account, nil
}

func (s *accountService) InitializeDefaultAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	count, err := s.accountRepo.CountAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts")
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: chart of accounts already has %d accounts", apperrors.ErrConflict, count)
	}

	now := s.now().UTC()
	accounts := domain.DefaultChartOfAccounts()
	for i := range accounts {
		accounts[i].IsActive = true
		accounts[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
	}

	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		s.LogError(ctx, err, "Failed to install default chart of accounts")
		return nil, fmt.Errorf("failed to install default accounts: %w", err)
	}

	s.LogInfo(ctx, "Default chart of accounts installed", slog.Int("count", len(accounts)))
	return accounts, nil
}
