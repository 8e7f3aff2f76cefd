package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// GetAccount returns a single account of the caller's company.
func (s *Service) GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if accountID == uuid.Nil {
		return nil, domain.NewValidationError("account_id", "required")
	}

	account, err := s.accounts.GetByID(ctx, p.CompanyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return account, nil
}

// ListAccounts returns the company's chart of accounts, ordered by code.
func (s *Service) ListAccounts(ctx context.Context, input ListAccountsInput) ([]domain.Account, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	accounts, err := s.accounts.List(ctx, p.CompanyID, domain.AccountFilter{
		Type:   input.Type,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}
