package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// UpdateAccount changes mutable fields of an account. System accounts
// reject all mutation.
func (s *Service) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.Account, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.accounts.GetByID(ctx, p.CompanyID, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if existing.IsSystem {
		return nil, fmt.Errorf("account %s is a system account: %w", input.AccountID, domain.ErrForbidden)
	}

	if input.ParentID != nil {
		if _, err := s.accounts.GetByID(ctx, p.CompanyID, *input.ParentID); err != nil {
			return nil, fmt.Errorf("get parent account: %w", err)
		}
	}

	account, err := s.accounts.Update(ctx, p.CompanyID, input.AccountID, domain.AccountUpdateParams{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		ParentID:    input.ParentID,
	})
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	s.log.InfoContext(ctx, "account updated",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("account_id", account.ID.String()),
	)

	return account, nil
}
