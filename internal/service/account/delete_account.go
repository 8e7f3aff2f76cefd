package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// DeleteAccount removes an account. System accounts, accounts with
// children and accounts with transactions cannot be deleted.
func (s *Service) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return err
	}
	if accountID == uuid.Nil {
		return domain.NewValidationError("account_id", "required")
	}

	existing, err := s.accounts.GetByID(ctx, p.CompanyID, accountID)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	if existing.IsSystem {
		return fmt.Errorf("account %s is a system account: %w", accountID, domain.ErrForbidden)
	}

	hasChildren, err := s.accounts.HasChildren(ctx, p.CompanyID, accountID)
	if err != nil {
		return fmt.Errorf("check children: %w", err)
	}
	if hasChildren {
		return fmt.Errorf("account %s has child accounts: %w", accountID, domain.ErrConflict)
	}

	hasTransactions, err := s.accounts.HasTransactions(ctx, p.CompanyID, accountID)
	if err != nil {
		return fmt.Errorf("check transactions: %w", err)
	}
	if hasTransactions {
		return fmt.Errorf("account %s has transactions: %w", accountID, domain.ErrConflict)
	}

	if err := s.accounts.Delete(ctx, p.CompanyID, accountID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("account_id", accountID.String()),
	)

	return nil
}
