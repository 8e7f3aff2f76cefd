package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// RecalculateBalances rebuilds every account balance of the company from
// opening balances and transaction history. Safe to run repeatedly; the
// result is the same whether balances had drifted or not. Admin-only.
func (s *Service) RecalculateBalances(ctx context.Context) (int, error) {
	p, err := auth.RequireRole(ctx, domain.UserRoleOwner, domain.UserRoleAdmin)
	if err != nil {
		return 0, err
	}

	var updated int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var recalcErr error
		updated, recalcErr = s.accounts.RecalculateBalances(txCtx, p.CompanyID)
		if recalcErr != nil {
			return fmt.Errorf("recalculate balances: %w", recalcErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "balances recalculated",
		slog.String("company_id", p.CompanyID.String()),
		slog.Int("accounts", updated),
	)

	return updated, nil
}
