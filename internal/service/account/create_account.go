package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// CreateAccount adds an account to the company's chart of accounts.
// The opening balance seeds the running balance.
func (s *Service) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := s.accounts.GetByID(ctx, p.CompanyID, *input.ParentID); err != nil {
			return nil, fmt.Errorf("get parent account: %w", err)
		}
	}

	currency := s.defaultCurrency
	if input.Currency != nil {
		currency = strings.ToUpper(*input.Currency)
	}
	opening := zeroIfNil(input.OpeningBalance)

	account, err := s.accounts.Create(ctx, &domain.Account{
		ID:             uuid.New(),
		CompanyID:      p.CompanyID,
		Code:           strings.TrimSpace(input.Code),
		Name:           strings.TrimSpace(input.Name),
		Type:           input.Type,
		Category:       trimOrNil(input.Category),
		Description:    trimOrNil(input.Description),
		Currency:       currency,
		Balance:        opening,
		OpeningBalance: opening,
		ParentID:       input.ParentID,
	})
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.InfoContext(ctx, "account created",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("account_id", account.ID.String()),
		slog.String("code", account.Code),
	)

	return account, nil
}
