package account

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

type accountRepo interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Account, error)
	List(ctx context.Context, companyID uuid.UUID, filter domain.AccountFilter) ([]domain.Account, error)
	Update(ctx context.Context, companyID, id uuid.UUID, params domain.AccountUpdateParams) (*domain.Account, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	HasChildren(ctx context.Context, companyID, id uuid.UUID) (bool, error)
	HasTransactions(ctx context.Context, companyID, id uuid.UUID) (bool, error)
	RecalculateBalances(ctx context.Context, companyID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides chart-of-accounts operations.
type Service struct {
	accounts        accountRepo
	tx              txManager
	defaultCurrency string
	log             *slog.Logger
}

// NewService creates a new Account service.
func NewService(log *slog.Logger, accounts accountRepo, tx txManager, defaultCurrency string) *Service {
	return &Service{
		accounts:        accounts,
		tx:              tx,
		defaultCurrency: defaultCurrency,
		log:             log.With("service", "account"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func zeroIfNil(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
