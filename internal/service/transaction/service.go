package transaction

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

type transactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Transaction, error)
	List(ctx context.Context, companyID uuid.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error)
	Update(ctx context.Context, companyID, id uuid.UUID, params domain.TransactionUpdateParams) (*domain.Transaction, error)
	SetReconciled(ctx context.Context, companyID, id uuid.UUID, reconciled bool) (*domain.Transaction, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type accountRepo interface {
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Account, error)
	IncrementBalance(ctx context.Context, companyID, id uuid.UUID, delta decimal.Decimal) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides ledger transaction operations. Every write that
// changes a transaction's balance effect runs in one database
// transaction together with the account balance adjustment, so the
// running balance can never drift from the ledger under concurrency.
type Service struct {
	transactions transactionRepo
	accounts     accountRepo
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new Transaction service.
func NewService(log *slog.Logger, transactions transactionRepo, accounts accountRepo, tx txManager) *Service {
	return &Service{
		transactions: transactions,
		accounts:     accounts,
		tx:           tx,
		log:          log.With("service", "transaction"),
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
