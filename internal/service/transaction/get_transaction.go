package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// GetTransaction returns a single transaction of the caller's company.
func (s *Service) GetTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if transactionID == uuid.Nil {
		return nil, domain.NewValidationError("transaction_id", "required")
	}

	transaction, err := s.transactions.GetByID(ctx, p.CompanyID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	return transaction, nil
}

// ListTransactions returns transactions of the caller's company, newest
// first.
func (s *Service) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]domain.Transaction, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	transactions, err := s.transactions.List(ctx, p.CompanyID, domain.TransactionFilter{
		AccountID:  input.AccountID,
		Type:       input.Type,
		Reconciled: input.Reconciled,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return transactions, nil
}
