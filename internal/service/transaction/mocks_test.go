package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var _ transactionRepo = &transactionRepoMock{}

type transactionRepoMock struct {
	CreateFunc        func(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	GetByIDFunc       func(ctx context.Context, companyID, id uuid.UUID) (*domain.Transaction, error)
	ListFunc          func(ctx context.Context, companyID uuid.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error)
	UpdateFunc        func(ctx context.Context, companyID, id uuid.UUID, params domain.TransactionUpdateParams) (*domain.Transaction, error)
	SetReconciledFunc func(ctx context.Context, companyID, id uuid.UUID, reconciled bool) (*domain.Transaction, error)
	DeleteFunc        func(ctx context.Context, companyID, id uuid.UUID) error
}

func (m *transactionRepoMock) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFunc == nil {
		panic("transactionRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, t)
}

func (m *transactionRepoMock) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Transaction, error) {
	if m.GetByIDFunc == nil {
		panic("transactionRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, companyID, id)
}

func (m *transactionRepoMock) List(ctx context.Context, companyID uuid.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if m.ListFunc == nil {
		panic("transactionRepoMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, companyID, filter)
}

func (m *transactionRepoMock) Update(ctx context.Context, companyID, id uuid.UUID, params domain.TransactionUpdateParams) (*domain.Transaction, error) {
	if m.UpdateFunc == nil {
		panic("transactionRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, companyID, id, params)
}

func (m *transactionRepoMock) SetReconciled(ctx context.Context, companyID, id uuid.UUID, reconciled bool) (*domain.Transaction, error) {
	if m.SetReconciledFunc == nil {
		panic("transactionRepoMock.SetReconciledFunc: method is nil but SetReconciled was just called")
	}
	return m.SetReconciledFunc(ctx, companyID, id, reconciled)
}

func (m *transactionRepoMock) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("transactionRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, companyID, id)
}

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetByIDFunc          func(ctx context.Context, companyID, id uuid.UUID) (*domain.Account, error)
	IncrementBalanceFunc func(ctx context.Context, companyID, id uuid.UUID, delta decimal.Decimal) error

	incrementCalls []decimal.Decimal
}

func (m *accountRepoMock) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, companyID, id)
}

func (m *accountRepoMock) IncrementBalance(ctx context.Context, companyID, id uuid.UUID, delta decimal.Decimal) error {
	m.incrementCalls = append(m.incrementCalls, delta)
	if m.IncrementBalanceFunc == nil {
		return nil
	}
	return m.IncrementBalanceFunc(ctx, companyID, id, delta)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
