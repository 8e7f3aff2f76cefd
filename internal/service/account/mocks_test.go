package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	CreateFunc              func(ctx context.Context, a *domain.Account) (*domain.Account, error)
	GetByIDFunc             func(ctx context.Context, companyID, id uuid.UUID) (*domain.Account, error)
	ListFunc                func(ctx context.Context, companyID uuid.UUID, filter domain.AccountFilter) ([]domain.Account, error)
	UpdateFunc              func(ctx context.Context, companyID, id uuid.UUID, params domain.AccountUpdateParams) (*domain.Account, error)
	DeleteFunc              func(ctx context.Context, companyID, id uuid.UUID) error
	HasChildrenFunc         func(ctx context.Context, companyID, id uuid.UUID) (bool, error)
	HasTransactionsFunc     func(ctx context.Context, companyID, id uuid.UUID) (bool, error)
	RecalculateBalancesFunc func(ctx context.Context, companyID uuid.UUID) (int, error)
}

func (m *accountRepoMock) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	if m.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, a)
}

func (m *accountRepoMock) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, companyID, id)
}

func (m *accountRepoMock) List(ctx context.Context, companyID uuid.UUID, filter domain.AccountFilter) ([]domain.Account, error) {
	if m.ListFunc == nil {
		panic("accountRepoMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, companyID, filter)
}

func (m *accountRepoMock) Update(ctx context.Context, companyID, id uuid.UUID, params domain.AccountUpdateParams) (*domain.Account, error) {
	if m.UpdateFunc == nil {
		panic("accountRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, companyID, id, params)
}

func (m *accountRepoMock) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("accountRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, companyID, id)
}

func (m *accountRepoMock) HasChildren(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	if m.HasChildrenFunc == nil {
		return false, nil
	}
	return m.HasChildrenFunc(ctx, companyID, id)
}

func (m *accountRepoMock) HasTransactions(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	if m.HasTransactionsFunc == nil {
		return false, nil
	}
	return m.HasTransactionsFunc(ctx, companyID, id)
}

func (m *accountRepoMock) RecalculateBalances(ctx context.Context, companyID uuid.UUID) (int, error) {
	if m.RecalculateBalancesFunc == nil {
		panic("accountRepoMock.RecalculateBalancesFunc: method is nil but RecalculateBalances was just called")
	}
	return m.RecalculateBalancesFunc(ctx, companyID)
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
