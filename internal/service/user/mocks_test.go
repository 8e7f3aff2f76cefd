package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc     func(ctx context.Context, companyID, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	ListFunc        func(ctx context.Context, companyID uuid.UUID) ([]domain.User, error)
	CreateFunc      func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateRoleFunc  func(ctx context.Context, companyID, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	DeleteFunc      func(ctx context.Context, companyID, id uuid.UUID) error
	CountByRoleFunc func(ctx context.Context, companyID uuid.UUID, role domain.UserRole) (int, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, companyID, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but GetByEmail was just called")
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) List(ctx context.Context, companyID uuid.UUID) ([]domain.User, error) {
	if m.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, companyID)
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, u)
}

func (m *userRepoMock) UpdateRole(ctx context.Context, companyID, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if m.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but UpdateRole was just called")
	}
	return m.UpdateRoleFunc(ctx, companyID, id, role)
}

func (m *userRepoMock) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, companyID, id)
}

func (m *userRepoMock) CountByRole(ctx context.Context, companyID uuid.UUID, role domain.UserRole) (int, error) {
	if m.CountByRoleFunc == nil {
		panic("userRepoMock.CountByRoleFunc: method is nil but CountByRole was just called")
	}
	return m.CountByRoleFunc(ctx, companyID, role)
}

var _ companyRepo = &companyRepoMock{}

type companyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error)
}

func (m *companyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if m.GetByIDFunc == nil {
		panic("companyRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *companyRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error) {
	if m.UpdateFunc == nil {
		panic("companyRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, id, params)
}

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc func(password string) (string, error)
}

func (m *passwordHasherMock) Hash(password string) (string, error) {
	if m.HashFunc == nil {
		return "hashed:" + password, nil
	}
	return m.HashFunc(password)
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
