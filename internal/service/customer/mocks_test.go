package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	CreateFunc   func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByIDFunc  func(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error)
	ListPageFunc func(ctx context.Context, companyID uuid.UUID, filter domain.CustomerFilter) (domain.Page[domain.Customer], error)
	UpdateFunc   func(ctx context.Context, companyID, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error)
	DeleteFunc   func(ctx context.Context, companyID, id uuid.UUID) error

	CreateContactFunc func(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	GetContactFunc    func(ctx context.Context, companyID, id uuid.UUID) (*domain.Contact, error)
	ListContactsFunc  func(ctx context.Context, customerID uuid.UUID) ([]domain.Contact, error)
	UpdateContactFunc func(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error)
	DeleteContactFunc func(ctx context.Context, id uuid.UUID) error

	unsetPrimaryCalls []uuid.UUID
}

func (m *customerRepoMock) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if m.CreateFunc == nil {
		panic("customerRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, c)
}

func (m *customerRepoMock) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error) {
	if m.GetByIDFunc == nil {
		panic("customerRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, companyID, id)
}

func (m *customerRepoMock) ListPage(ctx context.Context, companyID uuid.UUID, filter domain.CustomerFilter) (domain.Page[domain.Customer], error) {
	if m.ListPageFunc == nil {
		panic("customerRepoMock.ListPageFunc: method is nil but ListPage was just called")
	}
	return m.ListPageFunc(ctx, companyID, filter)
}

func (m *customerRepoMock) Update(ctx context.Context, companyID, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error) {
	if m.UpdateFunc == nil {
		panic("customerRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, companyID, id, params)
}

func (m *customerRepoMock) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("customerRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, companyID, id)
}

func (m *customerRepoMock) CreateContact(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	if m.CreateContactFunc == nil {
		panic("customerRepoMock.CreateContactFunc: method is nil but CreateContact was just called")
	}
	return m.CreateContactFunc(ctx, c)
}

func (m *customerRepoMock) GetContact(ctx context.Context, companyID, id uuid.UUID) (*domain.Contact, error) {
	if m.GetContactFunc == nil {
		panic("customerRepoMock.GetContactFunc: method is nil but GetContact was just called")
	}
	return m.GetContactFunc(ctx, companyID, id)
}

func (m *customerRepoMock) ListContacts(ctx context.Context, customerID uuid.UUID) ([]domain.Contact, error) {
	if m.ListContactsFunc == nil {
		panic("customerRepoMock.ListContactsFunc: method is nil but ListContacts was just called")
	}
	return m.ListContactsFunc(ctx, customerID)
}

func (m *customerRepoMock) UpdateContact(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error) {
	if m.UpdateContactFunc == nil {
		panic("customerRepoMock.UpdateContactFunc: method is nil but UpdateContact was just called")
	}
	return m.UpdateContactFunc(ctx, id, params)
}

func (m *customerRepoMock) UnsetPrimary(ctx context.Context, customerID uuid.UUID) error {
	m.unsetPrimaryCalls = append(m.unsetPrimaryCalls, customerID)
	return nil
}

func (m *customerRepoMock) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if m.DeleteContactFunc == nil {
		panic("customerRepoMock.DeleteContactFunc: method is nil but DeleteContact was just called")
	}
	return m.DeleteContactFunc(ctx, id)
}

var _ invoiceRepo = &invoiceRepoMock{}

type invoiceRepoMock struct {
	CountByCustomerFunc func(ctx context.Context, companyID, customerID uuid.UUID) (int, error)
}

func (m *invoiceRepoMock) CountByCustomer(ctx context.Context, companyID, customerID uuid.UUID) (int, error) {
	if m.CountByCustomerFunc == nil {
		return 0, nil
	}
	return m.CountByCustomerFunc(ctx, companyID, customerID)
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
