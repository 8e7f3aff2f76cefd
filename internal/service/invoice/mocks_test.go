package invoice

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var _ invoiceRepo = &invoiceRepoMock{}

type invoiceRepoMock struct {
	CreateFunc       func(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByIDFunc      func(ctx context.Context, companyID, id uuid.UUID) (*domain.Invoice, error)
	ListFunc         func(ctx context.Context, companyID uuid.UUID, filter domain.InvoiceFilter) ([]domain.Invoice, error)
	NextNumberFunc   func(ctx context.Context, companyID uuid.UUID, prefix string) (string, error)
	UpdateFunc       func(ctx context.Context, companyID, id uuid.UUID, params domain.InvoiceUpdateParams) (*domain.Invoice, error)
	UpdateTotalsFunc func(ctx context.Context, companyID, id uuid.UUID, totals domain.InvoiceTotals) error
	UpdateStatusFunc func(ctx context.Context, companyID, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error)
	DeleteFunc       func(ctx context.Context, companyID, id uuid.UUID) error

	CreateItemFunc       func(ctx context.Context, item *domain.InvoiceItem) (*domain.InvoiceItem, error)
	GetItemFunc          func(ctx context.Context, companyID, id uuid.UUID) (*domain.InvoiceItem, error)
	ListItemsFunc        func(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error)
	NextItemPositionFunc func(ctx context.Context, invoiceID uuid.UUID) (int, error)
	UpdateItemFunc       func(ctx context.Context, id uuid.UUID, params domain.InvoiceItemUpdateParams, amount decimal.Decimal) (*domain.InvoiceItem, error)
	DeleteItemFunc       func(ctx context.Context, id uuid.UUID) error

	CreatePaymentFunc func(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	ListPaymentsFunc  func(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
	SumPaymentsFunc   func(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)

	ListHistoryFunc func(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceHistoryEntry, error)

	statusUpdates []domain.InvoiceStatus
	totalsUpdates []domain.InvoiceTotals
}

func (m *invoiceRepoMock) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	if m.CreateFunc == nil {
		panic("invoiceRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, inv)
}

func (m *invoiceRepoMock) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Invoice, error) {
	if m.GetByIDFunc == nil {
		panic("invoiceRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, companyID, id)
}

func (m *invoiceRepoMock) List(ctx context.Context, companyID uuid.UUID, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	if m.ListFunc == nil {
		panic("invoiceRepoMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, companyID, filter)
}

func (m *invoiceRepoMock) NextNumber(ctx context.Context, companyID uuid.UUID, prefix string) (string, error) {
	if m.NextNumberFunc == nil {
		panic("invoiceRepoMock.NextNumberFunc: method is nil but NextNumber was just called")
	}
	return m.NextNumberFunc(ctx, companyID, prefix)
}

func (m *invoiceRepoMock) Update(ctx context.Context, companyID, id uuid.UUID, params domain.InvoiceUpdateParams) (*domain.Invoice, error) {
	if m.UpdateFunc == nil {
		panic("invoiceRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, companyID, id, params)
}

func (m *invoiceRepoMock) UpdateTotals(ctx context.Context, companyID, id uuid.UUID, totals domain.InvoiceTotals) error {
	m.totalsUpdates = append(m.totalsUpdates, totals)
	if m.UpdateTotalsFunc == nil {
		return nil
	}
	return m.UpdateTotalsFunc(ctx, companyID, id, totals)
}

func (m *invoiceRepoMock) UpdateStatus(ctx context.Context, companyID, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	m.statusUpdates = append(m.statusUpdates, status)
	if m.UpdateStatusFunc == nil {
		return &domain.Invoice{ID: id, CompanyID: companyID, Status: status}, nil
	}
	return m.UpdateStatusFunc(ctx, companyID, id, status)
}

func (m *invoiceRepoMock) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("invoiceRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, companyID, id)
}

func (m *invoiceRepoMock) CreateItem(ctx context.Context, item *domain.InvoiceItem) (*domain.InvoiceItem, error) {
	if m.CreateItemFunc == nil {
		panic("invoiceRepoMock.CreateItemFunc: method is nil but CreateItem was just called")
	}
	return m.CreateItemFunc(ctx, item)
}

func (m *invoiceRepoMock) GetItem(ctx context.Context, companyID, id uuid.UUID) (*domain.InvoiceItem, error) {
	if m.GetItemFunc == nil {
		panic("invoiceRepoMock.GetItemFunc: method is nil but GetItem was just called")
	}
	return m.GetItemFunc(ctx, companyID, id)
}

func (m *invoiceRepoMock) ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	if m.ListItemsFunc == nil {
		panic("invoiceRepoMock.ListItemsFunc: method is nil but ListItems was just called")
	}
	return m.ListItemsFunc(ctx, invoiceID)
}

func (m *invoiceRepoMock) NextItemPosition(ctx context.Context, invoiceID uuid.UUID) (int, error) {
	if m.NextItemPositionFunc == nil {
		return 1, nil
	}
	return m.NextItemPositionFunc(ctx, invoiceID)
}

func (m *invoiceRepoMock) UpdateItem(ctx context.Context, id uuid.UUID, params domain.InvoiceItemUpdateParams, amount decimal.Decimal) (*domain.InvoiceItem, error) {
	if m.UpdateItemFunc == nil {
		panic("invoiceRepoMock.UpdateItemFunc: method is nil but UpdateItem was just called")
	}
	return m.UpdateItemFunc(ctx, id, params, amount)
}

func (m *invoiceRepoMock) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if m.DeleteItemFunc == nil {
		panic("invoiceRepoMock.DeleteItemFunc: method is nil but DeleteItem was just called")
	}
	return m.DeleteItemFunc(ctx, id)
}

func (m *invoiceRepoMock) CreatePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	if m.CreatePaymentFunc == nil {
		panic("invoiceRepoMock.CreatePaymentFunc: method is nil but CreatePayment was just called")
	}
	return m.CreatePaymentFunc(ctx, p)
}

func (m *invoiceRepoMock) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error) {
	if m.ListPaymentsFunc == nil {
		panic("invoiceRepoMock.ListPaymentsFunc: method is nil but ListPayments was just called")
	}
	return m.ListPaymentsFunc(ctx, invoiceID)
}

func (m *invoiceRepoMock) SumPayments(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	if m.SumPaymentsFunc == nil {
		panic("invoiceRepoMock.SumPaymentsFunc: method is nil but SumPayments was just called")
	}
	return m.SumPaymentsFunc(ctx, invoiceID)
}

func (m *invoiceRepoMock) ListHistory(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceHistoryEntry, error) {
	if m.ListHistoryFunc == nil {
		panic("invoiceRepoMock.ListHistoryFunc: method is nil but ListHistory was just called")
	}
	return m.ListHistoryFunc(ctx, invoiceID)
}

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	GetByIDFunc func(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error)
}

func (m *customerRepoMock) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error) {
	if m.GetByIDFunc == nil {
		panic("customerRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, companyID, id)
}

var _ historyRecorder = &historyRecorderMock{}

type historyRecorderMock struct {
	entries []domain.InvoiceHistoryEntry
}

func (m *historyRecorderMock) Record(e domain.InvoiceHistoryEntry) {
	m.entries = append(m.entries, e)
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
