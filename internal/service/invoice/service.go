package invoice

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

type invoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, companyID uuid.UUID, filter domain.InvoiceFilter) ([]domain.Invoice, error)
	NextNumber(ctx context.Context, companyID uuid.UUID, prefix string) (string, error)
	Update(ctx context.Context, companyID, id uuid.UUID, params domain.InvoiceUpdateParams) (*domain.Invoice, error)
	UpdateTotals(ctx context.Context, companyID, id uuid.UUID, totals domain.InvoiceTotals) error
	UpdateStatus(ctx context.Context, companyID, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error

	CreateItem(ctx context.Context, item *domain.InvoiceItem) (*domain.InvoiceItem, error)
	GetItem(ctx context.Context, companyID, id uuid.UUID) (*domain.InvoiceItem, error)
	ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error)
	NextItemPosition(ctx context.Context, invoiceID uuid.UUID) (int, error)
	UpdateItem(ctx context.Context, id uuid.UUID, params domain.InvoiceItemUpdateParams, amount decimal.Decimal) (*domain.InvoiceItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error

	CreatePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
	SumPayments(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)

	ListHistory(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceHistoryEntry, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error)
}

type historyRecorder interface {
	Record(e domain.InvoiceHistoryEntry)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config carries the billing defaults applied when an invoice omits them.
type Config struct {
	DefaultCurrency string
	DueInDays       int
	NumberPrefix    string
}

// Service provides invoicing operations. Mutations that change line
// items rewrite the stored invoice totals in the same transaction;
// audit history is recorded asynchronously and best effort.
type Service struct {
	invoices  invoiceRepo
	customers customerRepo
	history   historyRecorder
	tx        txManager
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new Invoice service.
func NewService(log *slog.Logger, invoices invoiceRepo, customers customerRepo, history historyRecorder, tx txManager, cfg Config) *Service {
	return &Service{
		invoices:  invoices,
		customers: customers,
		history:   history,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "invoice"),
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

// ptr returns a pointer to the given string.
func ptr(s string) *string {
	return &s
}

// recalcTotals recomputes the invoice's stored totals from its current
// items. Runs inside the caller's transaction.
func (s *Service) recalcTotals(ctx context.Context, companyID, invoiceID uuid.UUID) error {
	items, err := s.invoices.ListItems(ctx, invoiceID)
	if err != nil {
		return err
	}
	return s.invoices.UpdateTotals(ctx, companyID, invoiceID, CalculateTotals(items))
}
