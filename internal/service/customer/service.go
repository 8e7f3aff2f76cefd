package customer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error)
	ListPage(ctx context.Context, companyID uuid.UUID, filter domain.CustomerFilter) (domain.Page[domain.Customer], error)
	Update(ctx context.Context, companyID, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error

	CreateContact(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	GetContact(ctx context.Context, companyID, id uuid.UUID) (*domain.Contact, error)
	ListContacts(ctx context.Context, customerID uuid.UUID) ([]domain.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error)
	UnsetPrimary(ctx context.Context, customerID uuid.UUID) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
}

type invoiceRepo interface {
	CountByCustomer(ctx context.Context, companyID, customerID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Service provides customer and contact operations.
type Service struct {
	customers customerRepo
	invoices  invoiceRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Customer service.
func NewService(log *slog.Logger, customers customerRepo, invoices invoiceRepo, tx txManager) *Service {
	return &Service{
		customers: customers,
		invoices:  invoices,
		tx:        tx,
		log:       log.With("service", "customer"),
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

func pageSize(first int) int {
	switch {
	case first <= 0:
		return DefaultPageSize
	case first > MaxPageSize:
		return MaxPageSize
	default:
		return first
	}
}
