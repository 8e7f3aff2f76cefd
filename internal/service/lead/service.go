package lead

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

type leadRepo interface {
	Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Lead, error)
	ListPage(ctx context.Context, companyID uuid.UUID, filter domain.LeadFilter) (domain.Page[domain.Lead], error)
	Update(ctx context.Context, companyID, id uuid.UUID, params domain.LeadUpdateParams) (*domain.Lead, error)
	MarkConverted(ctx context.Context, companyID, id, customerID uuid.UUID) (*domain.Lead, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error

	CreateOpportunity(ctx context.Context, o *domain.Opportunity) (*domain.Opportunity, error)
	GetOpportunity(ctx context.Context, companyID, id uuid.UUID) (*domain.Opportunity, error)
	UpdateOpportunity(ctx context.Context, id uuid.UUID, params domain.OpportunityUpdateParams) (*domain.Opportunity, error)
	DeleteOpportunity(ctx context.Context, id uuid.UUID) error

	AddActivity(ctx context.Context, a *domain.LeadActivity) (*domain.LeadActivity, error)
	ListActivities(ctx context.Context, leadID uuid.UUID) ([]domain.LeadActivity, error)
}

type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Service provides lead pipeline operations.
type Service struct {
	leads     leadRepo
	customers customerRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Lead service.
func NewService(log *slog.Logger, leads leadRepo, customers customerRepo, tx txManager) *Service {
	return &Service{
		leads:     leads,
		customers: customers,
		tx:        tx,
		log:       log.With("service", "lead"),
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
