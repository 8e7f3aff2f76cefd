package lead

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var _ leadRepo = &leadRepoMock{}

type leadRepoMock struct {
	CreateFunc        func(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	GetByIDFunc       func(ctx context.Context, companyID, id uuid.UUID) (*domain.Lead, error)
	ListPageFunc      func(ctx context.Context, companyID uuid.UUID, filter domain.LeadFilter) (domain.Page[domain.Lead], error)
	UpdateFunc        func(ctx context.Context, companyID, id uuid.UUID, params domain.LeadUpdateParams) (*domain.Lead, error)
	MarkConvertedFunc func(ctx context.Context, companyID, id, customerID uuid.UUID) (*domain.Lead, error)
	DeleteFunc        func(ctx context.Context, companyID, id uuid.UUID) error

	CreateOpportunityFunc func(ctx context.Context, o *domain.Opportunity) (*domain.Opportunity, error)
	GetOpportunityFunc    func(ctx context.Context, companyID, id uuid.UUID) (*domain.Opportunity, error)
	UpdateOpportunityFunc func(ctx context.Context, id uuid.UUID, params domain.OpportunityUpdateParams) (*domain.Opportunity, error)
	DeleteOpportunityFunc func(ctx context.Context, id uuid.UUID) error

	ListActivitiesFunc func(ctx context.Context, leadID uuid.UUID) ([]domain.LeadActivity, error)

	mu         sync.Mutex
	activities []domain.LeadActivity
}

func (m *leadRepoMock) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	if m.CreateFunc == nil {
		panic("leadRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, l)
}

func (m *leadRepoMock) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Lead, error) {
	if m.GetByIDFunc == nil {
		panic("leadRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, companyID, id)
}

func (m *leadRepoMock) ListPage(ctx context.Context, companyID uuid.UUID, filter domain.LeadFilter) (domain.Page[domain.Lead], error) {
	if m.ListPageFunc == nil {
		panic("leadRepoMock.ListPageFunc: method is nil but ListPage was just called")
	}
	return m.ListPageFunc(ctx, companyID, filter)
}

func (m *leadRepoMock) Update(ctx context.Context, companyID, id uuid.UUID, params domain.LeadUpdateParams) (*domain.Lead, error) {
	if m.UpdateFunc == nil {
		panic("leadRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, companyID, id, params)
}

func (m *leadRepoMock) MarkConverted(ctx context.Context, companyID, id, customerID uuid.UUID) (*domain.Lead, error) {
	if m.MarkConvertedFunc == nil {
		panic("leadRepoMock.MarkConvertedFunc: method is nil but MarkConverted was just called")
	}
	return m.MarkConvertedFunc(ctx, companyID, id, customerID)
}

func (m *leadRepoMock) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("leadRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, companyID, id)
}

func (m *leadRepoMock) CreateOpportunity(ctx context.Context, o *domain.Opportunity) (*domain.Opportunity, error) {
	if m.CreateOpportunityFunc == nil {
		panic("leadRepoMock.CreateOpportunityFunc: method is nil but CreateOpportunity was just called")
	}
	return m.CreateOpportunityFunc(ctx, o)
}

func (m *leadRepoMock) GetOpportunity(ctx context.Context, companyID, id uuid.UUID) (*domain.Opportunity, error) {
	if m.GetOpportunityFunc == nil {
		panic("leadRepoMock.GetOpportunityFunc: method is nil but GetOpportunity was just called")
	}
	return m.GetOpportunityFunc(ctx, companyID, id)
}

func (m *leadRepoMock) UpdateOpportunity(ctx context.Context, id uuid.UUID, params domain.OpportunityUpdateParams) (*domain.Opportunity, error) {
	if m.UpdateOpportunityFunc == nil {
		panic("leadRepoMock.UpdateOpportunityFunc: method is nil but UpdateOpportunity was just called")
	}
	return m.UpdateOpportunityFunc(ctx, id, params)
}

func (m *leadRepoMock) DeleteOpportunity(ctx context.Context, id uuid.UUID) error {
	if m.DeleteOpportunityFunc == nil {
		panic("leadRepoMock.DeleteOpportunityFunc: method is nil but DeleteOpportunity was just called")
	}
	return m.DeleteOpportunityFunc(ctx, id)
}

func (m *leadRepoMock) AddActivity(ctx context.Context, a *domain.LeadActivity) (*domain.LeadActivity, error) {
	m.mu.Lock()
	m.activities = append(m.activities, *a)
	m.mu.Unlock()
	return a, nil
}

func (m *leadRepoMock) ListActivities(ctx context.Context, leadID uuid.UUID) ([]domain.LeadActivity, error) {
	if m.ListActivitiesFunc == nil {
		panic("leadRepoMock.ListActivitiesFunc: method is nil but ListActivities was just called")
	}
	return m.ListActivitiesFunc(ctx, leadID)
}

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	CreateFunc func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

func (m *customerRepoMock) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if m.CreateFunc == nil {
		panic("customerRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, c)
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
