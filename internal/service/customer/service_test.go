package customer

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/pkg/ctxutil"
)

func newTestService(customers *customerRepoMock, invoices *invoiceRepoMock) *Service {
	return NewService(slog.Default(), customers, invoices, &txManagerMock{})
}

func writerCtx(companyID uuid.UUID) context.Context {
	return ctxutil.WithPrincipal(context.Background(), domain.Principal{
		UserID:    uuid.New(),
		Email:     "member@example.com",
		Role:      domain.UserRoleMember,
		CompanyID: companyID,
	})
}

func TestCreateCustomer_TrimsAndScopes(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	customers := &customerRepoMock{
		CreateFunc: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
			return c, nil
		},
	}
	svc := newTestService(customers, &invoiceRepoMock{})

	email := "  billing@acme.test  "
	created, err := svc.CreateCustomer(writerCtx(companyID), CreateCustomerInput{
		Name:  "  Acme Corp  ",
		Email: &email,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Name != "Acme Corp" {
		t.Errorf("name: got %q, want %q", created.Name, "Acme Corp")
	}
	if created.Email == nil || *created.Email != "billing@acme.test" {
		t.Errorf("email: got %v, want billing@acme.test", created.Email)
	}
	if created.CompanyID != companyID {
		t.Errorf("company ID: got %v, want %v", created.CompanyID, companyID)
	}
}

func TestCreateCustomer_NameRequired(t *testing.T) {
	t.Parallel()

	svc := newTestService(&customerRepoMock{}, &invoiceRepoMock{})

	_, err := svc.CreateCustomer(writerCtx(uuid.New()), CreateCustomerInput{Name: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteCustomer_BlockedByInvoices(t *testing.T) {
	t.Parallel()

	invoices := &invoiceRepoMock{
		CountByCustomerFunc: func(ctx context.Context, companyID, customerID uuid.UUID) (int, error) {
			return 3, nil
		},
	}
	svc := newTestService(&customerRepoMock{}, invoices)

	err := svc.DeleteCustomer(writerCtx(uuid.New()), uuid.New())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteCustomer_Succeeds(t *testing.T) {
	t.Parallel()

	deleted := false
	customers := &customerRepoMock{
		DeleteFunc: func(ctx context.Context, companyID, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := newTestService(customers, &invoiceRepoMock{})

	if err := svc.DeleteCustomer(writerCtx(uuid.New()), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected Delete to be called")
	}
}

func TestListCustomers_InvalidCursor(t *testing.T) {
	t.Parallel()

	svc := newTestService(&customerRepoMock{}, &invoiceRepoMock{})

	after := "not-a-cursor"
	_, err := svc.ListCustomers(writerCtx(uuid.New()), ListCustomersInput{After: &after})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListCustomers_PageSizeClamped(t *testing.T) {
	t.Parallel()

	customers := &customerRepoMock{
		ListPageFunc: func(ctx context.Context, companyID uuid.UUID, filter domain.CustomerFilter) (domain.Page[domain.Customer], error) {
			if filter.First != MaxPageSize {
				t.Errorf("first: got %d, want %d", filter.First, MaxPageSize)
			}
			return domain.Page[domain.Customer]{}, nil
		},
	}
	svc := newTestService(customers, &invoiceRepoMock{})

	if _, err := svc.ListCustomers(writerCtx(uuid.New()), ListCustomersInput{First: 10000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListCustomers_DefaultPageSize(t *testing.T) {
	t.Parallel()

	customers := &customerRepoMock{
		ListPageFunc: func(ctx context.Context, companyID uuid.UUID, filter domain.CustomerFilter) (domain.Page[domain.Customer], error) {
			if filter.First != DefaultPageSize {
				t.Errorf("first: got %d, want %d", filter.First, DefaultPageSize)
			}
			return domain.Page[domain.Customer]{}, nil
		},
	}
	svc := newTestService(customers, &invoiceRepoMock{})

	if _, err := svc.ListCustomers(writerCtx(uuid.New()), ListCustomersInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddContact_PrimaryDemotesPrevious(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	customers := &customerRepoMock{
		GetByIDFunc: func(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error) {
			return &domain.Customer{ID: id, CompanyID: companyID}, nil
		},
		CreateContactFunc: func(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
			return c, nil
		},
	}
	svc := newTestService(customers, &invoiceRepoMock{})

	contact, err := svc.AddContact(writerCtx(uuid.New()), AddContactInput{
		CustomerID: customerID,
		Name:       "Jane Doe",
		IsPrimary:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !contact.IsPrimary {
		t.Error("expected contact to be primary")
	}
	if len(customers.unsetPrimaryCalls) != 1 || customers.unsetPrimaryCalls[0] != customerID {
		t.Errorf("UnsetPrimary calls: got %v, want [%v]", customers.unsetPrimaryCalls, customerID)
	}
}

func TestAddContact_NonPrimaryKeepsExisting(t *testing.T) {
	t.Parallel()

	customers := &customerRepoMock{
		GetByIDFunc: func(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error) {
			return &domain.Customer{ID: id, CompanyID: companyID}, nil
		},
		CreateContactFunc: func(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
			return c, nil
		},
	}
	svc := newTestService(customers, &invoiceRepoMock{})

	_, err := svc.AddContact(writerCtx(uuid.New()), AddContactInput{
		CustomerID: uuid.New(),
		Name:       "John Doe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(customers.unsetPrimaryCalls) != 0 {
		t.Errorf("UnsetPrimary calls: got %v, want none", customers.unsetPrimaryCalls)
	}
}

func TestUpdateContact_PromotionDemotesPrevious(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	isPrimary := true

	customers := &customerRepoMock{
		GetContactFunc: func(ctx context.Context, companyID, id uuid.UUID) (*domain.Contact, error) {
			return &domain.Contact{ID: id, CustomerID: customerID, IsPrimary: false}, nil
		},
		UpdateContactFunc: func(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error) {
			return &domain.Contact{ID: id, CustomerID: customerID, IsPrimary: true}, nil
		},
	}
	svc := newTestService(customers, &invoiceRepoMock{})

	_, err := svc.UpdateContact(writerCtx(uuid.New()), UpdateContactInput{
		ContactID: uuid.New(),
		IsPrimary: &isPrimary,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(customers.unsetPrimaryCalls) != 1 || customers.unsetPrimaryCalls[0] != customerID {
		t.Errorf("UnsetPrimary calls: got %v, want [%v]", customers.unsetPrimaryCalls, customerID)
	}
}

func TestUpdateContact_AlreadyPrimarySkipsDemotion(t *testing.T) {
	t.Parallel()

	isPrimary := true
	customers := &customerRepoMock{
		GetContactFunc: func(ctx context.Context, companyID, id uuid.UUID) (*domain.Contact, error) {
			return &domain.Contact{ID: id, CustomerID: uuid.New(), IsPrimary: true}, nil
		},
		UpdateContactFunc: func(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error) {
			return &domain.Contact{ID: id, IsPrimary: true}, nil
		},
	}
	svc := newTestService(customers, &invoiceRepoMock{})

	_, err := svc.UpdateContact(writerCtx(uuid.New()), UpdateContactInput{
		ContactID: uuid.New(),
		IsPrimary: &isPrimary,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(customers.unsetPrimaryCalls) != 0 {
		t.Errorf("UnsetPrimary calls: got %v, want none", customers.unsetPrimaryCalls)
	}
}

func TestGetCustomer_ViewerAllowed(t *testing.T) {
	t.Parallel()

	customers := &customerRepoMock{
		GetByIDFunc: func(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error) {
			return &domain.Customer{ID: id, CompanyID: companyID, Name: "Acme"}, nil
		},
	}
	svc := newTestService(customers, &invoiceRepoMock{})

	ctx := ctxutil.WithPrincipal(context.Background(), domain.Principal{
		UserID:    uuid.New(),
		Role:      domain.UserRoleViewer,
		CompanyID: uuid.New(),
	})

	got, err := svc.GetCustomer(ctx, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Acme" {
		t.Errorf("name: got %q, want Acme", got.Name)
	}
}

func TestDeleteCustomer_ViewerForbidden(t *testing.T) {
	t.Parallel()

	svc := newTestService(&customerRepoMock{}, &invoiceRepoMock{})

	ctx := ctxutil.WithPrincipal(context.Background(), domain.Principal{
		UserID:    uuid.New(),
		Role:      domain.UserRoleViewer,
		CompanyID: uuid.New(),
	})

	err := svc.DeleteCustomer(ctx, uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
