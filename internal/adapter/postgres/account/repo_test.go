package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/account"
	"github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/testhelper"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*account.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return account.New(pool), pool
}

// createCompany inserts a company fixture so account rows satisfy their
// foreign key.
func createCompany(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO companies (id, name) VALUES ($1, $2)`,
		id, "Test Co "+id.String()[:8])
	if err != nil {
		t.Fatalf("insert company: %v", err)
	}
	return id
}

func testAccount(companyID uuid.UUID) *domain.Account {
	return &domain.Account{
		ID:             uuid.New(),
		CompanyID:      companyID,
		Code:           "A-" + uuid.New().String()[:8],
		Name:           "Cash",
		Type:           domain.AccountAsset,
		Currency:       "USD",
		Balance:        decimal.NewFromInt(100),
		OpeningBalance: decimal.NewFromInt(100),
	}
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	companyID := createCompany(t, pool)
	want := testAccount(companyID)

	got, err := repo.Create(ctx, want)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID != want.ID {
		t.Errorf("id: got %v, want %v", got.ID, want.ID)
	}
	if got.Code != want.Code {
		t.Errorf("code: got %q, want %q", got.Code, want.Code)
	}
	if !got.Balance.Equal(want.Balance) {
		t.Errorf("balance: got %s, want %s", got.Balance, want.Balance)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestRepo_Create_DuplicateCode(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	companyID := createCompany(t, pool)
	first := testAccount(companyID)
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first account: %v", err)
	}

	second := testAccount(companyID)
	second.Code = first.Code // same code in the same company
	_, err := repo.Create(ctx, second)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestRepo_Create_SameCodeOtherCompany(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	first := testAccount(createCompany(t, pool))
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first account: %v", err)
	}

	second := testAccount(createCompany(t, pool))
	second.Code = first.Code
	if _, err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create in other company: unexpected error: %v", err)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	companyID := createCompany(t, pool)
	_, err := repo.GetByID(ctx, companyID, uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRepo_GetByID_OtherCompanyInvisible(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	a := testAccount(createCompany(t, pool))
	if _, err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	otherCompany := createCompany(t, pool)
	_, err := repo.GetByID(ctx, otherCompany, a.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found across tenants, got %v", err)
	}
}

func TestRepo_IncrementBalance(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	a := testAccount(createCompany(t, pool))
	if _, err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.IncrementBalance(ctx, a.CompanyID, a.ID, decimal.NewFromInt(-30)); err != nil {
		t.Fatalf("IncrementBalance: %v", err)
	}

	got, err := repo.GetByID(ctx, a.CompanyID, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Balance.Equal(decimal.NewFromInt(70)) {
		t.Errorf("balance: got %s, want 70", got.Balance)
	}
}

func TestRepo_IncrementBalance_UnknownAccount(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	companyID := createCompany(t, pool)
	err := repo.IncrementBalance(ctx, companyID, uuid.New(), decimal.NewFromInt(10))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRepo_List_FilterByType(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	companyID := createCompany(t, pool)

	asset := testAccount(companyID)
	if _, err := repo.Create(ctx, asset); err != nil {
		t.Fatalf("Create asset: %v", err)
	}
	expense := testAccount(companyID)
	expense.Type = domain.AccountExpense
	if _, err := repo.Create(ctx, expense); err != nil {
		t.Fatalf("Create expense: %v", err)
	}

	typ := domain.AccountExpense
	got, err := repo.List(ctx, companyID, domain.AccountFilter{Type: &typ})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("accounts: got %d, want 1", len(got))
	}
	if got[0].ID != expense.ID {
		t.Errorf("id: got %v, want %v", got[0].ID, expense.ID)
	}
}

func TestRepo_HasChildren(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	companyID := createCompany(t, pool)
	parent := testAccount(companyID)
	if _, err := repo.Create(ctx, parent); err != nil {
		t.Fatalf("Create parent: %v", err)
	}

	child := testAccount(companyID)
	child.ParentID = &parent.ID
	if _, err := repo.Create(ctx, child); err != nil {
		t.Fatalf("Create child: %v", err)
	}

	has, err := repo.HasChildren(ctx, companyID, parent.ID)
	if err != nil {
		t.Fatalf("HasChildren: %v", err)
	}
	if !has {
		t.Error("expected parent to report children")
	}

	has, err = repo.HasChildren(ctx, companyID, child.ID)
	if err != nil {
		t.Fatalf("HasChildren: %v", err)
	}
	if has {
		t.Error("expected leaf to report no children")
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	a := testAccount(createCompany(t, pool))
	if _, err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, a.CompanyID, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := repo.GetByID(ctx, a.CompanyID, a.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestRepo_RecalculateBalances(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	companyID := createCompany(t, pool)
	a := testAccount(companyID)
	a.Balance = decimal.NewFromInt(999) // drifted
	if _, err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO transactions (id, company_id, account_id, type, amount, date)
		 VALUES ($1, $2, $3, 'CREDIT', 50, now()), ($4, $2, $3, 'DEBIT', 20, now())`,
		uuid.New(), companyID, a.ID, uuid.New())
	if err != nil {
		t.Fatalf("insert transactions: %v", err)
	}

	updated, err := repo.RecalculateBalances(ctx, companyID)
	if err != nil {
		t.Fatalf("RecalculateBalances: %v", err)
	}
	if updated != 1 {
		t.Errorf("updated: got %d, want 1", updated)
	}

	got, err := repo.GetByID(ctx, companyID, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	// opening 100 + 50 credit - 20 debit
	if !got.Balance.Equal(decimal.NewFromInt(130)) {
		t.Errorf("balance: got %s, want 130", got.Balance)
	}
}
