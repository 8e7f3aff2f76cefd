package transaction

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/pkg/ctxutil"
)

func newTestService(transactions *transactionRepoMock, accounts *accountRepoMock) *Service {
	return NewService(slog.Default(), transactions, accounts, &txManagerMock{})
}

func writerCtx(companyID uuid.UUID) context.Context {
	return ctxutil.WithPrincipal(context.Background(), domain.Principal{
		UserID:    uuid.New(),
		Email:     "member@example.com",
		Role:      domain.UserRoleMember,
		CompanyID: companyID,
	})
}

func TestCreateTransaction_CreditIncrementsBalance(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	accountID := uuid.New()

	transactions := &transactionRepoMock{
		CreateFunc: func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			return tx, nil
		},
	}
	accounts := &accountRepoMock{
		GetByIDFunc: func(ctx context.Context, cID, id uuid.UUID) (*domain.Account, error) {
			return &domain.Account{ID: id, CompanyID: cID}, nil
		},
	}
	svc := newTestService(transactions, accounts)

	created, err := svc.CreateTransaction(writerCtx(companyID), CreateTransactionInput{
		AccountID: accountID,
		Type:      domain.TransactionCredit,
		Amount:    decimal.NewFromInt(100),
		Date:      time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.CompanyID != companyID {
		t.Errorf("company ID: got %v, want %v", created.CompanyID, companyID)
	}
	if len(accounts.incrementCalls) != 1 {
		t.Fatalf("IncrementBalance calls: got %d, want 1", len(accounts.incrementCalls))
	}
	if !accounts.incrementCalls[0].Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance delta: got %s, want 100", accounts.incrementCalls[0])
	}
}

func TestCreateTransaction_DebitDecrementsBalance(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()

	transactions := &transactionRepoMock{
		CreateFunc: func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			return tx, nil
		},
	}
	accounts := &accountRepoMock{
		GetByIDFunc: func(ctx context.Context, cID, id uuid.UUID) (*domain.Account, error) {
			return &domain.Account{ID: id, CompanyID: cID}, nil
		},
	}
	svc := newTestService(transactions, accounts)

	_, err := svc.CreateTransaction(writerCtx(companyID), CreateTransactionInput{
		AccountID: uuid.New(),
		Type:      domain.TransactionDebit,
		Amount:    decimal.NewFromInt(40),
		Date:      time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(accounts.incrementCalls) != 1 {
		t.Fatalf("IncrementBalance calls: got %d, want 1", len(accounts.incrementCalls))
	}
	if !accounts.incrementCalls[0].Equal(decimal.NewFromInt(-40)) {
		t.Errorf("balance delta: got %s, want -40", accounts.incrementCalls[0])
	}
}

func TestCreateTransaction_NegativeAmountRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&transactionRepoMock{}, &accountRepoMock{})

	_, err := svc.CreateTransaction(writerCtx(uuid.New()), CreateTransactionInput{
		AccountID: uuid.New(),
		Type:      domain.TransactionCredit,
		Amount:    decimal.NewFromInt(-5),
		Date:      time.Now(),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateTransaction_UnknownAccount(t *testing.T) {
	t.Parallel()

	accounts := &accountRepoMock{
		GetByIDFunc: func(ctx context.Context, cID, id uuid.UUID) (*domain.Account, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(&transactionRepoMock{}, accounts)

	_, err := svc.CreateTransaction(writerCtx(uuid.New()), CreateTransactionInput{
		AccountID: uuid.New(),
		Type:      domain.TransactionCredit,
		Amount:    decimal.NewFromInt(10),
		Date:      time.Now(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(accounts.incrementCalls) != 0 {
		t.Errorf("IncrementBalance calls: got %d, want 0", len(accounts.incrementCalls))
	}
}

func TestCreateTransaction_ViewerForbidden(t *testing.T) {
	t.Parallel()

	svc := newTestService(&transactionRepoMock{}, &accountRepoMock{})
	ctx := ctxutil.WithPrincipal(context.Background(), domain.Principal{
		UserID:    uuid.New(),
		Role:      domain.UserRoleViewer,
		CompanyID: uuid.New(),
	})

	_, err := svc.CreateTransaction(ctx, CreateTransactionInput{
		AccountID: uuid.New(),
		Type:      domain.TransactionCredit,
		Amount:    decimal.NewFromInt(10),
		Date:      time.Now(),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestUpdateTransaction_AppliesNetDelta(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	accountID := uuid.New()
	txID := uuid.New()
	newAmount := decimal.NewFromInt(600)

	transactions := &transactionRepoMock{
		GetByIDFunc: func(ctx context.Context, cID, id uuid.UUID) (*domain.Transaction, error) {
			return &domain.Transaction{
				ID:        id,
				CompanyID: cID,
				AccountID: accountID,
				Type:      domain.TransactionCredit,
				Amount:    decimal.NewFromInt(500),
			}, nil
		},
		UpdateFunc: func(ctx context.Context, cID, id uuid.UUID, params domain.TransactionUpdateParams) (*domain.Transaction, error) {
			return &domain.Transaction{
				ID:        id,
				CompanyID: cID,
				AccountID: accountID,
				Type:      domain.TransactionCredit,
				Amount:    *params.Amount,
			}, nil
		},
	}
	accounts := &accountRepoMock{}
	svc := newTestService(transactions, accounts)

	_, err := svc.UpdateTransaction(writerCtx(companyID), UpdateTransactionInput{
		TransactionID: txID,
		Amount:        &newAmount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(accounts.incrementCalls) != 1 {
		t.Fatalf("IncrementBalance calls: got %d, want 1", len(accounts.incrementCalls))
	}
	if !accounts.incrementCalls[0].Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance delta: got %s, want 100", accounts.incrementCalls[0])
	}
}

func TestUpdateTransaction_NoDeltaSkipsAdjustment(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	desc := "groceries"

	transactions := &transactionRepoMock{
		GetByIDFunc: func(ctx context.Context, cID, id uuid.UUID) (*domain.Transaction, error) {
			return &domain.Transaction{
				ID:        id,
				CompanyID: cID,
				AccountID: accountID,
				Type:      domain.TransactionDebit,
				Amount:    decimal.NewFromInt(25),
			}, nil
		},
		UpdateFunc: func(ctx context.Context, cID, id uuid.UUID, params domain.TransactionUpdateParams) (*domain.Transaction, error) {
			return &domain.Transaction{
				ID:          id,
				CompanyID:   cID,
				AccountID:   accountID,
				Type:        domain.TransactionDebit,
				Amount:      decimal.NewFromInt(25),
				Description: params.Description,
			}, nil
		},
	}
	accounts := &accountRepoMock{}
	svc := newTestService(transactions, accounts)

	_, err := svc.UpdateTransaction(writerCtx(uuid.New()), UpdateTransactionInput{
		TransactionID: uuid.New(),
		Description:   &desc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(accounts.incrementCalls) != 0 {
		t.Errorf("IncrementBalance calls: got %d, want 0", len(accounts.incrementCalls))
	}
}

func TestDeleteTransaction_ReversesBalanceEffect(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	deleted := false

	transactions := &transactionRepoMock{
		GetByIDFunc: func(ctx context.Context, cID, id uuid.UUID) (*domain.Transaction, error) {
			return &domain.Transaction{
				ID:        id,
				CompanyID: cID,
				AccountID: accountID,
				Type:      domain.TransactionCredit,
				Amount:    decimal.NewFromInt(75),
			}, nil
		},
		DeleteFunc: func(ctx context.Context, cID, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	accounts := &accountRepoMock{}
	svc := newTestService(transactions, accounts)

	if err := svc.DeleteTransaction(writerCtx(uuid.New()), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !deleted {
		t.Error("expected Delete to be called")
	}
	if len(accounts.incrementCalls) != 1 {
		t.Fatalf("IncrementBalance calls: got %d, want 1", len(accounts.incrementCalls))
	}
	if !accounts.incrementCalls[0].Equal(decimal.NewFromInt(-75)) {
		t.Errorf("balance delta: got %s, want -75", accounts.incrementCalls[0])
	}
}

func TestSetReconciled(t *testing.T) {
	t.Parallel()

	transactions := &transactionRepoMock{
		SetReconciledFunc: func(ctx context.Context, cID, id uuid.UUID, reconciled bool) (*domain.Transaction, error) {
			return &domain.Transaction{ID: id, CompanyID: cID, Reconciled: reconciled}, nil
		},
	}
	svc := newTestService(transactions, &accountRepoMock{})

	tx, err := svc.SetReconciled(writerCtx(uuid.New()), uuid.New(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.Reconciled {
		t.Error("expected transaction to be reconciled")
	}
}

func TestGetTransaction_Anonymous(t *testing.T) {
	t.Parallel()

	svc := newTestService(&transactionRepoMock{}, &accountRepoMock{})

	_, err := svc.GetTransaction(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
