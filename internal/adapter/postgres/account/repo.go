// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "accounts"

var columns = []string{
	"id", "company_id", "code", "name", "type", "category", "description",
	"currency", "balance", "opening_balance", "is_system", "parent_id",
	"created_at", "updated_at",
}

// Repo provides account persistence backed by PostgreSQL. Every query is
// scoped by company_id.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new account and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	query, args, err := qb.Insert(table).
		Columns("id", "company_id", "code", "name", "type", "category",
			"description", "currency", "balance", "opening_balance", "is_system", "parent_id").
		Values(a.ID, a.CompanyID, a.Code, a.Name, a.Type, a.Category,
			a.Description, a.Currency, a.Balance, a.OpeningBalance, a.IsSystem, a.ParentID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "account", a.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", a.ID)
	}

	return created, nil
}

// GetByID returns an account by primary key within the company.
func (r *Repo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Account, error) {
	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	a, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	return a, nil
}

// GetByIDs returns the accounts with the given ids within the company.
// Missing ids are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]domain.Account, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"company_id": companyID, "id": ids}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "account", uuid.Nil)
	}

	return r.queryAccounts(ctx, query, args)
}

// List returns accounts of the company ordered by code.
func (r *Repo) List(ctx context.Context, companyID uuid.UUID, filter domain.AccountFilter) ([]domain.Account, error) {
	sel := qb.Select(columns...).From(table).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("code ASC")
	if filter.Type != nil {
		sel = sel.Where(sq.Eq{"type": *filter.Type})
	}
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "account", uuid.Nil)
	}

	return r.queryAccounts(ctx, query, args)
}

// Update applies partial-update params and returns the updated account.
func (r *Repo) Update(ctx context.Context, companyID, id uuid.UUID, params domain.AccountUpdateParams) (*domain.Account, error) {
	update := qb.Update(table).Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "company_id": companyID})
	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Category != nil {
		update = update.Set("category", *params.Category)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.ParentID != nil {
		update = update.Set("parent_id", *params.ParentID)
	}

	query, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	a, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	return a, nil
}

// Delete removes an account from the company.
func (r *Repo) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return postgres.MapError(err, "account", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// IncrementBalance adds delta to the account's running balance in place.
// Callers run it inside the same transaction as the ledger write that
// caused the change.
func (r *Repo) IncrementBalance(ctx context.Context, companyID, id uuid.UUID, delta decimal.Decimal) error {
	const query = `UPDATE accounts SET balance = balance + $1, updated_at = now()
		WHERE id = $2 AND company_id = $3`

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, delta, id, companyID)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// HasChildren reports whether the account has child accounts.
func (r *Repo) HasChildren(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (
		SELECT 1 FROM accounts WHERE parent_id = $1 AND company_id = $2)`

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, id, companyID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "account", id)
	}

	return exists, nil
}

// HasTransactions reports whether any transaction references the account.
func (r *Repo) HasTransactions(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (
		SELECT 1 FROM transactions WHERE account_id = $1 AND company_id = $2)`

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, id, companyID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "account", id)
	}

	return exists, nil
}

// RecalculateBalances rebuilds every balance of the company from its
// opening balance and transaction history. Returns the number of
// accounts updated.
func (r *Repo) RecalculateBalances(ctx context.Context, companyID uuid.UUID) (int, error) {
	const query = `UPDATE accounts SET
		balance = opening_balance + COALESCE((
			SELECT SUM(CASE WHEN t.type = 'CREDIT' THEN t.amount ELSE -t.amount END)
			FROM transactions t
			WHERE t.account_id = accounts.id), 0),
		updated_at = now()
		WHERE company_id = $1`

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, companyID)
	if err != nil {
		return 0, postgres.MapError(err, "account", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

func (r *Repo) queryAccounts(ctx context.Context, query string, args []any) ([]domain.Account, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "account", uuid.Nil)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, postgres.MapError(err, "account", uuid.Nil)
		}
		accounts = append(accounts, *a)
	}

	return accounts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.Code, &a.Name, &a.Type, &a.Category, &a.Description,
		&a.Currency, &a.Balance, &a.OpeningBalance, &a.IsSystem, &a.ParentID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
