// Package transaction implements the Transaction repository using PostgreSQL.
package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "transactions"

var columns = []string{
	"id", "company_id", "account_id", "type", "amount", "date",
	"description", "reference", "reconciled", "metadata",
	"created_at", "updated_at",
}

// Repo provides transaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new transaction and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	metadata, err := marshalMetadata(t.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	query, args, err := qb.Insert(table).
		Columns("id", "company_id", "account_id", "type", "amount", "date",
			"description", "reference", "reconciled", "metadata").
		Values(t.ID, t.CompanyID, t.AccountID, t.Type, t.Amount, t.Date,
			t.Description, t.Reference, t.Reconciled, metadata).
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "transaction", t.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanTransaction(row)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", t.ID)
	}

	return created, nil
}

// GetByID returns a transaction by primary key within the company.
func (r *Repo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Transaction, error) {
	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	return t, nil
}

// List returns transactions of the company, newest first by date.
func (r *Repo) List(ctx context.Context, companyID uuid.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	sel := qb.Select(columns...).From(table).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("date DESC", "created_at DESC")
	if filter.AccountID != nil {
		sel = sel.Where(sq.Eq{"account_id": *filter.AccountID})
	}
	if filter.Type != nil {
		sel = sel.Where(sq.Eq{"type": *filter.Type})
	}
	if filter.Reconciled != nil {
		sel = sel.Where(sq.Eq{"reconciled": *filter.Reconciled})
	}
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "transaction", uuid.Nil)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", uuid.Nil)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, postgres.MapError(err, "transaction", uuid.Nil)
		}
		transactions = append(transactions, *t)
	}

	return transactions, rows.Err()
}

// Update applies partial-update params and returns the updated transaction.
func (r *Repo) Update(ctx context.Context, companyID, id uuid.UUID, params domain.TransactionUpdateParams) (*domain.Transaction, error) {
	update := qb.Update(table).Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "company_id": companyID})
	if params.Type != nil {
		update = update.Set("type", *params.Type)
	}
	if params.Amount != nil {
		update = update.Set("amount", *params.Amount)
	}
	if params.Date != nil {
		update = update.Set("date", *params.Date)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.Reference != nil {
		update = update.Set("reference", *params.Reference)
	}

	query, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	return t, nil
}

// SetReconciled flips the reconciled flag and returns the updated transaction.
func (r *Repo) SetReconciled(ctx context.Context, companyID, id uuid.UUID, reconciled bool) (*domain.Transaction, error) {
	query, args, err := qb.Update(table).
		Set("reconciled", reconciled).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "company_id": companyID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}

	return t, nil
}

// Delete removes a transaction from the company.
func (r *Repo) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return postgres.MapError(err, "transaction", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "transaction", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountByAccount returns how many transactions reference the account.
func (r *Repo) CountByAccount(ctx context.Context, companyID, accountID uuid.UUID) (int, error) {
	query, args, err := qb.Select("count(*)").From(table).
		Where(sq.Eq{"company_id": companyID, "account_id": accountID}).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "transaction", uuid.Nil)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "transaction", uuid.Nil)
	}

	return count, nil
}

func marshalMetadata(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		t        domain.Transaction
		metadata []byte
	)
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.AccountID, &t.Type, &t.Amount, &t.Date,
		&t.Description, &t.Reference, &t.Reconciled, &metadata,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &t.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return &t, nil
}
