// Package company implements the Company repository using PostgreSQL.
package company

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "companies"

var columns = []string{
	"id", "name", "email", "phone", "address", "currency",
	"subscription_plan", "subscription_status", "created_at", "updated_at",
}

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new company repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a company by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query, args, err := qb.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	c, err := scanCompany(row)
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}

	return c, nil
}

// Update applies partial-update params and returns the updated company.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error) {
	update := qb.Update(table).Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Email != nil {
		update = update.Set("email", *params.Email)
	}
	if params.Phone != nil {
		update = update.Set("phone", *params.Phone)
	}
	if params.Address != nil {
		update = update.Set("address", *params.Address)
	}

	query, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	c, err := scanCompany(row)
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}

	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Currency,
		&c.SubscriptionPlan, &c.SubscriptionStatus, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

