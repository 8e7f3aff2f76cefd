// Package customer implements the Customer and Contact repositories
// using PostgreSQL.
package customer

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

const (
	table         = "customers"
	contactsTable = "contacts"
)

var columns = []string{
	"id", "company_id", "name", "email", "phone", "address", "city",
	"country", "tags", "notes", "created_at", "updated_at",
}

var contactColumns = []string{
	"id", "customer_id", "name", "email", "phone", "position", "is_primary",
	"created_at", "updated_at",
}

// Repo provides customer and contact persistence backed by PostgreSQL.
// Contacts are tenant-scoped through their owning customer.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new customer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new customer and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	tags, err := marshalTags(c.Tags)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}

	query, args, err := qb.Insert(table).
		Columns("id", "company_id", "name", "email", "phone", "address",
			"city", "country", "tags", "notes").
		Values(c.ID, c.CompanyID, c.Name, c.Email, c.Phone, c.Address,
			c.City, c.Country, tags, c.Notes).
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanCustomer(row)
	if err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}

	return created, nil
}

// GetByID returns a customer by primary key within the company.
func (r *Repo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Customer, error) {
	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	c, err := scanCustomer(row)
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}

	return c, nil
}

// GetByIDs returns the customers with the given ids within the company.
func (r *Repo) GetByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]domain.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"company_id": companyID, "id": ids}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "customer", uuid.Nil)
	}

	return r.queryCustomers(ctx, query, args)
}

// ListPage returns one page of customers using keyset pagination over
// (created_at, id) descending. It fetches one row past the page size to
// detect whether a next page exists.
func (r *Repo) ListPage(ctx context.Context, companyID uuid.UUID, filter domain.CustomerFilter) (domain.Page[domain.Customer], error) {
	var page domain.Page[domain.Customer]

	sel := qb.Select(columns...).From(table).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.First + 1))
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		sel = sel.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}
	if filter.After != nil {
		sel = sel.Where(sq.Expr("(created_at, id) < (?, ?)", filter.After.CreatedAt, filter.After.ID))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return page, postgres.MapError(err, "customer", uuid.Nil)
	}

	customers, err := r.queryCustomers(ctx, query, args)
	if err != nil {
		return page, err
	}

	if len(customers) > filter.First {
		page.HasNextPage = true
		customers = customers[:filter.First]
	}
	page.Items = customers
	if n := len(customers); n > 0 {
		last := customers[n-1]
		page.EndCursor = &domain.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return page, nil
}

// Update applies partial-update params and returns the updated customer.
func (r *Repo) Update(ctx context.Context, companyID, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error) {
	update := qb.Update(table).Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "company_id": companyID})
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
	if params.City != nil {
		update = update.Set("city", *params.City)
	}
	if params.Country != nil {
		update = update.Set("country", *params.Country)
	}
	if params.Tags != nil {
		tags, err := marshalTags(*params.Tags)
		if err != nil {
			return nil, fmt.Errorf("marshal tags: %w", err)
		}
		update = update.Set("tags", tags)
	}
	if params.Notes != nil {
		update = update.Set("notes", *params.Notes)
	}

	query, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	c, err := scanCustomer(row)
	if err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}

	return c, nil
}

// Delete removes a customer from the company. Contacts cascade.
func (r *Repo) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CreateContact inserts a new contact and returns the persisted row.
func (r *Repo) CreateContact(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	query, args, err := qb.Insert(contactsTable).
		Columns("id", "customer_id", "name", "email", "phone", "position", "is_primary").
		Values(c.ID, c.CustomerID, c.Name, c.Email, c.Phone, c.Position, c.IsPrimary).
		Suffix("RETURNING " + strings.Join(contactColumns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "contact", c.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanContact(row)
	if err != nil {
		return nil, postgres.MapError(err, "contact", c.ID)
	}

	return created, nil
}

// GetContact returns a contact by primary key, scoped to the company
// through its customer.
func (r *Repo) GetContact(ctx context.Context, companyID, id uuid.UUID) (*domain.Contact, error) {
	query, args, err := qb.Select(prefixed("ct", contactColumns)...).
		From(contactsTable + " ct").
		Join("customers cu ON cu.id = ct.customer_id").
		Where(sq.Eq{"ct.id": id, "cu.company_id": companyID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	c, err := scanContact(row)
	if err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}

	return c, nil
}

// ListContacts returns the contacts of a customer, primary first.
func (r *Repo) ListContacts(ctx context.Context, customerID uuid.UUID) ([]domain.Contact, error) {
	query, args, err := qb.Select(contactColumns...).From(contactsTable).
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("is_primary DESC", "created_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "contact", uuid.Nil)
	}

	return r.queryContacts(ctx, query, args)
}

// GetContactsByCustomerIDs returns all contacts of the given customers in
// one query, for batch loading.
func (r *Repo) GetContactsByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]domain.Contact, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select(contactColumns...).From(contactsTable).
		Where(sq.Eq{"customer_id": customerIDs}).
		OrderBy("is_primary DESC", "created_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "contact", uuid.Nil)
	}

	return r.queryContacts(ctx, query, args)
}

// UpdateContact applies partial-update params and returns the updated contact.
func (r *Repo) UpdateContact(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error) {
	update := qb.Update(contactsTable).Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Email != nil {
		update = update.Set("email", *params.Email)
	}
	if params.Phone != nil {
		update = update.Set("phone", *params.Phone)
	}
	if params.Position != nil {
		update = update.Set("position", *params.Position)
	}
	if params.IsPrimary != nil {
		update = update.Set("is_primary", *params.IsPrimary)
	}

	query, args, err := update.Suffix("RETURNING " + strings.Join(contactColumns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	c, err := scanContact(row)
	if err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}

	return c, nil
}

// UnsetPrimary clears the primary flag on every contact of the customer.
// Runs in the same transaction as the promotion of the new primary.
func (r *Repo) UnsetPrimary(ctx context.Context, customerID uuid.UUID) error {
	query, args, err := qb.Update(contactsTable).
		Set("is_primary", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"customer_id": customerID, "is_primary": true}).ToSql()
	if err != nil {
		return postgres.MapError(err, "contact", uuid.Nil)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "contact", uuid.Nil)
	}

	return nil
}

// DeleteContact removes a contact.
func (r *Repo) DeleteContact(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Delete(contactsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) queryCustomers(ctx context.Context, query string, args []any) ([]domain.Customer, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "customer", uuid.Nil)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, postgres.MapError(err, "customer", uuid.Nil)
		}
		customers = append(customers, *c)
	}

	return customers, rows.Err()
}

func (r *Repo) queryContacts(ctx context.Context, query string, args []any) ([]domain.Contact, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "contact", uuid.Nil)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, postgres.MapError(err, "contact", uuid.Nil)
		}
		contacts = append(contacts, *c)
	}

	return contacts, rows.Err()
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		return nil, nil
	}
	return json.Marshal(tags)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var (
		c    domain.Customer
		tags []byte
	)
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City,
		&c.Country, &tags, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &c.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	return &c, nil
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID, &c.CustomerID, &c.Name, &c.Email, &c.Phone, &c.Position, &c.IsPrimary,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
