// Package invoice implements the Invoice, InvoiceItem, Payment and
// invoice history repositories using PostgreSQL.
package invoice

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

const (
	table         = "invoices"
	itemsTable    = "invoice_items"
	paymentsTable = "payments"
	historyTable  = "invoice_history"
)

var columns = []string{
	"id", "company_id", "customer_id", "number", "status", "issue_date",
	"due_date", "currency", "subtotal", "tax_amount", "vat_amount", "total",
	"notes", "terms", "created_at", "updated_at",
}

var itemColumns = []string{
	"id", "invoice_id", "description", "quantity", "unit_price",
	"tax_rate", "vat_rate", "amount", "position", "created_at", "updated_at",
}

var paymentColumns = []string{
	"id", "invoice_id", "amount", "date", "method", "reference", "notes",
	"created_at",
}

var historyColumns = []string{
	"id", "invoice_id", "user_id", "action", "field", "item_id",
	"old_value", "new_value", "created_at",
}

// Repo provides invoice persistence backed by PostgreSQL. Items,
// payments and history rows are tenant-scoped through their invoice.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new invoice repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new invoice and returns the persisted row.
func (r *Repo) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	query, args, err := qb.Insert(table).
		Columns("id", "company_id", "customer_id", "number", "status",
			"issue_date", "due_date", "currency", "subtotal", "tax_amount",
			"vat_amount", "total", "notes", "terms").
		Values(inv.ID, inv.CompanyID, inv.CustomerID, inv.Number, inv.Status,
			inv.IssueDate, inv.DueDate, inv.Currency, inv.Subtotal, inv.TaxAmount,
			inv.VATAmount, inv.Total, inv.Notes, inv.Terms).
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice", inv.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanInvoice(row)
	if err != nil {
		return nil, postgres.MapError(err, "invoice", inv.ID)
	}

	return created, nil
}

// GetByID returns an invoice by primary key within the company.
func (r *Repo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Invoice, error) {
	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	inv, err := scanInvoice(row)
	if err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}

	return inv, nil
}

// List returns invoices of the company, newest first by issue date.
func (r *Repo) List(ctx context.Context, companyID uuid.UUID, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	sel := qb.Select(columns...).From(table).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("issue_date DESC", "created_at DESC")
	if filter.Status != nil {
		sel = sel.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.CustomerID != nil {
		sel = sel.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice", uuid.Nil)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "invoice", uuid.Nil)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, postgres.MapError(err, "invoice", uuid.Nil)
		}
		invoices = append(invoices, *inv)
	}

	return invoices, rows.Err()
}

// NextNumber returns the next sequential invoice number for the company,
// formatted with the given prefix. Callers run it inside the creation
// transaction so concurrent creations cannot collide silently; the
// unique (company_id, number) constraint backstops the race.
func (r *Repo) NextNumber(ctx context.Context, companyID uuid.UUID, prefix string) (string, error) {
	const query = `SELECT COALESCE(MAX((substring(number from '[0-9]+$'))::bigint), 0) + 1
		FROM invoices WHERE company_id = $1`

	var next int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, companyID).Scan(&next); err != nil {
		return "", postgres.MapError(err, "invoice", uuid.Nil)
	}

	return fmt.Sprintf("%s%06d", prefix, next), nil
}

// Update applies partial-update params and returns the updated invoice.
func (r *Repo) Update(ctx context.Context, companyID, id uuid.UUID, params domain.InvoiceUpdateParams) (*domain.Invoice, error) {
	update := qb.Update(table).Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "company_id": companyID})
	if params.CustomerID != nil {
		update = update.Set("customer_id", *params.CustomerID)
	}
	if params.IssueDate != nil {
		update = update.Set("issue_date", *params.IssueDate)
	}
	if params.DueDate != nil {
		update = update.Set("due_date", *params.DueDate)
	}
	if params.Notes != nil {
		update = update.Set("notes", *params.Notes)
	}
	if params.Terms != nil {
		update = update.Set("terms", *params.Terms)
	}

	query, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	inv, err := scanInvoice(row)
	if err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}

	return inv, nil
}

// UpdateTotals writes the four derived totals back to the invoice row.
func (r *Repo) UpdateTotals(ctx context.Context, companyID, id uuid.UUID, totals domain.InvoiceTotals) error {
	query, args, err := qb.Update(table).
		Set("subtotal", totals.Subtotal).
		Set("tax_amount", totals.TaxAmount).
		Set("vat_amount", totals.VATAmount).
		Set("total", totals.Total).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return postgres.MapError(err, "invoice", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "invoice", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateStatus transitions the invoice status and returns the updated row.
func (r *Repo) UpdateStatus(ctx context.Context, companyID, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	query, args, err := qb.Update(table).
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "company_id": companyID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	inv, err := scanInvoice(row)
	if err != nil {
		return nil, postgres.MapError(err, "invoice", id)
	}

	return inv, nil
}

// Delete removes an invoice from the company. Items, payments and
// history cascade.
func (r *Repo) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return postgres.MapError(err, "invoice", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "invoice", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountByCustomer returns how many invoices reference the customer.
func (r *Repo) CountByCustomer(ctx context.Context, companyID, customerID uuid.UUID) (int, error) {
	query, args, err := qb.Select("count(*)").From(table).
		Where(sq.Eq{"company_id": companyID, "customer_id": customerID}).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "invoice", uuid.Nil)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "invoice", uuid.Nil)
	}

	return count, nil
}

// CreateItem inserts a new invoice item and returns the persisted row.
func (r *Repo) CreateItem(ctx context.Context, item *domain.InvoiceItem) (*domain.InvoiceItem, error) {
	query, args, err := qb.Insert(itemsTable).
		Columns("id", "invoice_id", "description", "quantity", "unit_price",
			"tax_rate", "vat_rate", "amount", "position").
		Values(item.ID, item.InvoiceID, item.Description, item.Quantity, item.UnitPrice,
			item.TaxRate, item.VATRate, item.Amount, item.Position).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice item", item.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "invoice item", item.ID)
	}

	return created, nil
}

// GetItem returns an invoice item by primary key, scoped to the company
// through its invoice.
func (r *Repo) GetItem(ctx context.Context, companyID, id uuid.UUID) (*domain.InvoiceItem, error) {
	query, args, err := qb.Select(prefixed("it", itemColumns)...).
		From(itemsTable + " it").
		Join("invoices i ON i.id = it.invoice_id").
		Where(sq.Eq{"it.id": id, "i.company_id": companyID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice item", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "invoice item", id)
	}

	return item, nil
}

// ListItems returns the items of an invoice in position order.
func (r *Repo) ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	query, args, err := qb.Select(itemColumns...).From(itemsTable).
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("position ASC", "created_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice item", uuid.Nil)
	}

	return r.queryItems(ctx, query, args)
}

// GetItemsByInvoiceIDs returns all items of the given invoices in one
// query, for batch loading.
func (r *Repo) GetItemsByInvoiceIDs(ctx context.Context, invoiceIDs []uuid.UUID) ([]domain.InvoiceItem, error) {
	if len(invoiceIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select(itemColumns...).From(itemsTable).
		Where(sq.Eq{"invoice_id": invoiceIDs}).
		OrderBy("position ASC", "created_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice item", uuid.Nil)
	}

	return r.queryItems(ctx, query, args)
}

// NextItemPosition returns the position for a newly appended item.
func (r *Repo) NextItemPosition(ctx context.Context, invoiceID uuid.UUID) (int, error) {
	const query = `SELECT COALESCE(MAX(position), 0) + 1 FROM invoice_items WHERE invoice_id = $1`

	var position int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, invoiceID).Scan(&position); err != nil {
		return 0, postgres.MapError(err, "invoice item", uuid.Nil)
	}

	return position, nil
}

// UpdateItem applies partial-update params plus the recomputed line
// amount, and returns the updated row.
func (r *Repo) UpdateItem(ctx context.Context, id uuid.UUID, params domain.InvoiceItemUpdateParams, amount decimal.Decimal) (*domain.InvoiceItem, error) {
	update := qb.Update(itemsTable).
		Set("amount", amount).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.Quantity != nil {
		update = update.Set("quantity", *params.Quantity)
	}
	if params.UnitPrice != nil {
		update = update.Set("unit_price", *params.UnitPrice)
	}
	if params.TaxRate != nil {
		update = update.Set("tax_rate", *params.TaxRate)
	}
	if params.VATRate != nil {
		update = update.Set("vat_rate", *params.VATRate)
	}

	query, args, err := update.Suffix("RETURNING " + strings.Join(itemColumns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice item", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "invoice item", id)
	}

	return item, nil
}

// DeleteItem removes an invoice item.
func (r *Repo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Delete(itemsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return postgres.MapError(err, "invoice item", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "invoice item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CreatePayment records a payment against an invoice.
func (r *Repo) CreatePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query, args, err := qb.Insert(paymentsTable).
		Columns("id", "invoice_id", "amount", "date", "method", "reference", "notes").
		Values(p.ID, p.InvoiceID, p.Amount, p.Date, p.Method, p.Reference, p.Notes).
		Suffix("RETURNING " + strings.Join(paymentColumns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "payment", p.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanPayment(row)
	if err != nil {
		return nil, postgres.MapError(err, "payment", p.ID)
	}

	return created, nil
}

// ListPayments returns the payments of an invoice in date order.
func (r *Repo) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error) {
	query, args, err := qb.Select(paymentColumns...).From(paymentsTable).
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("date ASC", "created_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "payment", uuid.Nil)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "payment", uuid.Nil)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, postgres.MapError(err, "payment", uuid.Nil)
		}
		payments = append(payments, *p)
	}

	return payments, rows.Err()
}

// SumPayments returns the total amount paid against an invoice.
func (r *Repo) SumPayments(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1`

	var sum decimal.Decimal
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, invoiceID).Scan(&sum); err != nil {
		return decimal.Zero, postgres.MapError(err, "payment", uuid.Nil)
	}

	return sum, nil
}

// AddHistory appends an entry to the invoice audit trail.
func (r *Repo) AddHistory(ctx context.Context, e *domain.InvoiceHistoryEntry) error {
	query, args, err := qb.Insert(historyTable).
		Columns("id", "invoice_id", "user_id", "action", "field", "item_id",
			"old_value", "new_value").
		Values(e.ID, e.InvoiceID, e.UserID, e.Action, e.Field, e.ItemID,
			e.OldValue, e.NewValue).ToSql()
	if err != nil {
		return postgres.MapError(err, "invoice history", e.ID)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "invoice history", e.ID)
	}

	return nil
}

// ListHistory returns the invoice audit trail, newest first.
func (r *Repo) ListHistory(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceHistoryEntry, error) {
	query, args, err := qb.Select(historyColumns...).From(historyTable).
		Where(sq.Eq{"invoice_id": invoiceID}).
		OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "invoice history", uuid.Nil)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "invoice history", uuid.Nil)
	}
	defer rows.Close()

	var entries []domain.InvoiceHistoryEntry
	for rows.Next() {
		e, err := scanHistory(rows)
		if err != nil {
			return nil, postgres.MapError(err, "invoice history", uuid.Nil)
		}
		entries = append(entries, *e)
	}

	return entries, rows.Err()
}

func (r *Repo) queryItems(ctx context.Context, query string, args []any) ([]domain.InvoiceItem, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "invoice item", uuid.Nil)
	}
	defer rows.Close()

	var items []domain.InvoiceItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, postgres.MapError(err, "invoice item", uuid.Nil)
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.Number, &inv.Status, &inv.IssueDate,
		&inv.DueDate, &inv.Currency, &inv.Subtotal, &inv.TaxAmount, &inv.VATAmount, &inv.Total,
		&inv.Notes, &inv.Terms, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func scanItem(row rowScanner) (*domain.InvoiceItem, error) {
	var item domain.InvoiceItem
	err := row.Scan(
		&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPrice,
		&item.TaxRate, &item.VATRate, &item.Amount, &item.Position, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.InvoiceID, &p.Amount, &p.Date, &p.Method, &p.Reference, &p.Notes,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanHistory(row rowScanner) (*domain.InvoiceHistoryEntry, error) {
	var e domain.InvoiceHistoryEntry
	err := row.Scan(
		&e.ID, &e.InvoiceID, &e.UserID, &e.Action, &e.Field, &e.ItemID,
		&e.OldValue, &e.NewValue, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
