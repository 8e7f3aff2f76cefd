// Package lead implements the Lead, Opportunity and LeadActivity
// repositories using PostgreSQL.
package lead

import (
	"context"
	"encoding/json"
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
	table              = "leads"
	opportunitiesTable = "opportunities"
	activitiesTable    = "lead_activities"
)

var columns = []string{
	"id", "company_id", "name", "email", "phone", "company_name", "source",
	"status", "estimated_value", "assigned_to", "converted_to_customer_id",
	"converted_at", "custom_fields", "created_at", "updated_at",
}

var opportunityColumns = []string{
	"id", "lead_id", "name", "stage", "amount", "probability",
	"expected_close_date", "created_at", "updated_at",
}

var activityColumns = []string{
	"id", "lead_id", "user_id", "type", "body", "created_at",
}

// Repo provides lead pipeline persistence backed by PostgreSQL.
// Opportunities and activities are tenant-scoped through their lead.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lead repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new lead and returns the persisted row.
func (r *Repo) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	customFields, err := marshalCustomFields(l.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("marshal custom fields: %w", err)
	}

	query, args, err := qb.Insert(table).
		Columns("id", "company_id", "name", "email", "phone", "company_name",
			"source", "status", "estimated_value", "assigned_to", "custom_fields").
		Values(l.ID, l.CompanyID, l.Name, l.Email, l.Phone, l.CompanyName,
			l.Source, l.Status, nullDecimal(l.EstimatedValue), l.AssignedTo, customFields).
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lead", l.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanLead(row)
	if err != nil {
		return nil, postgres.MapError(err, "lead", l.ID)
	}

	return created, nil
}

// GetByID returns a lead by primary key within the company.
func (r *Repo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Lead, error) {
	query, args, err := qb.Select(columns...).From(table).
		Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	l, err := scanLead(row)
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	return l, nil
}

// ListPage returns one page of leads using keyset pagination over
// (created_at, id) descending.
func (r *Repo) ListPage(ctx context.Context, companyID uuid.UUID, filter domain.LeadFilter) (domain.Page[domain.Lead], error) {
	var page domain.Page[domain.Lead]

	sel := qb.Select(columns...).From(table).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.First + 1))
	if filter.Status != nil {
		sel = sel.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.After != nil {
		sel = sel.Where(sq.Expr("(created_at, id) < (?, ?)", filter.After.CreatedAt, filter.After.ID))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return page, postgres.MapError(err, "lead", uuid.Nil)
	}

	leads, err := r.queryLeads(ctx, query, args)
	if err != nil {
		return page, err
	}

	if len(leads) > filter.First {
		page.HasNextPage = true
		leads = leads[:filter.First]
	}
	page.Items = leads
	if n := len(leads); n > 0 {
		last := leads[n-1]
		page.EndCursor = &domain.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return page, nil
}

// Update applies partial-update params and returns the updated lead.
func (r *Repo) Update(ctx context.Context, companyID, id uuid.UUID, params domain.LeadUpdateParams) (*domain.Lead, error) {
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
	if params.CompanyName != nil {
		update = update.Set("company_name", *params.CompanyName)
	}
	if params.Source != nil {
		update = update.Set("source", *params.Source)
	}
	if params.Status != nil {
		update = update.Set("status", *params.Status)
	}
	if params.EstimatedValue != nil {
		update = update.Set("estimated_value", *params.EstimatedValue)
	}
	if params.AssignedTo != nil {
		update = update.Set("assigned_to", *params.AssignedTo)
	}
	if params.CustomFields != nil {
		customFields, err := marshalCustomFields(*params.CustomFields)
		if err != nil {
			return nil, fmt.Errorf("marshal custom fields: %w", err)
		}
		update = update.Set("custom_fields", customFields)
	}

	query, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	l, err := scanLead(row)
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	return l, nil
}

// MarkConverted stamps the lead with the customer it was converted into.
// The guard on converted_to_customer_id keeps the conversion one-shot
// under concurrency; an already-converted lead yields ErrNotFound.
func (r *Repo) MarkConverted(ctx context.Context, companyID, id, customerID uuid.UUID) (*domain.Lead, error) {
	query, args, err := qb.Update(table).
		Set("status", domain.LeadConverted).
		Set("converted_to_customer_id", customerID).
		Set("converted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "company_id": companyID}).
		Where("converted_to_customer_id IS NULL").
		Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	l, err := scanLead(row)
	if err != nil {
		return nil, postgres.MapError(err, "lead", id)
	}

	return l, nil
}

// Delete removes a lead from the company. Opportunities and activities cascade.
func (r *Repo) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id, "company_id": companyID}).ToSql()
	if err != nil {
		return postgres.MapError(err, "lead", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "lead", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CreateOpportunity inserts a new opportunity and returns the persisted row.
func (r *Repo) CreateOpportunity(ctx context.Context, o *domain.Opportunity) (*domain.Opportunity, error) {
	query, args, err := qb.Insert(opportunitiesTable).
		Columns("id", "lead_id", "name", "stage", "amount", "probability", "expected_close_date").
		Values(o.ID, o.LeadID, o.Name, o.Stage, o.Amount, o.Probability, o.ExpectedCloseDate).
		Suffix("RETURNING " + strings.Join(opportunityColumns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "opportunity", o.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanOpportunity(row)
	if err != nil {
		return nil, postgres.MapError(err, "opportunity", o.ID)
	}

	return created, nil
}

// GetOpportunity returns an opportunity by primary key, scoped to the
// company through its lead.
func (r *Repo) GetOpportunity(ctx context.Context, companyID, id uuid.UUID) (*domain.Opportunity, error) {
	query, args, err := qb.Select(prefixed("o", opportunityColumns)...).
		From(opportunitiesTable + " o").
		Join("leads l ON l.id = o.lead_id").
		Where(sq.Eq{"o.id": id, "l.company_id": companyID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "opportunity", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	o, err := scanOpportunity(row)
	if err != nil {
		return nil, postgres.MapError(err, "opportunity", id)
	}

	return o, nil
}

// GetOpportunitiesByLeadIDs returns all opportunities of the given leads
// in one query, for batch loading.
func (r *Repo) GetOpportunitiesByLeadIDs(ctx context.Context, leadIDs []uuid.UUID) ([]domain.Opportunity, error) {
	if len(leadIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select(opportunityColumns...).From(opportunitiesTable).
		Where(sq.Eq{"lead_id": leadIDs}).
		OrderBy("created_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "opportunity", uuid.Nil)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "opportunity", uuid.Nil)
	}
	defer rows.Close()

	var opportunities []domain.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, postgres.MapError(err, "opportunity", uuid.Nil)
		}
		opportunities = append(opportunities, *o)
	}

	return opportunities, rows.Err()
}

// UpdateOpportunity applies partial-update params and returns the updated row.
func (r *Repo) UpdateOpportunity(ctx context.Context, id uuid.UUID, params domain.OpportunityUpdateParams) (*domain.Opportunity, error) {
	update := qb.Update(opportunitiesTable).Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Stage != nil {
		update = update.Set("stage", *params.Stage)
	}
	if params.Amount != nil {
		update = update.Set("amount", *params.Amount)
	}
	if params.Probability != nil {
		update = update.Set("probability", *params.Probability)
	}
	if params.ExpectedCloseDate != nil {
		update = update.Set("expected_close_date", *params.ExpectedCloseDate)
	}

	query, args, err := update.Suffix("RETURNING " + strings.Join(opportunityColumns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "opportunity", id)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	o, err := scanOpportunity(row)
	if err != nil {
		return nil, postgres.MapError(err, "opportunity", id)
	}

	return o, nil
}

// DeleteOpportunity removes an opportunity.
func (r *Repo) DeleteOpportunity(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Delete(opportunitiesTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return postgres.MapError(err, "opportunity", id)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "opportunity", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("opportunity %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// AddActivity appends an entry to a lead's activity log.
func (r *Repo) AddActivity(ctx context.Context, a *domain.LeadActivity) (*domain.LeadActivity, error) {
	query, args, err := qb.Insert(activitiesTable).
		Columns("id", "lead_id", "user_id", "type", "body").
		Values(a.ID, a.LeadID, a.UserID, a.Type, a.Body).
		Suffix("RETURNING " + strings.Join(activityColumns, ", ")).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanActivity(row)
	if err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}

	return created, nil
}

// ListActivities returns a lead's activity log, newest first.
func (r *Repo) ListActivities(ctx context.Context, leadID uuid.UUID) ([]domain.LeadActivity, error) {
	query, args, err := qb.Select(activityColumns...).From(activitiesTable).
		Where(sq.Eq{"lead_id": leadID}).
		OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "activity", uuid.Nil)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "activity", uuid.Nil)
	}
	defer rows.Close()

	var activities []domain.LeadActivity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, postgres.MapError(err, "activity", uuid.Nil)
		}
		activities = append(activities, *a)
	}

	return activities, rows.Err()
}

func (r *Repo) queryLeads(ctx context.Context, query string, args []any) ([]domain.Lead, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "lead", uuid.Nil)
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, postgres.MapError(err, "lead", uuid.Nil)
		}
		leads = append(leads, *l)
	}

	return leads, rows.Err()
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func marshalCustomFields(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	var (
		l            domain.Lead
		estimated    decimal.NullDecimal
		customFields []byte
	)
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.Name, &l.Email, &l.Phone, &l.CompanyName, &l.Source,
		&l.Status, &estimated, &l.AssignedTo, &l.ConvertedToCustomerID,
		&l.ConvertedAt, &customFields, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if estimated.Valid {
		l.EstimatedValue = &estimated.Decimal
	}
	if len(customFields) > 0 {
		if err := json.Unmarshal(customFields, &l.CustomFields); err != nil {
			return nil, fmt.Errorf("unmarshal custom fields: %w", err)
		}
	}
	return &l, nil
}

func scanOpportunity(row rowScanner) (*domain.Opportunity, error) {
	var o domain.Opportunity
	err := row.Scan(
		&o.ID, &o.LeadID, &o.Name, &o.Stage, &o.Amount, &o.Probability,
		&o.ExpectedCloseDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanActivity(row rowScanner) (*domain.LeadActivity, error) {
	var a domain.LeadActivity
	err := row.Scan(
		&a.ID, &a.LeadID, &a.UserID, &a.Type, &a.Body, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
