package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/tenants"
	"leadscore_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leadNotFoundMessage = "lead not found"

const leadColumns = `id, tenant_id, first_name, last_name, email, company,
	budget, company_size, industry, urgency, score, created_at, updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new lead with its precomputed score.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		INSERT INTO leads (tenant_id, first_name, last_name, email, company,
			budget, company_size, industry, urgency, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+leadColumns+`
	`,
		params.TenantID, params.FirstName, params.LastName, params.Email, params.Company,
		params.Budget, params.CompanySize, params.Industry, params.Urgency, params.Score,
	).Scan(scanTargets(&lead)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return Lead{}, apperr.Validation("unknown tenant")
		}
		return Lead{}, fmt.Errorf("create lead: %w", err)
	}
	return lead, nil
}

// GetByID retrieves a lead visible in the given scope.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID, scope tenants.Scope) (Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	args := []interface{}{id}
	if scope.IsTenant() {
		query += ` AND tenant_id = $2`
		args = append(args, scope.TenantID)
	}

	var lead Lead
	err := r.pool.QueryRow(ctx, query, args...).Scan(scanTargets(&lead)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("get lead by id: %w", err)
	}
	return lead, nil
}

// Update writes the complete merged state back, score included, in a single
// statement.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		UPDATE leads
		SET first_name = $2, last_name = $3, email = $4, company = $5,
			budget = $6, company_size = $7, industry = $8, urgency = $9,
			score = $10, updated_at = now()
		WHERE id = $1
		RETURNING `+leadColumns+`
	`,
		params.ID, params.FirstName, params.LastName, params.Email, params.Company,
		params.Budget, params.CompanySize, params.Industry, params.Urgency, params.Score,
	).Scan(scanTargets(&lead)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("update lead: %w", err)
	}
	return lead, nil
}

// Delete removes a lead visible in the given scope.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID, scope tenants.Scope) error {
	query := `DELETE FROM leads WHERE id = $1`
	args := []interface{}{id}
	if scope.IsTenant() {
		query += ` AND tenant_id = $2`
		args = append(args, scope.TenantID)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(leadNotFoundMessage)
	}
	return nil
}

// List returns all leads matching the filter in default ordering.
func (r *Repo) List(ctx context.Context, filter ListFilter) ([]Lead, error) {
	return r.query(ctx, filter, 0)
}

// Top returns the first limit leads matching the filter in default ordering.
func (r *Repo) Top(ctx context.Context, filter ListFilter, limit int) ([]Lead, error) {
	return r.query(ctx, filter, limit)
}

func (r *Repo) query(ctx context.Context, filter ListFilter, limit int) ([]Lead, error) {
	whereClause, args, argIdx := buildLeadFilter(filter)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leads
		WHERE %s
		ORDER BY score DESC, created_at DESC
	`, leadColumns, whereClause)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(scanTargets(&lead)...); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return leads, nil
}

// Stats computes count, average score, and high-score count over the same
// filtered set a List call with this filter would return.
func (r *Repo) Stats(ctx context.Context, filter ListFilter) (Stats, error) {
	whereClause, args, argIdx := buildLeadFilter(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(*),
			COALESCE(AVG(score), 0),
			COUNT(*) FILTER (WHERE score >= $%d)
		FROM leads
		WHERE %s
	`, argIdx, whereClause)
	args = append(args, scoring.HighScoreThreshold)

	var stats Stats
	err := r.pool.QueryRow(ctx, query, args...).Scan(&stats.TotalLeads, &stats.AvgScore, &stats.HighScoreLeads)
	if err != nil {
		return Stats{}, fmt.Errorf("lead stats: %w", err)
	}
	return stats, nil
}

// buildLeadFilter compiles the filter into a WHERE clause. The tenant clause
// is present only in tenant scope; the global view has none.
func buildLeadFilter(filter ListFilter) (string, []interface{}, int) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Scope.IsTenant() {
		whereClauses = append(whereClauses, fmt.Sprintf("tenant_id = $%d", argIdx))
		args = append(args, filter.Scope.TenantID)
		argIdx++
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR company ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx,
		))
		args = append(args, pattern)
		argIdx++
	}
	if filter.Industry != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("industry = $%d", argIdx))
		args = append(args, *filter.Industry)
		argIdx++
	}
	if filter.Urgency != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("urgency = $%d", argIdx))
		args = append(args, *filter.Urgency)
		argIdx++
	}
	if filter.MinScore != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("score >= $%d", argIdx))
		args = append(args, *filter.MinScore)
		argIdx++
	}

	return strings.Join(whereClauses, " AND "), args, argIdx
}

func scanTargets(lead *Lead) []interface{} {
	return []interface{}{
		&lead.ID, &lead.TenantID, &lead.FirstName, &lead.LastName, &lead.Email, &lead.Company,
		&lead.Budget, &lead.CompanySize, &lead.Industry, &lead.Urgency, &lead.Score,
		&lead.CreatedAt, &lead.UpdatedAt,
	}
}
