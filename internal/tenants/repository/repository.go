package repository

import (
	"context"
	"errors"
	"fmt"

	"leadscore_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tenantNotFoundMessage = "tenant not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tenants repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves a tenant by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Tenant, error) {
	var t Tenant
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, slug, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Tenant{}, apperr.NotFound(tenantNotFoundMessage)
		}
		return Tenant{}, fmt.Errorf("get tenant by id: %w", err)
	}
	return t, nil
}

// List returns tenants ordered by name, optionally filtered by a
// case-insensitive substring match on the name.
func (r *Repo) List(ctx context.Context, params ListParams) ([]Tenant, error) {
	query := `
		SELECT id, name, slug, created_at, updated_at
		FROM tenants
	`
	args := []interface{}{}
	if params.Name != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+params.Name+"%")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	items := make([]Tenant, 0)
	for rows.Next() {
		var t Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		items = append(items, t)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}

// Create inserts a new tenant. A duplicate slug surfaces as a conflict.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Tenant, error) {
	var t Tenant
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tenants (name, slug)
		VALUES ($1, $2)
		RETURNING id, name, slug, created_at, updated_at
	`, params.Name, params.Slug).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Tenant{}, apperr.Conflict("a tenant with this slug already exists")
		}
		return Tenant{}, fmt.Errorf("create tenant: %w", err)
	}
	return t, nil
}

// Update mutates the provided fields and bumps updated_at.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Tenant, error) {
	var t Tenant
	err := r.pool.QueryRow(ctx, `
		UPDATE tenants
		SET name = COALESCE($2, name),
			slug = COALESCE($3, slug),
			updated_at = now()
		WHERE id = $1
		RETURNING id, name, slug, created_at, updated_at
	`, params.ID, params.Name, params.Slug).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Tenant{}, apperr.NotFound(tenantNotFoundMessage)
		}
		if isUniqueViolation(err) {
			return Tenant{}, apperr.Conflict("a tenant with this slug already exists")
		}
		return Tenant{}, fmt.Errorf("update tenant: %w", err)
	}
	return t, nil
}

// Delete removes the tenant. Owned leads go with it via the FK cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(tenantNotFoundMessage)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
