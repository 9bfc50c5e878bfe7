package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/models"
	"github.com/fintrackio/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `budget_id, user_id, category_id, month, budget_amount, created_at, created_by, last_updated_at, last_updated_by`

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.CategoryID,
		&m.Month,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// UpsertBudget inserts the budget or overwrites the amount of the
// existing row for the same (user, category, month). The persisted row
// is returned so the caller sees the surviving budget_id.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	m := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, category_id, month)
		DO UPDATE SET budget_amount = EXCLUDED.budget_amount,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + budgetColumns + `;
	`
	saved, err := scanBudget(r.Pool.QueryRow(ctx, query,
		m.BudgetID,
		m.UserID,
		m.CategoryID,
		m.Month,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget for category %s month %s: %w", m.CategoryID, m.Month, err)
	}
	d := mapping.ToDomainBudget(saved)
	return &d, nil
}

// FindBudget retrieves the budget for one (category, month), if set.
func (r *PgxBudgetRepository) FindBudget(ctx context.Context, userID, categoryID, month string) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND category_id = $2 AND month = $3;
	`
	m, err := scanBudget(r.Pool.QueryRow(ctx, query, userID, categoryID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget for category %s month %s: %w", categoryID, month, err)
	}
	d := mapping.ToDomainBudget(m)
	return &d, nil
}

// ListBudgetsByMonth retrieves every budget the user set for a month.
func (r *PgxBudgetRepository) ListBudgetsByMonth(ctx context.Context, userID, month string) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND month = $2
		ORDER BY category_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for month %s: %w", month, err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, mapping.ToDomainBudget(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}
	return budgets, nil
}
