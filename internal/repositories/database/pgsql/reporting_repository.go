package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// PeriodTotals sums base-currency income and expenses over [from, to).
// The sums are over stored amount_base snapshots, so they never change
// retroactively when rates are updated.
func (r *PgxReportingRepository) PeriodTotals(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount_base) FROM income
				WHERE user_id = $1 AND date >= $2 AND date < $3), 0),
			COALESCE((SELECT SUM(amount_base) FROM expenses
				WHERE user_id = $1 AND date >= $2 AND date < $3), 0);
	`
	var income, expenses decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID, from, to).Scan(&income, &expenses); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to query period totals: %w", err)
	}
	return income, expenses, nil
}

// SpentByCategory sums base-currency expense spend per category for one
// month ("YYYY-MM").
func (r *PgxReportingRepository) SpentByCategory(ctx context.Context, userID, month string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT category_id, COALESCE(SUM(amount_base), 0)
		FROM expenses
		WHERE user_id = $1 AND to_char(date, 'YYYY-MM') = $2
		GROUP BY category_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query spend by category for month %s: %w", month, err)
	}
	defer rows.Close()

	spent := make(map[string]decimal.Decimal)
	for rows.Next() {
		var categoryID string
		var total decimal.Decimal
		if err := rows.Scan(&categoryID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category spend row: %w", err)
		}
		spent[categoryID] = total
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category spend rows: %w", rows.Err())
	}
	return spent, nil
}

// SumInvestmentBase sums the user's investment holdings at base-currency
// cost basis: buys add, sells subtract.
func (r *PgxReportingRepository) SumInvestmentBase(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN action = 'sell' THEN -amount_base ELSE amount_base END), 0)
		FROM investments
		WHERE user_id = $1;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum investment base amounts: %w", err)
	}
	return total, nil
}

// ListActiveAccounts retrieves the user's active accounts with their
// current balances, for net worth valuation.
func (r *PgxReportingRepository) ListActiveAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan active account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating active account rows: %w", rows.Err())
	}
	return accounts, nil
}

// TopExpenses retrieves the month's largest expenses by base amount.
func (r *PgxReportingRepository) TopExpenses(ctx context.Context, userID, month string, limit int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1 AND to_char(date, 'YYYY-MM') = $2
		ORDER BY amount_base DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, month, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top expenses for month %s: %w", month, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan top expense row: %w", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating top expense rows: %w", rows.Err())
	}
	return expenses, nil
}
