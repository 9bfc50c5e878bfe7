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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const incomeColumns = `income_id, user_id, date, amount, currency, amount_base, rate_assumed, category_id, account_id, source, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxIncomeRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTxRepository
}

func newPgxIncomeRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTxRepository) portsrepo.IncomeRepository {
	return &PgxIncomeRepository{BaseRepository{Pool: pool}, accountRepo}
}

var _ portsrepo.IncomeRepository = (*PgxIncomeRepository)(nil)

func scanIncome(row pgx.Row) (models.Income, error) {
	var m models.Income
	err := row.Scan(
		&m.IncomeID,
		&m.UserID,
		&m.Date,
		&m.Amount,
		&m.CurrencyCode,
		&m.AmountBase,
		&m.RateAssumed,
		&m.CategoryID,
		&m.AccountID,
		&m.Source,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveIncome inserts the income row and credits the receiving account
// in one transaction, with the same locking as SaveExpense.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income, nativeDelta decimal.Decimal) error {
	m := mapping.ToModelIncome(income)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := r.accountRepo.FindAccountsForUpdate(ctx, tx, m.UserID, []string{m.AccountID}); err != nil {
		return fmt.Errorf("failed to lock account for income %s: %w", m.IncomeID, err)
	}

	query := `
		INSERT INTO income (` + incomeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		m.IncomeID,
		m.UserID,
		m.Date,
		m.Amount,
		m.CurrencyCode,
		m.AmountBase,
		m.RateAssumed,
		m.CategoryID,
		m.AccountID,
		m.Source,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: income with ID %s already exists", apperrors.ErrDuplicate, m.IncomeID)
		}
		return fmt.Errorf("failed to insert income %s: %w", m.IncomeID, err)
	}

	deltas := map[string]decimal.Decimal{m.AccountID: nativeDelta}
	if err := r.accountRepo.ApplyBalanceDeltas(ctx, tx, deltas, m.UserID, m.LastUpdatedAt); err != nil {
		return fmt.Errorf("failed to apply balance delta for income %s: %w", m.IncomeID, err)
	}

	return r.Commit(ctx, tx)
}

// ListIncome retrieves the user's income records, optionally filtered
// to one month, newest first.
func (r *PgxIncomeRepository) ListIncome(ctx context.Context, userID string, month string) ([]domain.Income, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM income
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	if month != "" {
		query += " AND to_char(date, 'YYYY-MM') = $2"
		args = append(args, month)
	}
	query += " ORDER BY date DESC, created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query income for user %s: %w", userID, err)
	}
	defer rows.Close()

	incomes := []domain.Income{}
	for rows.Next() {
		m, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		incomes = append(incomes, mapping.ToDomainIncome(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", rows.Err())
	}
	return incomes, nil
}
