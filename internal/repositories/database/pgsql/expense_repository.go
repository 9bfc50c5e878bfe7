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
	"github.com/fintrackio/fintrack_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const expenseColumns = `expense_id, user_id, date, amount, currency, amount_base, rate_assumed, category_id, account_id, description, payment_method, vendor, source, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTxRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTxRepository) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}, accountRepo}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.Date,
		&m.Amount,
		&m.CurrencyCode,
		&m.AmountBase,
		&m.RateAssumed,
		&m.CategoryID,
		&m.AccountID,
		&m.Description,
		&m.PaymentMethod,
		&m.Vendor,
		&m.Source,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveExpense inserts the expense row and applies the native-currency
// delta to the paying account in one transaction. The account row is
// locked first; if it is missing the transaction rolls back and neither
// the expense nor any balance change is persisted.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense, nativeDelta decimal.Decimal) error {
	m := mapping.ToModelExpense(expense)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := r.accountRepo.FindAccountsForUpdate(ctx, tx, m.UserID, []string{m.AccountID}); err != nil {
		return fmt.Errorf("failed to lock account for expense %s: %w", m.ExpenseID, err)
	}

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.Date,
		m.Amount,
		m.CurrencyCode,
		m.AmountBase,
		m.RateAssumed,
		m.CategoryID,
		m.AccountID,
		m.Description,
		m.PaymentMethod,
		m.Vendor,
		m.Source,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, m.ExpenseID)
		}
		return fmt.Errorf("failed to insert expense %s: %w", m.ExpenseID, err)
	}

	deltas := map[string]decimal.Decimal{m.AccountID: nativeDelta}
	if err := r.accountRepo.ApplyBalanceDeltas(ctx, tx, deltas, m.UserID, m.LastUpdatedAt); err != nil {
		return fmt.Errorf("failed to apply balance delta for expense %s: %w", m.ExpenseID, err)
	}

	return r.Commit(ctx, tx)
}

// ListExpenses retrieves one keyset-paginated page of the user's
// expenses ordered by (date, created_at) descending.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, userID string, params portsrepo.ListExpensesParams) (*portsrepo.ListExpensesResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	argPos := 2

	if params.Month != "" {
		query += fmt.Sprintf(" AND to_char(date, 'YYYY-MM') = $%d", argPos)
		args = append(args, params.Month)
		argPos++
	}
	if params.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", argPos)
		args = append(args, params.CategoryID)
		argPos++
	}
	if params.NextToken != "" {
		date, createdAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (date, created_at) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, date, createdAt)
		argPos++
		argPos++
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for user %s: %w", userID, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	result := &portsrepo.ListExpensesResult{Expenses: expenses}
	if len(expenses) > limit {
		result.Expenses = expenses[:limit]
		last := result.Expenses[limit-1]
		result.NextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return result, nil
}
