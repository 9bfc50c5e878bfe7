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
)

const investmentColumns = `investment_id, user_id, date, amount, currency, amount_base, rate_assumed, instrument_name, investment_type, action, account_id, category_id, units, price_per_unit, source, created_at, created_by, last_updated_at, last_updated_by`

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepository = (*PgxInvestmentRepository)(nil)

func scanInvestment(row pgx.Row) (models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID,
		&m.UserID,
		&m.Date,
		&m.Amount,
		&m.CurrencyCode,
		&m.AmountBase,
		&m.RateAssumed,
		&m.InstrumentName,
		&m.InvestmentType,
		&m.Action,
		&m.AccountID,
		&m.CategoryID,
		&m.Units,
		&m.PricePerUnit,
		&m.Source,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveInvestment inserts an investment record. Investments do not touch
// account balances, so no locking is needed here.
func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	m := mapping.ToModelInvestment(investment)

	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvestmentID,
		m.UserID,
		m.Date,
		m.Amount,
		m.CurrencyCode,
		m.AmountBase,
		m.RateAssumed,
		m.InstrumentName,
		m.InvestmentType,
		m.Action,
		m.AccountID,
		m.CategoryID,
		m.Units,
		m.PricePerUnit,
		m.Source,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: investment with ID %s already exists", apperrors.ErrDuplicate, m.InvestmentID)
		}
		return fmt.Errorf("failed to insert investment %s: %w", m.InvestmentID, err)
	}
	return nil
}

// ListInvestments retrieves all of the user's investments, newest first.
func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investments
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments for user %s: %w", userID, err)
	}
	defer rows.Close()

	investments := []domain.Investment{}
	for rows.Next() {
		m, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		investments = append(investments, mapping.ToDomainInvestment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", rows.Err())
	}
	return investments, nil
}
