package pgsql

import (
	"context"
	"fmt"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/models"
	"github.com/fintrackio/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepository = (*PgxExchangeRateRepository)(nil)

// ListRates retrieves the whole flat rate table.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT currency_code, rate_to_base, updated_at, updated_by
		FROM exchange_rates
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		var m models.ExchangeRate
		if err := rows.Scan(&m.CurrencyCode, &m.RateToBase, &m.UpdatedAt, &m.UpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate row: %w", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating exchange rate rows: %w", rows.Err())
	}
	return rates, nil
}

// UpsertRate inserts or replaces the rate for one currency code.
func (r *PgxExchangeRateRepository) UpsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (currency_code, rate_to_base, updated_at, updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (currency_code)
		DO UPDATE SET rate_to_base = EXCLUDED.rate_to_base,
		              updated_at = EXCLUDED.updated_at,
		              updated_by = EXCLUDED.updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, string(rate.CurrencyCode), rate.RateToBase, rate.UpdatedAt, rate.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate for %s: %w", rate.CurrencyCode, err)
	}
	return nil
}
