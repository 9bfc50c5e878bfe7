package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

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

const transferColumns = `transfer_id, user_id, date, amount, source_account_id, destination_account_id, destination_amount, exchange_rate, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransferRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTxRepository
}

func newPgxTransferRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTxRepository) portsrepo.TransferRepository {
	return &PgxTransferRepository{BaseRepository{Pool: pool}, accountRepo}
}

var _ portsrepo.TransferRepository = (*PgxTransferRepository)(nil)

func scanTransfer(row pgx.Row) (models.Transfer, error) {
	var m models.Transfer
	err := row.Scan(
		&m.TransferID,
		&m.UserID,
		&m.Date,
		&m.Amount,
		&m.SourceAccountID,
		&m.DestinationAccountID,
		&m.DestinationAmount,
		&m.ExchangeRate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransfer inserts the transfer row and moves money between the two
// accounts in one transaction. Both account rows are locked before any
// write; the source loses Amount and the destination gains
// DestinationAmount, each in its own native currency.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	m := mapping.ToModelTransfer(transfer)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	accountIDs := []string{m.SourceAccountID, m.DestinationAccountID}
	if _, err := r.accountRepo.FindAccountsForUpdate(ctx, tx, m.UserID, accountIDs); err != nil {
		return fmt.Errorf("failed to lock accounts for transfer %s: %w", m.TransferID, err)
	}

	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.TransferID,
		m.UserID,
		m.Date,
		m.Amount,
		m.SourceAccountID,
		m.DestinationAccountID,
		m.DestinationAmount,
		m.ExchangeRate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transfer with ID %s already exists", apperrors.ErrDuplicate, m.TransferID)
		}
		return fmt.Errorf("failed to insert transfer %s: %w", m.TransferID, err)
	}

	deltas := map[string]decimal.Decimal{
		m.SourceAccountID:      m.Amount.Neg(),
		m.DestinationAccountID: m.DestinationAmount,
	}
	if err := r.accountRepo.ApplyBalanceDeltas(ctx, tx, deltas, m.UserID, m.LastUpdatedAt); err != nil {
		return fmt.Errorf("failed to apply balance deltas for transfer %s: %w", m.TransferID, err)
	}

	return r.Commit(ctx, tx)
}

// ListTransfers retrieves the user's transfers in [from, to), newest
// first. Zero time bounds mean unbounded.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context, userID string, from, to time.Time) ([]domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	argPos := 2
	if !from.IsZero() {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, from)
		argPos++
	}
	if !to.IsZero() {
		query += fmt.Sprintf(" AND date < $%d", argPos)
		args = append(args, to)
	}
	query += " ORDER BY date DESC, created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers for user %s: %w", userID, err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		m, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, mapping.ToDomainTransfer(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", rows.Err())
	}
	return transfers, nil
}
