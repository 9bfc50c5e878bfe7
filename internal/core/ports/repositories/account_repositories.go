package repositories

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepository persists accounts and their running balances.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string, limit, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, userID, accountID string, at time.Time) error
}

// AccountTxRepository exposes the balance-maintenance primitives used by
// the ledger repositories inside an open database transaction: lock the
// account rows, then apply native-currency deltas. Keeping the lock and
// the write in the same transaction as the transaction-row insert is what
// makes a recorded transaction and its balance adjustment atomic.
type AccountTxRepository interface {
	FindAccountsForUpdate(ctx context.Context, tx pgx.Tx, userID string, accountIDs []string) (map[string]domain.Account, error)
	ApplyBalanceDeltas(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, at time.Time) error
}

// AccountRepositoryFacade is the full account persistence surface.
type AccountRepositoryFacade interface {
	AccountRepository
	AccountTxRepository
}
