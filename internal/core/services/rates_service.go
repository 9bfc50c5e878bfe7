package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/fintrackio/fintrack_backend/internal/utils/fx"
	"github.com/shopspring/decimal"
)

// rateCacheTTL bounds how stale the in-memory rate table may get. Rates
// change rarely (manual upserts), so a short TTL is plenty.
const rateCacheTTL = time.Minute

// RatesService serves the flat rate table, caching it in memory, and
// resolves display contexts against it.
type RatesService struct {
	rateRepo portsrepo.ExchangeRateRepository
	userRepo portsrepo.UserRepository

	mu       sync.RWMutex
	cached   fx.Table
	cachedAt time.Time
}

func NewRatesService(rateRepo portsrepo.ExchangeRateRepository, userRepo portsrepo.UserRepository) *RatesService {
	return &RatesService{rateRepo: rateRepo, userRepo: userRepo}
}

var _ portssvc.RatesSvcFacade = (*RatesService)(nil)

// Table returns the current rate table, refreshing the cache when stale.
func (s *RatesService) Table(ctx context.Context) (fx.Table, error) {
	s.mu.RLock()
	if time.Since(s.cachedAt) < rateCacheTTL {
		table := s.cached
		s.mu.RUnlock()
		return table, nil
	}
	s.mu.RUnlock()

	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return fx.Table{}, fmt.Errorf("failed to load rate table: %w", err)
	}
	rateMap := make(map[string]decimal.Decimal, len(rates))
	for _, r := range rates {
		rateMap[r.CurrencyCode] = r.RateToBase
	}
	table := fx.NewTable(rateMap)

	s.mu.Lock()
	s.cached = table
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return table, nil
}

// DisplayContext resolves the display currency for a request: an explicit
// override wins, otherwise the user's stored preference, otherwise base.
func (s *RatesService) DisplayContext(ctx context.Context, userID, override string) (fx.DisplayContext, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	code := override
	if code == "" && userID != "" {
		user, err := s.userRepo.FindUserByID(ctx, userID)
		if err != nil {
			return fx.DisplayContext{}, fmt.Errorf("failed to resolve display currency for user %s: %w", userID, err)
		}
		code = user.DisplayCurrency
	}

	table, err := s.Table(ctx)
	if err != nil {
		return fx.DisplayContext{}, err
	}

	dc := fx.NewDisplayContext(code, table)
	if code != "" && dc.Currency != code {
		logger.Warn("Display currency has no usable rate, falling back to base",
			slog.String("requested", code), slog.String("fallback", dc.Currency))
	}
	return dc, nil
}

// ListRates returns the persisted rate table rows.
func (s *RatesService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	return s.rateRepo.ListRates(ctx)
}

// UpsertRate sets or replaces one currency's rate and invalidates the
// cache. The base currency is pinned to 1 and cannot be changed.
func (s *RatesService) UpsertRate(ctx context.Context, req dto.UpsertRateRequest, userID string) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CurrencyCode == fx.BaseCurrency {
		return nil, fmt.Errorf("%w: rate for base currency %s is fixed at 1", apperrors.ErrValidation, fx.BaseCurrency)
	}
	if !req.RateToBase.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}

	rate := domain.ExchangeRate{
		CurrencyCode: req.CurrencyCode,
		RateToBase:   req.RateToBase,
		UpdatedAt:    time.Now(),
		UpdatedBy:    userID,
	}
	if err := s.rateRepo.UpsertRate(ctx, rate); err != nil {
		logger.Error("Failed to upsert exchange rate", slog.String("error", err.Error()), slog.String("currency", req.CurrencyCode))
		return nil, err
	}

	s.mu.Lock()
	s.cachedAt = time.Time{}
	s.mu.Unlock()

	logger.Info("Exchange rate upserted", slog.String("currency", req.CurrencyCode), slog.String("rate", req.RateToBase.String()))
	return &rate, nil
}
