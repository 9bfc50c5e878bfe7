package services_test

import (
	"context"
	"testing"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/core/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RatesServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	mockUserRepo *MockUserRepository
	service      *services.RatesService
	ctx          context.Context
}

func (s *RatesServiceTestSuite) SetupTest() {
	s.mockRateRepo = new(MockExchangeRateRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewRatesService(s.mockRateRepo, s.mockUserRepo)
	s.ctx = context.Background()
}

func TestRatesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RatesServiceTestSuite))
}

func (s *RatesServiceTestSuite) storedRates() []domain.ExchangeRate {
	return []domain.ExchangeRate{
		{CurrencyCode: "USD", RateToBase: decimal.RequireFromString("0.9")},
		{CurrencyCode: "GBP", RateToBase: decimal.RequireFromString("1.2")},
	}
}

func (s *RatesServiceTestSuite) TestTable_CachesAcrossCalls() {
	s.mockRateRepo.On("ListRates", s.ctx).Return(s.storedRates(), nil).Once()

	first, err := s.service.Table(s.ctx)
	s.Require().NoError(err)

	second, err := s.service.Table(s.ctx)
	s.Require().NoError(err)

	rate, known := first.Rate("USD")
	s.True(known)
	s.True(rate.Equal(decimal.RequireFromString("0.9")))
	rate, known = second.Rate("GBP")
	s.True(known)
	s.True(rate.Equal(decimal.RequireFromString("1.2")))
	s.mockRateRepo.AssertNumberOfCalls(s.T(), "ListRates", 1)
}

func (s *RatesServiceTestSuite) TestUpsertRate_InvalidatesCache() {
	s.mockRateRepo.On("ListRates", s.ctx).Return(s.storedRates(), nil).Twice()
	s.mockRateRepo.On("UpsertRate", s.ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.CurrencyCode == "USD" && r.RateToBase.Equal(decimal.RequireFromString("0.95"))
	})).Return(nil).Once()

	_, err := s.service.Table(s.ctx)
	s.Require().NoError(err)

	req := dto.UpsertRateRequest{CurrencyCode: "USD", RateToBase: decimal.RequireFromString("0.95")}
	rate, err := s.service.UpsertRate(s.ctx, req, "admin-1")
	s.Require().NoError(err)
	s.Equal("admin-1", rate.UpdatedBy)

	// The next table read goes back to the repository.
	_, err = s.service.Table(s.ctx)
	s.Require().NoError(err)
	s.mockRateRepo.AssertNumberOfCalls(s.T(), "ListRates", 2)
}

func (s *RatesServiceTestSuite) TestUpsertRate_RejectsBaseCurrency() {
	req := dto.UpsertRateRequest{CurrencyCode: fx.BaseCurrency, RateToBase: decimal.RequireFromString("1.1")}

	_, err := s.service.UpsertRate(s.ctx, req, "admin-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRateRepo.AssertNotCalled(s.T(), "UpsertRate", mock.Anything, mock.Anything)
}

func (s *RatesServiceTestSuite) TestUpsertRate_RejectsNonPositiveRate() {
	req := dto.UpsertRateRequest{CurrencyCode: "USD", RateToBase: decimal.Zero}

	_, err := s.service.UpsertRate(s.ctx, req, "admin-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRateRepo.AssertNotCalled(s.T(), "UpsertRate", mock.Anything, mock.Anything)
}

func (s *RatesServiceTestSuite) TestDisplayContext_OverrideWins() {
	s.mockRateRepo.On("ListRates", s.ctx).Return(s.storedRates(), nil).Once()

	dc, err := s.service.DisplayContext(s.ctx, "user-1", "USD")

	s.Require().NoError(err)
	s.Equal("USD", dc.Currency)
	s.True(dc.ConversionRate.Equal(decimal.RequireFromString("0.9")))
	s.mockUserRepo.AssertNotCalled(s.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (s *RatesServiceTestSuite) TestDisplayContext_FallsBackToUserPreference() {
	s.mockRateRepo.On("ListRates", s.ctx).Return(s.storedRates(), nil).Once()
	s.mockUserRepo.On("FindUserByID", s.ctx, "user-1").
		Return(&domain.User{UserID: "user-1", DisplayCurrency: "GBP"}, nil).Once()

	dc, err := s.service.DisplayContext(s.ctx, "user-1", "")

	s.Require().NoError(err)
	s.Equal("GBP", dc.Currency)
	s.True(dc.ConversionRate.Equal(decimal.RequireFromString("1.2")))
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *RatesServiceTestSuite) TestDisplayContext_UnknownCurrencyDegradesToBase() {
	s.mockRateRepo.On("ListRates", s.ctx).Return(s.storedRates(), nil).Once()

	dc, err := s.service.DisplayContext(s.ctx, "user-1", "JPY")

	s.Require().NoError(err)
	s.Equal(fx.BaseCurrency, dc.Currency)
	s.True(dc.ConversionRate.Equal(decimal.NewFromInt(1)))
}
