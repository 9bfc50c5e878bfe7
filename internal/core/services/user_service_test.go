package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/core/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/utils"
	"github.com/fintrackio/fintrack_backend/internal/utils/fx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      *services.UserService
	ctx          context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockUserRepo)
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUser_DefaultsDisplayCurrency() {
	req := dto.RegisterRequest{
		Email:    "dana@example.com",
		Name:     "Dana",
		Password: "s3cret-pass",
	}

	s.mockUserRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.AuthProvider == domain.ProviderLocal &&
			u.DisplayCurrency == fx.BaseCurrency &&
			u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := s.service.CreateUser(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(fx.BaseCurrency, user.DisplayCurrency)
	s.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestAuthenticateUser_Success() {
	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)
	stored := &domain.User{UserID: "user-1", Email: "dana@example.com", PasswordHash: hash}

	s.mockUserRepo.On("FindUserByEmail", s.ctx, "dana@example.com").Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(s.ctx, "dana@example.com", "correct-horse")

	s.Require().NoError(err)
	s.Equal("user-1", user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)
	stored := &domain.User{UserID: "user-1", Email: "dana@example.com", PasswordHash: hash}

	s.mockUserRepo.On("FindUserByEmail", s.ctx, "dana@example.com").Return(stored, nil).Once()

	_, err = s.service.AuthenticateUser(s.ctx, "dana@example.com", "wrong")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailIsUnauthorized() {
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "nobody@example.com").
		Return(nil, fmt.Errorf("%w: user", apperrors.ErrNotFound)).Once()

	_, err := s.service.AuthenticateUser(s.ctx, "nobody@example.com", "whatever")

	s.Require().Error(err)
	// A missing user must look exactly like a wrong password.
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_GoogleOnlyUserHasNoPassword() {
	stored := &domain.User{UserID: "user-2", Email: "g@example.com", AuthProvider: domain.ProviderGoogle}

	s.mockUserRepo.On("FindUserByEmail", s.ctx, "g@example.com").Return(stored, nil).Once()

	_, err := s.service.AuthenticateUser(s.ctx, "g@example.com", "anything")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestFindOrCreateGoogleUser_RequiresVerifiedEmail() {
	info := domain.GoogleUserInfo{Sub: "g-123", Email: "dana@example.com", EmailVerified: false}

	_, err := s.service.FindOrCreateGoogleUser(s.ctx, info)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.mockUserRepo.AssertNotCalled(s.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestFindOrCreateGoogleUser_MatchesExistingByEmail() {
	info := domain.GoogleUserInfo{Sub: "g-123", Email: "dana@example.com", EmailVerified: true}
	existing := &domain.User{UserID: "user-1", Email: "dana@example.com", AuthProvider: domain.ProviderLocal}

	s.mockUserRepo.On("FindUserByEmail", s.ctx, "dana@example.com").Return(existing, nil).Once()

	user, err := s.service.FindOrCreateGoogleUser(s.ctx, info)

	s.Require().NoError(err)
	s.Equal("user-1", user.UserID)
	s.mockUserRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesOnFirstSignIn() {
	info := domain.GoogleUserInfo{Sub: "g-123", Email: "new@example.com", Name: "New User", EmailVerified: true}

	s.mockUserRepo.On("FindUserByEmail", s.ctx, "new@example.com").
		Return(nil, fmt.Errorf("%w: user", apperrors.ErrNotFound)).Once()
	s.mockUserRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == info.Email &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.PasswordHash == "" &&
			u.DisplayCurrency == fx.BaseCurrency
	})).Return(nil).Once()

	user, err := s.service.FindOrCreateGoogleUser(s.ctx, info)

	s.Require().NoError(err)
	s.Equal(domain.ProviderGoogle, user.AuthProvider)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestSetRefreshToken_StoresHashNotRawToken() {
	raw := "raw-refresh-token"
	expiry := time.Now().Add(24 * time.Hour)

	s.mockUserRepo.On("UpdateRefreshToken", s.ctx, "user-1", utils.HashRefreshToken(raw),
		mock.AnythingOfType("*time.Time"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := s.service.SetRefreshToken(s.ctx, "user-1", raw, expiry)

	s.Require().NoError(err)
	s.mockUserRepo.AssertExpectations(s.T())
}
