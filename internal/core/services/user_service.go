package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/fintrackio/fintrack_backend/internal/utils"
	"github.com/fintrackio/fintrack_backend/internal/utils/fx"
	"github.com/google/uuid"
)

// UserService manages users and their credentials.
type UserService struct {
	userRepo portsrepo.UserRepository
}

func NewUserService(repo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// CreateUser registers a local user with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	displayCurrency := req.DisplayCurrency
	if displayCurrency == "" {
		displayCurrency = fx.BaseCurrency
	}

	user := domain.User{
		UserID:          uuid.NewString(),
		Email:           req.Email,
		Name:            req.Name,
		PasswordHash:    passwordHash,
		AuthProvider:    domain.ProviderLocal,
		DisplayCurrency: displayCurrency,
	}
	user.AuditFields = domain.NewAuditFields(user.UserID, time.Now())

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save user", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// AuthenticateUser verifies email/password credentials. Every failure
// mode collapses to ErrUnauthorized so callers can't distinguish a wrong
// password from a missing user.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// UpdateDisplayCurrency changes the user's presentation currency and
// returns the updated user. Stored amounts are untouched.
func (s *UserService) UpdateDisplayCurrency(ctx context.Context, userID, currencyCode string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.userRepo.UpdateDisplayCurrency(ctx, userID, currencyCode, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update display currency", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}

	logger.Info("Display currency updated", slog.String("user_id", userID), slog.String("currency", currencyCode))
	return s.userRepo.FindUserByID(ctx, userID)
}

// SetRefreshToken stores the hash of a newly issued refresh token.
func (s *UserService) SetRefreshToken(ctx context.Context, userID, rawToken string, expiry time.Time) error {
	hash := utils.HashRefreshToken(rawToken)
	return s.userRepo.UpdateRefreshToken(ctx, userID, hash, &expiry, time.Now())
}

// ClearRefreshToken invalidates the user's refresh token on logout.
func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil, time.Now())
}

// FindOrCreateGoogleUser matches a verified Google identity to a local
// user by email, creating one on first sign-in.
func (s *UserService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !info.EmailVerified {
		return nil, fmt.Errorf("%w: google account email is not verified", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	newUser := domain.User{
		UserID:          uuid.NewString(),
		Email:           info.Email,
		Name:            info.Name,
		AuthProvider:    domain.ProviderGoogle,
		DisplayCurrency: fx.BaseCurrency,
	}
	newUser.AuditFields = domain.NewAuditFields(newUser.UserID, time.Now())

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		logger.Error("Failed to create user from google identity", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("User created from google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
