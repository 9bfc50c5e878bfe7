package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/utils"
	"github.com/fintrackio/fintrack_backend/pkg/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements TokenSvcFacade: short-lived JWT access tokens
// plus opaque refresh tokens stored hashed on the user.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userService: userService}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new opaque refresh token. The raw value
// goes to the client; only its hash is ever persisted.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return rawToken, time.Now().Add(s.cfg.RefreshTokenExpiryDuration), nil
}

// ValidateRefreshToken checks a presented refresh token against the
// user's stored hash and expiry.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID, rawToken string) (*domain.User, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiry == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiry) {
		return nil, apperrors.ErrUnauthorized
	}
	if utils.HashRefreshToken(rawToken) != user.RefreshTokenHash {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// googleOAuthService implements GoogleOAuthSvcFacade using the standard
// authorization-code flow.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCode trades an authorization code for Google's view of the
// user. Any failure along the way reads as an upstream error.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("%w: google sign-in is not configured", apperrors.ErrUpstream)
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange authorization code: %s", apperrors.ErrUpstream, err.Error())
	}

	// The exchange usually carries a signed ID token; a verified one is
	// authoritative and saves the userinfo round trip.
	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		if info, err := s.validateIDToken(ctx, rawIDToken); err == nil {
			return info, nil
		}
	}

	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch google user info: %s", apperrors.ErrUpstream, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: google userinfo returned %s", apperrors.ErrUpstream, resp.Status)
	}

	var info domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode google user info: %s", apperrors.ErrUpstream, err.Error())
	}
	return &info, nil
}

// validateIDToken verifies the ID token's signature and audience against
// our client ID and lifts the identity claims out of the payload.
func (s *googleOAuthService) validateIDToken(ctx context.Context, rawIDToken string) (*domain.GoogleUserInfo, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: google ID token validation failed: %s", apperrors.ErrUpstream, err.Error())
	}

	info := &domain.GoogleUserInfo{Sub: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		info.EmailVerified = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if info.Email == "" {
		return nil, fmt.Errorf("%w: google ID token carried no email claim", apperrors.ErrUpstream)
	}
	return info, nil
}
