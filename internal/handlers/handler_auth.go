package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration, login and token rotation.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	googleSvc    portssvc.GoogleOAuthSvcFacade
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := &authHandler{
		userService:  services.User,
		tokenService: services.Token,
		googleSvc:    services.Google,
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
		auth.POST("/google/exchange", h.googleExchange)
	}
}

// issueTokens generates the access/refresh pair for a user and persists
// the refresh token hash.
func (h *authHandler) issueTokens(c *gin.Context, user *domain.User) (*dto.AuthResponse, error) {
	ctx := c.Request.Context()

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := h.userService.SetRefreshToken(ctx, user.UserID, refreshToken, refreshExpiry); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	}, nil
}

// register godoc
// @Summary Register a local user
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register user")
		return
	}

	resp, err := h.issueTokens(c, user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log in")
		return
	}

	resp, err := h.issueTokens(c, user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// refresh godoc
// @Summary Rotate tokens using a refresh token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   refresh body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for refresh", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to refresh tokens")
		return
	}

	resp, err := h.issueTokens(c, user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Log out
// @Description Invalidates the user's refresh token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   refresh body dto.RefreshRequest true "Refresh token to invalidate"
// @Success 204 "Logged out"
// @Failure 401 {object} map[string]string "Invalid refresh token"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for logout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// The presented refresh token must be valid before it is cleared, so
	// a stranger can't log other users out.
	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log out")
		return
	}
	if err := h.userService.ClearRefreshToken(c.Request.Context(), user.UserID); err != nil {
		respondServiceError(c, logger, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// googleExchange godoc
// @Summary Sign in with Google
// @Description Exchanges a Google authorization code for application tokens, creating the user on first sign-in
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   exchange body dto.GoogleExchangeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "Unverified Google account"
// @Failure 502 {object} map[string]string "Google exchange failed"
// @Router /auth/google/exchange [post]
func (h *authHandler) googleExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for googleExchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	info, err := h.googleSvc.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to sign in with Google")
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), *info)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to sign in with Google")
		return
	}

	resp, err := h.issueTokens(c, user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue tokens")
		return
	}
	c.JSON(http.StatusOK, resp)
}
