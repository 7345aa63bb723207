package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/bookora/bookora_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles the public authentication endpoints.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the public auth routes. The OTP and login
// endpoints sit behind a rate limiter.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, authLimiter *limiter.Limiter) {
	h := newAuthHandler(authService)

	auth := r.Group("/auth", middleware.RateLimit(authLimiter))
	{
		auth.POST("/otp", h.requestOTP)
		auth.POST("/signup", h.signup)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}
}

// requestOTP godoc
// @Summary Request a signup OTP
// @Description Delivers a one-time code to the given phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RequestOTPRequest true "Phone number"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /auth/otp [post]
func (h *authHandler) requestOTP(c *gin.Context) {
	var req dto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.authService.RequestSignupOTP(c.Request.Context(), req.Phone); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// signup godoc
// @Summary Sign up a company
// @Description Verifies the OTP and creates a company with its first SuperAdmin user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup details"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input or OTP"
// @Failure 409 {object} map[string]string "Company name or identity taken"
// @Router /auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Signup failed", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Company signed up", slog.String("user_id", result.User.UserID))
	c.JSON(http.StatusCreated, toLoginResponse(result))
}

// login godoc
// @Summary Log in
// @Description Authenticates by email and password and issues a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User logged in", slog.String("user_id", result.User.UserID))
	c.JSON(http.StatusOK, toLoginResponse(result))
}

// refresh godoc
// @Summary Refresh the access token
// @Description Exchanges a valid refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} map[string]string "Unknown or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	accessToken, expiresAt, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: accessToken, AccessTokenExpiresAt: expiresAt})
}

// logout godoc
// @Summary Log out
// @Description Revokes the given refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest true "Refresh token"
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func toLoginResponse(result *portssvc.AuthResult) dto.LoginResponse {
	return dto.LoginResponse{
		TokenPairResponse: dto.TokenPairResponse{
			AccessToken:          result.Tokens.AccessToken,
			AccessTokenExpiresAt: result.Tokens.AccessTokenExpiresAt,
			RefreshToken:         result.Tokens.RefreshToken,
		},
		User:        dto.ToUserResponse(result.User),
		Permissions: dto.ToPermissionResponses(result.Permissions),
	}
}
