package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/bookora/bookora_backend/internal/middleware"
	"github.com/bookora/bookora_backend/internal/platform/config"
	"github.com/bookora/bookora_backend/internal/utils"
	"github.com/google/uuid"
)

// defaultCompanyUserLimit applies when signup does not specify a limit.
const defaultCompanyUserLimit = 50

// authService implements signup, login and the refresh-token lifecycle.
// Policy: at most one live refresh token per user; issuing a new pair
// invalidates every earlier one.
type authService struct {
	cfg              *config.Config
	userRepo         portsrepo.UserRepository
	companyRepo      portsrepo.CompanyRepository
	roleRepo         portsrepo.RoleRepository
	refreshTokenRepo portsrepo.RefreshTokenRepository
	otpRepo          portsrepo.OTPRepository
	sender           portssvc.NotificationSender

	now func() time.Time
}

// NewAuthService creates a new authService.
func NewAuthService(
	cfg *config.Config,
	userRepo portsrepo.UserRepository,
	companyRepo portsrepo.CompanyRepository,
	roleRepo portsrepo.RoleRepository,
	refreshTokenRepo portsrepo.RefreshTokenRepository,
	otpRepo portsrepo.OTPRepository,
	sender portssvc.NotificationSender,
) portssvc.AuthSvcFacade {
	return &authService{
		cfg:              cfg,
		userRepo:         userRepo,
		companyRepo:      companyRepo,
		roleRepo:         roleRepo,
		refreshTokenRepo: refreshTokenRepo,
		otpRepo:          otpRepo,
		sender:           sender,
		now:              time.Now,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// RequestSignupOTP persists a one-time code for the phone and delivers it
// best-effort. The call succeeds once the code is persisted, even when
// delivery degraded to a local log.
func (s *authService) RequestSignupOTP(ctx context.Context, phone string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	code, err := utils.GenerateOTPCode(s.cfg.OTPDigits)
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	now := s.now()
	otp := domain.OTP{
		OTPID:     uuid.NewString(),
		Phone:     phone,
		Code:      code,
		ExpiresAt: now.Add(s.cfg.OTPExpiryDuration),
		CreatedAt: now,
	}
	if err := s.otpRepo.SaveOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to persist otp: %w", err)
	}

	if err := s.sender.SendOTP(ctx, phone, code); err != nil {
		// The fallback chain should never error, but delivery failure is
		// best-effort either way: log and report success.
		logger.Warn("OTP delivery failed", slog.String("phone", phone), slog.String("error", err.Error()))
	}
	return nil
}

// Signup verifies the OTP and creates a Company together with its first
// SuperAdmin user, seeding the company's roles and mapping the full
// permission catalog to SuperAdmin explicitly.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*portssvc.AuthResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.consumeOTP(ctx, req.Phone, req.OTPCode); err != nil {
		return nil, err
	}

	if existing, err := s.companyRepo.FindCompanyByName(ctx, req.CompanyName); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check company name: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: company with this name already exists", apperrors.ErrConflict)
	}
	if err := s.checkIdentityUnique(ctx, req.Email, req.Phone); err != nil {
		return nil, err
	}

	now := s.now()
	userLimit := req.UserLimit
	if userLimit <= 0 {
		userLimit = defaultCompanyUserLimit
	}

	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      req.CompanyName,
		Domain:    req.CompanyDomain,
		UserLimit: userLimit,
	}
	company.CreatedAt = now
	company.LastUpdatedAt = now

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		logger.Error("Failed to save company", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	superAdminRole, err := s.seedCompanyRoles(ctx, company.CompanyID)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		CompanyID:    company.CompanyID,
		RoleID:       superAdminRole.RoleID,
		IsActive:     true,
		IsVerified:   true, // phone ownership proven by the OTP
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save signup user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("Company signed up", slog.String("company_id", company.CompanyID), slog.String("user_id", user.UserID))
	return s.buildAuthResult(ctx, &user)
}

// Login authenticates by email and password and issues a fresh token pair.
func (s *authService) Login(ctx context.Context, email, password string) (*portssvc.AuthResult, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return s.buildAuthResult(ctx, user)
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	row, err := s.refreshTokenRepo.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, apperrors.ErrUnauthorized
		}
		return "", time.Time{}, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if s.now().After(row.ExpiresAt) {
		return "", time.Time{}, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.FindUserByID(ctx, row.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, apperrors.ErrUnauthorized
		}
		return "", time.Time{}, fmt.Errorf("failed to load refresh token user: %w", err)
	}
	if !user.IsActive {
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	expiresAt := s.now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiresAt, nil
}

// Logout revokes the given refresh token. Unknown tokens are a no-op.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
}

// issueTokens mints an access/refresh pair. All earlier refresh tokens of
// the user are deleted first: logging in on a second device invalidates the
// first device's session.
func (s *authService) issueTokens(ctx context.Context, user *domain.User) (portssvc.TokenPair, error) {
	expiresAt := s.now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return portssvc.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return portssvc.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.DeleteRefreshTokensByUser(ctx, user.UserID); err != nil {
		return portssvc.TokenPair{}, fmt.Errorf("failed to revoke previous refresh tokens: %w", err)
	}
	row := domain.RefreshToken{
		TokenHash: utils.HashRefreshToken(rawRefreshToken),
		UserID:    user.UserID,
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenExpiryDuration),
		CreatedAt: s.now(),
	}
	if err := s.refreshTokenRepo.SaveRefreshToken(ctx, row); err != nil {
		return portssvc.TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return portssvc.TokenPair{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: expiresAt,
		RefreshToken:         rawRefreshToken,
	}, nil
}

// buildAuthResult issues tokens and resolves the user's permission list.
func (s *authService) buildAuthResult(ctx context.Context, user *domain.User) (*portssvc.AuthResult, error) {
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	permissions, err := s.roleRepo.FindPermissionsByRole(ctx, user.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user permissions: %w", err)
	}
	return &portssvc.AuthResult{
		Tokens:      tokens,
		User:        user,
		Permissions: permissions,
	}, nil
}

// consumeOTP validates the latest unconsumed code for the phone and marks it
// consumed.
func (s *authService) consumeOTP(ctx context.Context, phone, code string) error {
	otp, err := s.otpRepo.FindLatestOTPByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: no verification code requested for this phone", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to look up otp: %w", err)
	}
	if otp.Consumed || s.now().After(otp.ExpiresAt) {
		return fmt.Errorf("%w: verification code expired", apperrors.ErrValidation)
	}
	if otp.Code != code {
		return fmt.Errorf("%w: invalid verification code", apperrors.ErrValidation)
	}
	if err := s.otpRepo.MarkOTPConsumed(ctx, otp.OTPID); err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	return nil
}

// checkIdentityUnique pre-checks global email/phone uniqueness. The unique
// constraints in the store remain the backstop.
func (s *authService) checkIdentityUnique(ctx context.Context, email, phone string) error {
	if existing, err := s.userRepo.FindUserByEmail(ctx, email); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return fmt.Errorf("%w: user with this email already exists", apperrors.ErrConflict)
	}
	if existing, err := s.userRepo.FindUserByPhone(ctx, phone); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check phone: %w", err)
	} else if existing != nil {
		return fmt.Errorf("%w: user with this phone number already exists", apperrors.ErrConflict)
	}
	return nil
}

// seedCompanyRoles creates the four well-known roles for a new company and
// explicitly maps the full permission catalog to SuperAdmin. Nothing is
// granted implicitly: a permission added to the catalog later is not picked
// up by SuperAdmin until mapped.
func (s *authService) seedCompanyRoles(ctx context.Context, companyID string) (*domain.Role, error) {
	now := s.now()
	var superAdmin *domain.Role

	for _, name := range []string{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee} {
		role := domain.Role{
			RoleID:    uuid.NewString(),
			Name:      name,
			CompanyID: companyID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if err := s.roleRepo.SaveRole(ctx, role); err != nil {
			return nil, fmt.Errorf("failed to seed role %s: %w", name, err)
		}
		if name == domain.RoleSuperAdmin {
			r := role
			superAdmin = &r
		}
	}

	catalog, err := s.roleRepo.FindAllPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load permission catalog: %w", err)
	}
	permissionIDs := make([]string, len(catalog))
	for i, p := range catalog {
		permissionIDs[i] = p.PermissionID
	}
	if err := s.roleRepo.ReplaceRolePermissions(ctx, superAdmin.RoleID, permissionIDs); err != nil {
		return nil, fmt.Errorf("failed to seed SuperAdmin permissions: %w", err)
	}

	return superAdmin, nil
}
