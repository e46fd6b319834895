package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
	"github.com/khanhle/schoolhealth/internal/pkg/auth"
	"github.com/khanhle/schoolhealth/internal/pkg/logger"
	"github.com/khanhle/schoolhealth/internal/pkg/validation"
)

// AuthService handles authentication operations: login, account registration
// and refresh token rotation
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidEmail(email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *AuthService) validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidationFailed)
	}
	return nil
}

// Login validates credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *models.User, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !user.IsActive {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return tokens, user, nil
}

// Register creates a new staff or parent account. Only admins reach this
// path; the route is role gated.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}
	if req.Phone != "" && !validation.IsValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: invalid phone format", apperrors.ErrValidationFailed)
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FullName:     req.FullName,
		Phone:        req.Phone,
		RoleType:     models.RoleType(req.RoleType),
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.RoleType)).Msg("Account registered")
	return user, nil
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued. Reuse of a revoked token fails.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, fmt.Errorf("%w: refresh token cannot be empty", apperrors.ErrValidationFailed)
	}

	userID, err := s.tokenRepo.GetTokenOwner(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return nil
	}
	err := s.tokenRepo.RevokeToken(ctx, refreshToken)
	if errors.Is(err, apperrors.ErrTokenNotFound) {
		return nil
	}
	return err
}

func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
