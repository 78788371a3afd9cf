package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sangkips/smartpos-api/pkg/apperror"
	"github.com/sangkips/smartpos-api/pkg/utils"
)

// adminSubject is the token subject of the single report operator
const adminSubject = "admin"

// AuthService guards the admin reports behind the configured password
type AuthService struct {
	passwordHash string
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service. A configured bcrypt hash is
// used as is; otherwise the plain password is hashed once at startup.
func NewAuthService(password, passwordHash string, jwtManager *utils.JWTManager) (*AuthService, error) {
	if passwordHash == "" {
		if password == "" {
			return nil, fmt.Errorf("admin password is not configured")
		}
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		passwordHash = hashed
	}

	return &AuthService{
		passwordHash: passwordHash,
		jwtManager:   jwtManager,
	}, nil
}

// LoginOutput represents the login output
type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login checks the admin password and issues an admin token
func (s *AuthService) Login(_ context.Context, password string) (*LoginOutput, error) {
	if !utils.CheckPasswordHash(password, s.passwordHash) {
		log.Printf("Admin login failed: invalid password")
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(adminSubject, []string{utils.RoleAdmin})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(s.jwtManager.AccessTokenExpiry()),
	}, nil
}
