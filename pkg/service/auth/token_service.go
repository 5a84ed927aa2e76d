package auth

import (
	"fmt"
	"time"

	"github.com/officinaverde/blog-api/internal/pkg/auth"
	"github.com/officinaverde/blog-api/pkg/config"
	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
)

const accessTokenTTL = 15 * time.Minute

// TokenService issues and validates the JWT pair for a user.
type TokenService struct {
	secret []byte
}

// NewTokenService reads the signing secret from configuration. An empty
// secret is rejected at startup rather than at the first login.
func NewTokenService(cfg *config.Config) (*TokenService, error) {
	secret := cfg.GetString(config.KeyJWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("System.JwtSecret is not configured")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// IssueSession creates a fresh access/refresh pair for the user.
func (s *TokenService) IssueSession(user *model.User) (*model.SessionResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.IsAdmin, s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return &model.SessionResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(accessTokenTTL).Unix(),
	}, nil
}

// Parse validates a token string and returns its claims.
func (s *TokenService) Parse(tokenStr string) (*auth.CustomClaims, error) {
	claims, err := auth.ParseToken(tokenStr, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidToken, err)
	}
	return claims, nil
}
