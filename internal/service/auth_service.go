package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/daphos/shift-service/internal/auth"
	"github.com/daphos/shift-service/internal/config"
	"github.com/daphos/shift-service/internal/domain"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
)

// AuthService authenticates the single configured operator.
type AuthService struct {
	username     string
	passwordHash string
	tokenMgr     *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		username:     cfg.Auth.OperatorUsername,
		passwordHash: cfg.Auth.OperatorPasswordHash,
		tokenMgr:     tokens,
	}
}

// Login checks operator credentials and issues an access token.
func (s *AuthService) Login(_ context.Context, username, password string) (string, time.Time, error) {
	if s.passwordHash == "" {
		return "", time.Time{}, apperrors.NewUnauthorized("operator login disabled")
	}
	nameOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(s.username)) == 1
	if err := auth.ComparePassword(s.passwordHash, password); err != nil || !nameOK {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(s.username, domain.SubjectTypeOperator)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}
