package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/daphos/shift-service/internal/domain"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// AuthMiddleware validates bearer tokens.
type AuthMiddleware struct {
	tokens  *TokenManager
	enabled bool
}

// NewAuthMiddleware constructs middleware. When disabled, RequireOperator lets every request through.
func NewAuthMiddleware(tokens *TokenManager, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, enabled: enabled}
}

// RequireOperator enforces an operator token on the route.
func (m *AuthMiddleware) RequireOperator(c *fiber.Ctx) error {
	if !m.enabled {
		return c.Next()
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	if claims.Subject != domain.SubjectTypeOperator {
		return apperrors.NewForbidden("operator token required")
	}

	token := claims.Token()
	c.Locals(principalKey, &token)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated token, if any.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Token, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	token, ok := val.(*domain.Token)
	return token, ok
}
