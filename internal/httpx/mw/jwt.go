// Package mw contains HTTP middleware including authentication and rate limiting.
package mw

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"

	"face-gateway/internal/config"
)

// AuthContext holds authentication details extracted from the bearer token.
// Token issuance lives in the operator portal; this service only verifies.
type AuthContext struct {
	Subject string
	Roles   []string
}

// Claims are the JWT claims accepted by this service.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// ParseToken verifies an HS256 bearer token against the shared secret.
func ParseToken(cfg *config.Config, token string) (*AuthContext, error) {
	if cfg.JWT.HSSecret == "" {
		return nil, errors.New("jwt not configured")
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.HSSecret), nil
	},
		jwt.WithIssuer(cfg.JWT.Issuer),
		jwt.WithAudience(cfg.JWT.Audience),
	)
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return &AuthContext{Subject: claims.Subject, Roles: claims.Roles}, nil
}

// JWTMiddleware attaches auth context when a valid bearer token is present.
// It never rejects by itself: route guards decide what is required.
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return c.Next()
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		if ac, err := ParseToken(cfg, token); err == nil && ac.Subject != "" {
			c.Locals("auth", ac)
		}
		return c.Next()
	}
}

// RequireOperator enforces an authenticated operator on device command routes.
func RequireOperator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.Subject == "" {
			return fiber.ErrUnauthorized
		}
		for _, r := range ac.Roles {
			if r == "operator" || r == "admin" {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}

// Operator returns the authenticated subject, or "" for anonymous calls.
func Operator(c *fiber.Ctx) string {
	if ac, _ := c.Locals("auth").(*AuthContext); ac != nil {
		return ac.Subject
	}
	return ""
}
