package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"

	"face-gateway/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	return cfg
}

func signToken(t *testing.T, cfg *config.Config, sub string, roles []string) string {
	t.Helper()
	now := time.Now()
	claims := &Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWT.Issuer,
			Audience:  jwt.ClaimStrings{cfg.JWT.Audience},
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.HSSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newGuardedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Use(JWTMiddleware(cfg))
	app.Get("/guarded", RequireOperator(), func(c *fiber.Ctx) error {
		return c.SendString(Operator(c))
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return res
}

func TestRequireOperator_NoToken(t *testing.T) {
	res := doGet(t, newGuardedApp(testConfig()), "")
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestRequireOperator_WrongRole(t *testing.T) {
	cfg := testConfig()
	res := doGet(t, newGuardedApp(cfg), signToken(t, cfg, "user:1", []string{"viewer"}))
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestRequireOperator_OperatorRole(t *testing.T) {
	cfg := testConfig()
	res := doGet(t, newGuardedApp(cfg), signToken(t, cfg, "user:1", []string{"operator"}))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestJWTMiddleware_RejectsTamperedToken(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg, "user:1", []string{"operator"})
	res := doGet(t, newGuardedApp(cfg), token+"x")
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestJWTMiddleware_RejectsWrongIssuer(t *testing.T) {
	cfg := testConfig()
	other := testConfig()
	other.JWT.Issuer = "someone-else"
	token := signToken(t, other, "user:1", []string{"operator"})
	res := doGet(t, newGuardedApp(cfg), token)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
