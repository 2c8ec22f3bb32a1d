package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSigningKey = []byte("test-signing-key")

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSigningKey)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newAuthContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tests", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		OrgID: "org-1",
		Roles: []string{"analyst"},
	}
	token := signToken(t, claims)

	c, _ := newAuthContext(token)
	var gotUser, gotOrg string
	var gotRoles []string
	handler := JWTMiddleware(JWTConfig{SigningKey: testSigningKey})(func(c echo.Context) error {
		ctx := c.Request().Context()
		gotUser = UserIDFromContext(ctx)
		gotOrg = OrgIDFromContext(ctx)
		gotRoles = RolesFromContext(ctx)
		return c.String(http.StatusOK, "ok")
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != "user-1" {
		t.Errorf("expected user-1, got %q", gotUser)
	}
	if gotOrg != "org-1" {
		t.Errorf("expected org-1, got %q", gotOrg)
	}
	if len(gotRoles) != 1 || gotRoles[0] != "analyst" {
		t.Errorf("unexpected roles: %v", gotRoles)
	}
	if uid := c.Get("jwt_user_id"); uid != "user-1" {
		t.Errorf("expected jwt_user_id on echo context, got %v", uid)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	c, _ := newAuthContext("")
	handler := JWTMiddleware(JWTConfig{SigningKey: testSigningKey})(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	if err == nil {
		t.Fatal("expected error for missing authorization header")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_InvalidSignature(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("wrong-key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	c, _ := newAuthContext(signed)
	handler := JWTMiddleware(JWTConfig{SigningKey: testSigningKey})(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	if err := handler(c); err == nil {
		t.Fatal("expected error for invalid signature")
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := signToken(t, claims)

	c, _ := newAuthContext(token)
	handler := JWTMiddleware(JWTConfig{SigningKey: testSigningKey})(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	if err := handler(c); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTMiddleware_SkipsPublicPaths(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/health")

	called := false
	handler := JWTMiddleware(JWTConfig{SigningKey: testSigningKey})(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to run without a token on public path")
	}
}

func TestDevAuthMiddleware_SetsDefaults(t *testing.T) {
	c, _ := newAuthContext("")
	handler := DevAuthMiddleware()(func(c echo.Context) error {
		ctx := c.Request().Context()
		if UserIDFromContext(ctx) != "dev-user" {
			t.Errorf("expected dev-user, got %q", UserIDFromContext(ctx))
		}
		roles := RolesFromContext(ctx)
		if len(roles) != 1 || roles[0] != "admin" {
			t.Errorf("expected admin role, got %v", roles)
		}
		return c.String(http.StatusOK, "ok")
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: []string{"analyst"},
	}
	c, _ := newAuthContext(signToken(t, claims))

	chain := JWTMiddleware(JWTConfig{SigningKey: testSigningKey})(
		RequireRole("analyst")(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		}))

	if err := chain(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireRole_RejectsMissingRole(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: []string{"viewer"},
	}
	c, _ := newAuthContext(signToken(t, claims))

	chain := JWTMiddleware(JWTConfig{SigningKey: testSigningKey})(
		RequireRole("analyst")(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		}))

	err := chain(c)
	if err == nil {
		t.Fatal("expected forbidden error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestRequireRole_AdminAlwaysPasses(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: []string{"admin"},
	}
	c, _ := newAuthContext(signToken(t, claims))

	chain := JWTMiddleware(JWTConfig{SigningKey: testSigningKey})(
		RequireRole("analyst")(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		}))

	if err := chain(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIsPublicPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/health", true},
		{"/health/db", true},
		{"/health/backend", true},
		{"/metrics", false},
		{"/api/v1/tests", false},
		{"/", false},
	}
	for _, tt := range tests {
		if got := IsPublicPath(tt.path); got != tt.want {
			t.Errorf("IsPublicPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
