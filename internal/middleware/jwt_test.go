package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const jwtTestSecret = "test-secret"

func signTestToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newJWTTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTProtected(jwtTestSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("user_role"),
		})
	})
	return app
}

func TestJWTProtectedValidTokenSetsLocals(t *testing.T) {
	app := newJWTTestApp()
	now := time.Now()
	token := signTestToken(t, jwt.MapClaims{
		"sub":  float64(7),
		"role": "Manager",
		"iat":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(time.Hour)),
	}, jwtTestSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		UserID uint   `json:"user_id"`
		Role   string `json:"role"`
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Equal(t, uint(7), payload.UserID)
	require.Equal(t, "manager", payload.Role, "role is normalized to lower case")
}

func TestJWTProtectedMissingHeader(t *testing.T) {
	app := newJWTTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedWrongSecret(t *testing.T) {
	app := newJWTTestApp()
	now := time.Now()
	token := signTestToken(t, jwt.MapClaims{
		"sub": float64(7),
		"exp": jwt.NewNumericDate(now.Add(time.Hour)),
	}, "another-secret")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedExpiredToken(t *testing.T) {
	app := newJWTTestApp()
	now := time.Now()
	token := signTestToken(t, jwt.MapClaims{
		"sub": float64(7),
		"iat": jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		"exp": jwt.NewNumericDate(now.Add(-time.Hour)),
	}, jwtTestSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsTokenWithoutSubject(t *testing.T) {
	app := newJWTTestApp()
	now := time.Now()
	token := signTestToken(t, jwt.MapClaims{
		"role": "admin",
		"exp":  jwt.NewNumericDate(now.Add(time.Hour)),
	}, jwtTestSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSubjectFromClaims(t *testing.T) {
	id, err := subjectFromClaims(jwt.MapClaims{"sub": float64(42)})
	require.NoError(t, err)
	require.Equal(t, uint(42), id)

	id, err = subjectFromClaims(jwt.MapClaims{"sub": "17"})
	require.NoError(t, err)
	require.Equal(t, uint(17), id)

	_, err = subjectFromClaims(jwt.MapClaims{})
	require.Error(t, err)

	_, err = subjectFromClaims(jwt.MapClaims{"sub": float64(-1)})
	require.Error(t, err)
}
