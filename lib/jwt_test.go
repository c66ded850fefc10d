package lib

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret string, mutate func(jwt.MapClaims)) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      uuid.New().String(),
		"username": "ana",
		"role":     "waiter",
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
		"jti":      uuid.New().String(),
	}
	if mutate != nil {
		mutate(claims)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestParseToken(t *testing.T) {
	t.Run("round trip preserves claims", func(t *testing.T) {
		sub := uuid.New()
		token := signTestToken(t, testSecret, func(c jwt.MapClaims) {
			c["sub"] = sub.String()
			c["role"] = "admin"
		})

		claims, err := ParseToken(token, testSecret)

		assert.NoError(t, err)
		assert.Equal(t, sub, claims.Sub)
		assert.Equal(t, "ana", claims.Username)
		assert.Equal(t, "admin", claims.Role)
		assert.True(t, claims.IsAdmin())
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token := signTestToken(t, "other-secret", nil)

		_, err := ParseToken(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseToken("not.a.token", testSecret)
		assert.Error(t, err)
	})
}

func TestBearerToken(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)

		_, err := BearerToken(r)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Basic abc123")

		_, err := BearerToken(r)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("well-formed header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer the-token")

		token, err := BearerToken(r)
		assert.NoError(t, err)
		assert.Equal(t, "the-token", token)
	})
}

func TestExtractClaims(t *testing.T) {
	t.Run("valid bearer token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, nil))

		claims, err := ExtractClaims(r, testSecret)
		assert.NoError(t, err)
		assert.Equal(t, "ana", claims.Username)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signTestToken(t, testSecret, func(c jwt.MapClaims) {
			c["iat"] = time.Now().Add(-2 * time.Hour).Unix()
			c["exp"] = time.Now().Add(-time.Hour).Unix()
		})

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		_, err := ExtractClaims(r, testSecret)
		assert.Error(t, err)
	})
}
