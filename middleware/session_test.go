package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", ValidateSession, func(c *gin.Context) {
		sid, _ := c.Get("session_id")
		c.JSON(http.StatusOK, gin.H{"session_id": sid})
	})
	return r
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateSessionAcceptsValidToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := sessionRouter()

	token := signToken(t, jwt.MapClaims{
		"session_id": "session_abc",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}, "test-secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session_abc")
}

func TestValidateSessionRejectsMissingHeader(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := sessionRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateSessionRejectsExpiredToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := sessionRouter()

	token := signToken(t, jwt.MapClaims{
		"session_id": "session_abc",
		"exp":        time.Now().Add(-time.Hour).Unix(),
	}, "test-secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateSessionRejectsWrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := sessionRouter()

	token := signToken(t, jwt.MapClaims{
		"session_id": "session_abc",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}, "other-secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateSessionRejectsMissingClaim(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	r := sessionRouter()

	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "test-secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
