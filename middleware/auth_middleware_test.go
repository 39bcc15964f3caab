package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnshNarg/bit-coin/auth"
	"github.com/AnshNarg/bit-coin/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(isProduction bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(isProduction), func(c *gin.Context) {
		user, _ := GetUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r
}

// expiringToken signs a session that triggers the sliding-expiry refresh
func expiringToken(t *testing.T, email string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := &auth.Claims{
		User: model.UserDto{Email: email, Username: "demo"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   email,
			Issuer:    "bit-coin-demo",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.SecretKey)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	auth.SecretKey = []byte("test-secret")
	router := newAuthTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRefreshKeepsProductionCookieAttributes(t *testing.T) {
	auth.SecretKey = []byte("test-secret")
	router := newAuthTestRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: expiringToken(t, "slide@example.com", 5*time.Minute)})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	setCookie := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, setCookie, "near-expiry session must be refreshed")
	assert.Contains(t, setCookie, "Secure")
	assert.Contains(t, setCookie, "SameSite=None")
	assert.Contains(t, setCookie, "HttpOnly")
}

func TestAuthMiddlewareRefreshLocalCookieStaysPlain(t *testing.T) {
	auth.SecretKey = []byte("test-secret")
	router := newAuthTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: expiringToken(t, "local@example.com", 5*time.Minute)})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	setCookie := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, setCookie)
	assert.NotContains(t, setCookie, "Secure")
}

func TestAuthMiddlewareFreshTokenNotRefreshed(t *testing.T) {
	auth.SecretKey = []byte("test-secret")
	router := newAuthTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: expiringToken(t, "fresh@example.com", 29*time.Minute)})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
	assert.Contains(t, w.Body.String(), "fresh@example.com")
}
