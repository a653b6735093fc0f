package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims(subject, role string) Claims {
	return Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    "idp",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newAuthRouter(issuer string, seen *domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret, issuer), func(c *gin.Context) {
		actor, ok := GetActorFromContext(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		*seen = actor
		c.Status(http.StatusOK)
	})
	return r
}

func serve(r *gin.Engine, authorization string) int {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthMiddleware_ValidTokenSetsActor(t *testing.T) {
	var seen domain.Actor
	r := newAuthRouter("idp", &seen)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u-1", "APPROVER"))

	assert.Equal(t, http.StatusOK, serve(r, "Bearer "+token))
	assert.Equal(t, domain.Actor{ID: "u-1", Role: domain.RoleApprover}, seen)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired := validClaims("u-1", "ADMINISTRATOR")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongIssuer := validClaims("u-1", "ADMINISTRATOR")
	wrongIssuer.Issuer = "someone-else"

	tests := map[string]string{
		"missing header":  "",
		"not bearer":      "Basic dXNlcjpwYXNz",
		"garbage token":   "Bearer not-a-jwt",
		"wrong secret":    "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("u-1", "ADMINISTRATOR")),
		"expired":         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
		"wrong issuer":    "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongIssuer),
		"unknown role":    "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u-1", "SUPERUSER")),
		"missing subject": "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("", "REQUESTER")),
		"other algorithm": "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("u-1", "REQUESTER")),
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			var seen domain.Actor
			assert.Equal(t, http.StatusUnauthorized, serve(newAuthRouter("idp", &seen), header))
			assert.Empty(t, seen.ID)
		})
	}
}

func TestAuthMiddleware_EmptyIssuerSkipsIssuerCheck(t *testing.T) {
	var seen domain.Actor
	claims := validClaims("u-2", "REQUESTER")
	claims.Issuer = "anything"

	code := serve(newAuthRouter("", &seen), "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "u-2", seen.ID)
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)
	r := gin.New()
	r.GET("/", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewRateLimiter("lots")
	assert.Error(t, err)
}
