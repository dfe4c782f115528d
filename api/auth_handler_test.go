package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrov/portfolio-site-backend/auth"
	"github.com/mpetrov/portfolio-site-backend/database"
)

func TestLoginWithDefaultCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	token := loginAsAdmin(t, router)

	// The issued token must be accepted on an admin-only route.
	rec := doJSON(t, router, http.MethodGet, "/api/contact", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	router, _ := newTestRouter(t)

	wrongPassword := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": database.DefaultAdminUsername,
		"password": "wrong",
	}, "")
	unknownUser := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "no-such-user",
		"password": "wrong",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String(),
		"wrong password and unknown username must be indistinguishable")
}

func TestLoginMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := doJSON(t, router, http.MethodPost, "/api/admin/login", nil, "")
	assert.Equal(t, http.StatusBadRequest, req.Code)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/contact", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp statusResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Success)
}

func TestAuthMiddlewareRejectsNonBearerScheme(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/contact", nil, "not-a-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	router, _ := newTestRouter(t)

	claims := &auth.Claims{
		AdminID:  1,
		Username: database.DefaultAdminUsername,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/contact", nil, expired)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddlewareRejectsForeignSignature(t *testing.T) {
	router, _ := newTestRouter(t)

	foreign, err := auth.NewTokenIssuer("some-other-secret").Issue(1, database.DefaultAdminUsername)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/contact", nil, foreign)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
