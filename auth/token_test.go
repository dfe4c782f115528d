package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue(7, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Issue(1, "admin")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		AdminID:  1,
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenIssuer(secret).Verify(expired)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSigningMethod(t *testing.T) {
	// alg=none tokens must never pass, whatever their payload says.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{AdminID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Verify(unsigned)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret").Verify("not-a-token")
	assert.Error(t, err)
}
