package tokens_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovsienko/orderdesk/internal/models"
	"github.com/ovsienko/orderdesk/internal/tokens"
)

func TestSignAndParse(t *testing.T) {
	secret := []byte("test-jwt-secret")

	token, err := tokens.Sign(7, models.RoleAdmin, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.AccessClaimsFromToken(token, secret)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)

	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().UTC().Add(tokens.AccessTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := tokens.Sign(7, models.RoleUser, []byte("one-secret"))
	require.NoError(t, err)

	_, err = tokens.AccessClaimsFromToken(token, []byte("another-secret"))
	require.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	secret := []byte("test-jwt-secret")

	claims := tokens.AccessClaims{
		Role: models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = tokens.AccessClaimsFromToken(expired, secret)
	require.Error(t, err)
}

func TestParse_RejectsUnexpectedAlg(t *testing.T) {
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "7"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.AccessClaimsFromToken(unsigned, []byte("test-jwt-secret"))
	require.Error(t, err)
}
