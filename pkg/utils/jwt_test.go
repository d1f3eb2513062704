package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenManager_IssueVerify(t *testing.T) {
	tokens := NewTokenManager(testSecret, time.Hour)

	token, expiresAt, err := tokens.Issue("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	email, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestTokenManager_VerifyTampered(t *testing.T) {
	tokens := NewTokenManager(testSecret, time.Hour)

	token, _, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	if tampered == token {
		tampered = token[:len(token)-2] + "yy"
	}

	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_VerifyExpired(t *testing.T) {
	tokens := NewTokenManager(testSecret, -time.Minute)

	token, _, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_VerifyWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("other-secret", time.Hour).Issue("a@x.com")
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_VerifyNoneAlgorithm(t *testing.T) {
	claims := IdentityClaims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_VerifyGarbage(t *testing.T) {
	_, err := NewTokenManager(testSecret, time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_VerifyMissingEmail(t *testing.T) {
	tokens := NewTokenManager(testSecret, time.Hour)

	token, _, err := tokens.Issue("")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
