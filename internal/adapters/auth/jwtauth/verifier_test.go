package jwtauth_test

import (
	"context"
	"testing"
	"time"

	"venture-hub/internal/adapters/auth/jwtauth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_RoundTrip(t *testing.T) {
	v, err := jwtauth.NewVerifier("s3cret", jwtauth.WithIssuer("venture-hub"))
	require.NoError(t, err)

	tok, err := v.Sign("ana", "ana@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestVerifier_RejectsExpiredAndForeignTokens(t *testing.T) {
	v, err := jwtauth.NewVerifier("s3cret", jwtauth.WithLeeway(0))
	require.NoError(t, err)

	expired, err := v.Sign("ana", "", -time.Minute)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), expired)
	assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)

	other, err := jwtauth.NewVerifier("other-secret")
	require.NoError(t, err)
	foreign, err := other.Sign("ana", "", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), foreign)
	assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)
}

func TestVerifier_RejectsOtherAlgorithms(t *testing.T) {
	v, err := jwtauth.NewVerifier("s3cret")
	require.NoError(t, err)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "ana",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)
}

func TestVerifier_RequiresSubject(t *testing.T) {
	v, err := jwtauth.NewVerifier("s3cret")
	require.NoError(t, err)

	tok, err := v.Sign("", "", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, jwtauth.ErrInvalidToken)
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	_, err := jwtauth.NewVerifier("  ")
	assert.Error(t, err)
}
