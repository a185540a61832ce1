package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/token"
)

func newService() *token.JWTService {
	return &token.JWTService{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newService()

	raw, err := svc.GenerateAccessToken(42, "alice@example.com", time.Hour)
	assert.NoError(t, err)

	id, email, err := svc.VerifyAccessToken(raw)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "alice@example.com", email)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	svc := newService()

	raw, err := svc.GenerateAccessToken(1, "a@example.com", -time.Minute)
	assert.NoError(t, err)

	_, _, err = svc.VerifyAccessToken(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	raw, err := newService().GenerateAccessToken(1, "a@example.com", time.Hour)
	assert.NoError(t, err)

	other := &token.JWTService{
		AccessSecret:  []byte("different"),
		RefreshSecret: []byte("refresh-secret"),
	}
	_, _, err = other.VerifyAccessToken(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newService()

	raw, err := svc.GenerateRefreshToken(7, time.Hour)
	assert.NoError(t, err)

	id, err := svc.VerifyRefreshToken(raw)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	svc := newService()

	access, err := svc.GenerateAccessToken(1, "a@example.com", time.Hour)
	assert.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(1, time.Hour)
	assert.NoError(t, err)

	// An access token must not pass refresh verification, nor the reverse.
	_, err = svc.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
	_, _, err = svc.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyRefreshToken_Expired(t *testing.T) {
	svc := newService()

	raw, err := svc.GenerateRefreshToken(3, -time.Second)
	assert.NoError(t, err)

	_, err = svc.VerifyRefreshToken(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
