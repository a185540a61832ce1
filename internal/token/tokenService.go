package token

import "time"

type TokenService interface {
	GenerateAccessToken(userID uint, email string, ttl time.Duration) (string, error)
	GenerateRefreshToken(userID uint, ttl time.Duration) (string, error)
	// VerifyAccessToken returns the identity encoded in the token, or
	// ErrInvalidToken if the signature is wrong or the token has expired.
	VerifyAccessToken(raw string) (userID uint, email string, err error)
	VerifyRefreshToken(raw string) (userID uint, err error)
}
