package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type TokenService struct{ mock.Mock }

func (m *TokenService) GenerateAccessToken(userID uint, email string, ttl time.Duration) (string, error) {
	args := m.Called(userID, email, ttl)
	return args.String(0), args.Error(1)
}

func (m *TokenService) GenerateRefreshToken(userID uint, ttl time.Duration) (string, error) {
	args := m.Called(userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *TokenService) VerifyAccessToken(raw string) (uint, string, error) {
	args := m.Called(raw)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *TokenService) VerifyRefreshToken(raw string) (uint, error) {
	args := m.Called(raw)
	return args.Get(0).(uint), args.Error(1)
}
