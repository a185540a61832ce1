package mocks

import (
	"taskboard/internal/models"

	"github.com/stretchr/testify/mock"
)

type RefreshTokenStore struct{ mock.Mock }

func (m *RefreshTokenStore) Create(rt *models.RefreshToken) error {
	return m.Called(rt).Error(0)
}

func (m *RefreshTokenStore) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *RefreshTokenStore) DeleteByID(id uint) error {
	return m.Called(id).Error(0)
}

func (m *RefreshTokenStore) DeleteByToken(token string) error {
	return m.Called(token).Error(0)
}
