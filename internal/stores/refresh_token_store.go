package stores

import (
	"taskboard/internal/models"

	"gorm.io/gorm"
)

// RefreshTokenStore persists refresh tokens by their literal value.
type RefreshTokenStore interface {
	Create(rt *models.RefreshToken) error
	// FindByToken returns the stored row with its owning user, or ErrNotFound.
	FindByToken(token string) (*models.RefreshToken, error)
	DeleteByID(id uint) error
	// DeleteByToken removes every row matching the value. Deleting a token
	// that was never stored is a no-op, not an error.
	DeleteByToken(token string) error
}

// GormRefreshTokenStore implements RefreshTokenStore using GORM.
type GormRefreshTokenStore struct{ DB *gorm.DB }

func (s *GormRefreshTokenStore) Create(rt *models.RefreshToken) error {
	return s.DB.Create(rt).Error
}

func (s *GormRefreshTokenStore) FindByToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := s.DB.Preload("User").Where("token = ?", token).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (s *GormRefreshTokenStore) DeleteByID(id uint) error {
	return s.DB.Delete(&models.RefreshToken{}, id).Error
}

func (s *GormRefreshTokenStore) DeleteByToken(token string) error {
	return s.DB.Where("token = ?", token).Delete(&models.RefreshToken{}).Error
}
