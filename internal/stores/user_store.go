package stores

import (
	"taskboard/internal/models"

	"gorm.io/gorm"
)

// UserStore abstracts user persistence.
type UserStore interface {
	// FindByEmail returns a user if it exists, or ErrNotFound.
	FindByEmail(email string) (*models.User, error)
	// CreateUser persists a new user.
	CreateUser(u *models.User) error
	GetByID(id uint) (*models.User, error)
}

var ErrNotFound = gorm.ErrRecordNotFound

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) CreateUser(u *models.User) error {
	return s.DB.Create(u).Error
}

func (s *GormUserStore) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
