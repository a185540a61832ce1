package mocks

import (
	"taskboard/internal/models"
	"taskboard/internal/stores"

	"github.com/stretchr/testify/mock"
)

type TaskStore struct{ mock.Mock }

func (m *TaskStore) List(userID uint, q stores.TaskQuery) ([]models.Task, int64, error) {
	args := m.Called(userID, q)
	var tasks []models.Task
	if v := args.Get(0); v != nil {
		tasks = v.([]models.Task)
	}
	return tasks, args.Get(1).(int64), args.Error(2)
}

func (m *TaskStore) GetByID(userID, id uint) (*models.Task, error) {
	args := m.Called(userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *TaskStore) Create(t *models.Task) error { return m.Called(t).Error(0) }
func (m *TaskStore) Save(t *models.Task) error   { return m.Called(t).Error(0) }
func (m *TaskStore) Delete(userID, id uint) error {
	return m.Called(userID, id).Error(0)
}
