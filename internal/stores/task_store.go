package stores

import (
	"taskboard/internal/models"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// sortColumns maps accepted sortBy values to their database columns.
var sortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"status":     "status",
	"priority":   "priority",
	"dueDate":    "due_date",
	"due_date":   "due_date",
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
}

// TaskQuery carries the list filters as parsed from the request.
type TaskQuery struct {
	Status   string
	Priority string
	Search   string
	SortBy   string
	Order    string
	Page     int
	Limit    int
}

// Normalize applies defaults and clamps so the query is always executable:
// unknown sort columns fall back to created_at, order to desc, page floors
// at 1 and limit is clamped to 1..MaxLimit.
func (q *TaskQuery) Normalize() {
	if col, ok := sortColumns[q.SortBy]; ok {
		q.SortBy = col
	} else {
		q.SortBy = "created_at"
	}
	if q.Order != "asc" && q.Order != "desc" {
		q.Order = "desc"
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}

// TotalPages returns ceil(total/limit) for a normalized query.
func (q TaskQuery) TotalPages(total int64) int64 {
	if total == 0 {
		return 0
	}
	return (total + int64(q.Limit) - 1) / int64(q.Limit)
}

// TaskStore abstracts task persistence. Every lookup is scoped to the
// owning user, so a task belonging to someone else behaves exactly like a
// task that does not exist.
type TaskStore interface {
	List(userID uint, q TaskQuery) ([]models.Task, int64, error)
	// GetByID returns the user's task or ErrNotFound.
	GetByID(userID, id uint) (*models.Task, error)
	Create(t *models.Task) error
	Save(t *models.Task) error
	// Delete removes the user's task, or returns ErrNotFound.
	Delete(userID, id uint) error
}

// GormTaskStore implements TaskStore using GORM.
type GormTaskStore struct{ DB *gorm.DB }

func (s *GormTaskStore) List(userID uint, q TaskQuery) ([]models.Task, int64, error) {
	base := s.DB.Model(&models.Task{}).Where("user_id = ?", userID)
	if q.Status != "" {
		base = base.Where("status = ?", q.Status)
	}
	if q.Priority != "" {
		base = base.Where("priority = ?", q.Priority)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		base = base.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	// Count and page share the same where clause so total stays aligned
	// with the returned slice.
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tasks := []models.Task{}
	err := base.Session(&gorm.Session{}).
		Order(q.SortBy + " " + q.Order).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&tasks).Error
	return tasks, total, err
}

func (s *GormTaskStore) GetByID(userID, id uint) (*models.Task, error) {
	var t models.Task
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *GormTaskStore) Create(t *models.Task) error {
	return s.DB.Create(t).Error
}

func (s *GormTaskStore) Save(t *models.Task) error {
	return s.DB.Save(t).Error
}

func (s *GormTaskStore) Delete(userID, id uint) error {
	res := s.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
