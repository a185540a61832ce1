package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/httperr"
	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/stores"
)

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTaskRequest is a partial update: nil pointers leave the field
// untouched, an explicit empty description or dueDate clears it to null.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *string `json:"dueDate"`
}

type TaskHandler struct {
	Store stores.TaskStore
}

func NewTaskHandler(store stores.TaskStore) *TaskHandler {
	return &TaskHandler{Store: store}
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(middleware.UserIDKey)
}

// taskID parses the :id route param. A non-numeric id behaves like a task
// that does not exist.
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Respond(c, httperr.NotFound("task not found"))
		return 0, false
	}
	return uint(id), true
}

func parseDueDate(raw string) (*time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID := currentUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	q := stores.TaskQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
		SortBy:   c.DefaultQuery("sortBy", "createdAt"),
		Order:    c.DefaultQuery("order", "desc"),
		Page:     page,
		Limit:    limit,
	}
	q.Normalize()

	tasks, total, err := h.Store.List(userID, q)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"pagination": gin.H{
			"total":      total,
			"page":       q.Page,
			"limit":      q.Limit,
			"totalPages": q.TotalPages(total),
		},
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.Store.GetByID(currentUserID(c), id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		httperr.Respond(c, httperr.Validation([]httperr.FieldError{
			{Field: "title", Message: "must not be empty"},
		}))
		return
	}

	task := models.Task{
		Title:    title,
		Status:   models.StatusTodo,
		Priority: models.PriorityMedium,
		UserID:   currentUserID(c),
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.Description != nil && *req.Description != "" {
		task.Description = req.Description
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			httperr.Respond(c, httperr.Validation([]httperr.FieldError{
				{Field: "dueDate", Message: "must be an RFC 3339 timestamp"},
			}))
			return
		}
		task.DueDate = due
	}

	if err := h.Store.Create(&task); err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	task, err := h.Store.GetByID(currentUserID(c), id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			httperr.Respond(c, httperr.Validation([]httperr.FieldError{
				{Field: "title", Message: "must not be empty"},
			}))
			return
		}
		task.Title = title
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Description != nil {
		if *req.Description == "" {
			task.Description = nil
		} else {
			task.Description = req.Description
		}
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := parseDueDate(*req.DueDate)
			if err != nil {
				httperr.Respond(c, httperr.Validation([]httperr.FieldError{
					{Field: "dueDate", Message: "must be an RFC 3339 timestamp"},
				}))
				return
			}
			task.DueDate = due
		}
	}

	if err := h.Store.Save(task); err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(currentUserID(c), id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

func respondTaskError(c *gin.Context, err error) {
	if errors.Is(err, stores.ErrNotFound) {
		httperr.Respond(c, httperr.NotFound("task not found"))
		return
	}
	httperr.Respond(c, httperr.Internal(err))
}
