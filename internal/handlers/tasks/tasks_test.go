package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	handlers "taskboard/internal/handlers/tasks"
	"taskboard/internal/middleware"
	"taskboard/internal/mocks"
	"taskboard/internal/models"
	"taskboard/internal/stores"
)

func testContext(t *testing.T, method, target, body string, userID uint) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, target, buf)
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req
	ctx.Set(middleware.UserIDKey, userID)
	return w, ctx
}

func TestCreateTask_WhitespaceTitleRejected(t *testing.T) {
	w, ctx := testContext(t, http.MethodPost, "/api/tasks", `{"title":"   "}`, 1)

	store := new(mocks.TaskStore)
	h := handlers.NewTaskHandler(store)
	h.CreateTask(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateTask_Defaults(t *testing.T) {
	w, ctx := testContext(t, http.MethodPost, "/api/tasks", `{"title":"  Buy milk  "}`, 1)

	store := new(mocks.TaskStore)
	var created *models.Task
	store.On("Create", mock.AnythingOfType("*models.Task")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.Task)
			created.ID = 11
		}).
		Return(nil)

	h := handlers.NewTaskHandler(store)
	h.CreateTask(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, models.StatusTodo, created.Status)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, uint(1), created.UserID)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.DueDate)
}

func TestCreateTask_InvalidStatus(t *testing.T) {
	w, ctx := testContext(t, http.MethodPost, "/api/tasks", `{"title":"x","status":"BLOCKED"}`, 1)

	h := handlers.NewTaskHandler(new(mocks.TaskStore))
	h.CreateTask(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTask_BadDueDate(t *testing.T) {
	w, ctx := testContext(t, http.MethodPost, "/api/tasks", `{"title":"x","dueDate":"tomorrow"}`, 1)

	h := handlers.NewTaskHandler(new(mocks.TaskStore))
	h.CreateTask(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTask_OtherUsersTaskIsNotFound(t *testing.T) {
	w, ctx := testContext(t, http.MethodGet, "/api/tasks/7", "", 2)
	ctx.Params = gin.Params{{Key: "id", Value: "7"}}

	// Task 7 belongs to user 1; the store sees no row for user 2.
	store := new(mocks.TaskStore)
	store.On("GetByID", uint(2), uint(7)).Return(nil, stores.ErrNotFound)

	h := handlers.NewTaskHandler(store)
	h.GetTask(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTask_NonNumericID(t *testing.T) {
	w, ctx := testContext(t, http.MethodGet, "/api/tasks/abc", "", 1)
	ctx.Params = gin.Params{{Key: "id", Value: "abc"}}

	h := handlers.NewTaskHandler(new(mocks.TaskStore))
	h.GetTask(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTask_EmptyDescriptionClearsToNull(t *testing.T) {
	w, ctx := testContext(t, http.MethodPatch, "/api/tasks/3", `{"description":""}`, 1)
	ctx.Params = gin.Params{{Key: "id", Value: "3"}}

	desc := "old words"
	existing := &models.Task{ID: 3, Title: "t", Description: &desc, UserID: 1}

	store := new(mocks.TaskStore)
	store.On("GetByID", uint(1), uint(3)).Return(existing, nil)
	store.On("Save", mock.AnythingOfType("*models.Task")).Return(nil)

	h := handlers.NewTaskHandler(store)
	h.UpdateTask(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, existing.Description)
	assert.Equal(t, "t", existing.Title)
}

func TestUpdateTask_PartialLeavesOtherFieldsAlone(t *testing.T) {
	w, ctx := testContext(t, http.MethodPatch, "/api/tasks/3", `{"status":"DONE"}`, 1)
	ctx.Params = gin.Params{{Key: "id", Value: "3"}}

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.Task{ID: 3, Title: "keep me", Status: models.StatusTodo, Priority: models.PriorityHigh, DueDate: &due, UserID: 1}

	store := new(mocks.TaskStore)
	store.On("GetByID", uint(1), uint(3)).Return(existing, nil)
	store.On("Save", mock.AnythingOfType("*models.Task")).Return(nil)

	h := handlers.NewTaskHandler(store)
	h.UpdateTask(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusDone, existing.Status)
	assert.Equal(t, "keep me", existing.Title)
	assert.Equal(t, models.PriorityHigh, existing.Priority)
	assert.Equal(t, &due, existing.DueDate)
}

func TestUpdateTask_WhitespaceTitleRejected(t *testing.T) {
	w, ctx := testContext(t, http.MethodPut, "/api/tasks/3", `{"title":" "}`, 1)
	ctx.Params = gin.Params{{Key: "id", Value: "3"}}

	store := new(mocks.TaskStore)
	store.On("GetByID", uint(1), uint(3)).Return(&models.Task{ID: 3, Title: "t", UserID: 1}, nil)

	h := handlers.NewTaskHandler(store)
	h.UpdateTask(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "Save", mock.Anything)
}

func TestDeleteTask_OtherUsersTaskIsNotFound(t *testing.T) {
	w, ctx := testContext(t, http.MethodDelete, "/api/tasks/7", "", 2)
	ctx.Params = gin.Params{{Key: "id", Value: "7"}}

	store := new(mocks.TaskStore)
	store.On("Delete", uint(2), uint(7)).Return(stores.ErrNotFound)

	h := handlers.NewTaskHandler(store)
	h.DeleteTask(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTasks_PaginationShape(t *testing.T) {
	w, ctx := testContext(t, http.MethodGet, "/api/tasks?page=2&limit=10", "", 1)

	page2 := make([]models.Task, 5)
	store := new(mocks.TaskStore)
	store.On("List", uint(1), mock.MatchedBy(func(q stores.TaskQuery) bool {
		return q.Page == 2 && q.Limit == 10 && q.SortBy == "created_at" && q.Order == "desc"
	})).Return(page2, int64(15), nil)

	h := handlers.NewTaskHandler(store)
	h.ListTasks(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Tasks      []models.Task `json:"tasks"`
		Pagination struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalPages int64 `json:"totalPages"`
		} `json:"pagination"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp.Tasks, 5)
	assert.Equal(t, int64(15), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, int64(2), resp.Pagination.TotalPages)
}

func TestListTasks_FiltersForwarded(t *testing.T) {
	w, ctx := testContext(t, http.MethodGet,
		"/api/tasks?status=DONE&priority=HIGH&search=milk&sortBy=dueDate&order=asc", "", 1)

	store := new(mocks.TaskStore)
	store.On("List", uint(1), mock.MatchedBy(func(q stores.TaskQuery) bool {
		return q.Status == "DONE" && q.Priority == "HIGH" && q.Search == "milk" &&
			q.SortBy == "due_date" && q.Order == "asc" && q.Page == 1 && q.Limit == 10
	})).Return([]models.Task{}, int64(0), nil)

	h := handlers.NewTaskHandler(store)
	h.ListTasks(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}
