package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"

	"github.com/hamzemohamed32/codementor/store"
)

type createTaskRequest struct {
	ProjectID int32  `json:"projectId"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
}

type updateTaskRequest struct {
	Title    *string `json:"title"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

type taskResponse struct {
	ID        int32  `json:"id"`
	UID       string `json:"uid"`
	ProjectID int32  `json:"projectId"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	CreatedTs int64  `json:"createdTs"`
}

func convertTask(task *store.Task) *taskResponse {
	return &taskResponse{
		ID:        task.ID,
		UID:       task.UID,
		ProjectID: task.ProjectID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		CreatedTs: task.CreatedTs,
	}
}

func (s *APIV1Service) ListTasks(c echo.Context) error {
	ctx := c.Request().Context()

	find := &store.FindTask{}
	if raw := c.QueryParam("projectId"); raw != "" && raw != "all" {
		projectID, err := parseID(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
		}
		find.ProjectID = &projectID
	}

	tasks, err := s.Store.ListTasks(ctx, find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch tasks")
	}
	response := make([]*taskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, convertTask(task))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) CreateTask(c echo.Context) error {
	ctx := c.Request().Context()

	request := &createTaskRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	title := strings.TrimSpace(request.Title)
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task title is required")
	}

	task, err := s.Store.CreateTask(ctx, &store.Task{
		UID:       shortuuid.New(),
		ProjectID: request.ProjectID,
		Title:     title,
		Status:    store.TaskStatusTodo,
		Priority:  store.TaskPriorityFromString(request.Priority),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create task")
	}
	return c.JSON(http.StatusCreated, convertTask(task))
}

func (s *APIV1Service) UpdateTask(c echo.Context) error {
	ctx := c.Request().Context()

	taskID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid task id")
	}
	request := &updateTaskRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	update := &store.UpdateTask{ID: taskID}
	if request.Title != nil && strings.TrimSpace(*request.Title) != "" {
		title := strings.TrimSpace(*request.Title)
		update.Title = &title
	}
	if request.Status != nil {
		status := store.TaskStatusFromString(*request.Status)
		update.Status = &status
	}
	if request.Priority != nil {
		priority := store.TaskPriorityFromString(*request.Priority)
		update.Priority = &priority
	}

	task, err := s.Store.UpdateTask(ctx, update)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update task")
	}
	if task == nil {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}
	return c.JSON(http.StatusOK, convertTask(task))
}
