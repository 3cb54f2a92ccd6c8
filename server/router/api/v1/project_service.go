package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"

	"github.com/hamzemohamed32/codementor/store"
)

type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Stack       string `json:"stack"`
}

type projectResponse struct {
	ID            int32  `json:"id"`
	UID           string `json:"uid"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Stack         string `json:"stack"`
	KickoffStatus string `json:"kickoffStatus"`
	CreatedTs     int64  `json:"createdTs"`
}

func convertProject(project *store.Project) *projectResponse {
	return &projectResponse{
		ID:            project.ID,
		UID:           project.UID,
		Title:         project.Title,
		Description:   project.Description,
		Stack:         project.Stack,
		KickoffStatus: string(project.KickoffStatus),
		CreatedTs:     project.CreatedTs,
	}
}

func (s *APIV1Service) ListProjects(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := userIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	projects, err := s.Store.ListProjects(ctx, &store.FindProject{CreatorID: &userID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch projects")
	}
	response := make([]*projectResponse, 0, len(projects))
	for _, project := range projects {
		response = append(response, convertProject(project))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateProject persists the project and responds immediately; the kickoff
// pipeline runs in the background and its results show up through the task,
// artifact, and message endpoints as they land.
func (s *APIV1Service) CreateProject(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := userIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	request := &createProjectRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	title := strings.TrimSpace(request.Title)
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project title is required")
	}

	project, err := s.Store.CreateProject(ctx, &store.Project{
		UID:         shortuuid.New(),
		CreatorID:   userID,
		Title:       title,
		Description: strings.TrimSpace(request.Description),
		Stack:       strings.TrimSpace(request.Stack),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create project")
	}

	s.Kickoff.Launch(project.ID, project.Title, project.Description)

	return c.JSON(http.StatusCreated, convertProject(project))
}

func (s *APIV1Service) GetProject(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := userIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	projectID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}
	project, err := s.Store.GetProject(ctx, &store.FindProject{ID: &projectID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch project")
	}
	if project == nil || project.CreatorID != userID {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	return c.JSON(http.StatusOK, convertProject(project))
}
