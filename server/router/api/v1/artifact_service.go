package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"

	"github.com/hamzemohamed32/codementor/store"
)

type createArtifactRequest struct {
	ProjectID int32  `json:"projectId"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type artifactResponse struct {
	ID        int32  `json:"id"`
	UID       string `json:"uid"`
	ProjectID int32  `json:"projectId"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Version   int32  `json:"version"`
	CreatedTs int64  `json:"createdTs"`
}

func convertArtifact(artifact *store.Artifact) *artifactResponse {
	return &artifactResponse{
		ID:        artifact.ID,
		UID:       artifact.UID,
		ProjectID: artifact.ProjectID,
		Type:      string(artifact.Type),
		Title:     artifact.Title,
		Content:   artifact.Content,
		Version:   artifact.Version,
		CreatedTs: artifact.CreatedTs,
	}
}

func (s *APIV1Service) ListArtifacts(c echo.Context) error {
	ctx := c.Request().Context()

	find := &store.FindArtifact{}
	if raw := c.QueryParam("projectId"); raw != "" && raw != "all" {
		projectID, err := parseID(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
		}
		find.ProjectID = &projectID
	}
	if raw := c.QueryParam("type"); raw != "" {
		artifactType := store.ArtifactTypeFromString(raw)
		find.Type = &artifactType
	}

	artifacts, err := s.Store.ListArtifacts(ctx, find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch artifacts")
	}
	response := make([]*artifactResponse, 0, len(artifacts))
	for _, artifact := range artifacts {
		response = append(response, convertArtifact(artifact))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) GetArtifact(c echo.Context) error {
	ctx := c.Request().Context()

	artifactID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artifact id")
	}
	artifact, err := s.Store.GetArtifact(ctx, &store.FindArtifact{ID: &artifactID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch artifact")
	}
	if artifact == nil {
		return echo.NewHTTPError(http.StatusNotFound, "artifact not found")
	}
	return c.JSON(http.StatusOK, convertArtifact(artifact))
}

func (s *APIV1Service) CreateArtifact(c echo.Context) error {
	ctx := c.Request().Context()

	request := &createArtifactRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	title := strings.TrimSpace(request.Title)
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "artifact title is required")
	}

	artifact, err := s.Store.CreateArtifact(ctx, &store.Artifact{
		UID:       shortuuid.New(),
		ProjectID: request.ProjectID,
		Type:      store.ArtifactTypeFromString(request.Type),
		Title:     title,
		Content:   request.Content,
		Version:   1,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create artifact")
	}
	return c.JSON(http.StatusCreated, convertArtifact(artifact))
}
