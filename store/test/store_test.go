package test

import (
	"context"
	"testing"

	"github.com/lithammer/shortuuid/v4"
	"github.com/stretchr/testify/require"

	"github.com/hamzemohamed32/codementor/store"
)

func TestProjectStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	created, err := ts.CreateProject(ctx, &store.Project{
		UID:         shortuuid.New(),
		CreatorID:   1,
		Title:       "E-Commerce Platform",
		Description: "Full-stack e-commerce solution",
		Stack:       "React Native, Go, SQLite",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotZero(t, created.CreatedTs)
	require.Equal(t, store.KickoffStatusPending, created.KickoffStatus)

	second, err := ts.CreateProject(ctx, &store.Project{
		UID:   shortuuid.New(),
		Title: "Second",
	})
	require.NoError(t, err)

	t.Run("list returns newest first", func(t *testing.T) {
		list, err := ts.ListProjects(ctx, &store.FindProject{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, second.ID, list[0].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := ts.GetProject(ctx, &store.FindProject{ID: &created.ID})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "E-Commerce Platform", got.Title)
	})

	t.Run("get missing returns nil", func(t *testing.T) {
		missing := int32(9999)
		got, err := ts.GetProject(ctx, &store.FindProject{ID: &missing})
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("update kickoff status", func(t *testing.T) {
		status := store.KickoffStatusCompleted
		updated, err := ts.UpdateProject(ctx, &store.UpdateProject{ID: created.ID, KickoffStatus: &status})
		require.NoError(t, err)
		require.Equal(t, store.KickoffStatusCompleted, updated.KickoffStatus)
	})
}

func TestTaskStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	task, err := ts.CreateTask(ctx, &store.Task{
		UID:       shortuuid.New(),
		ProjectID: 1,
		Title:     "Implement Authentication",
		Priority:  store.TaskPriorityHigh,
	})
	require.NoError(t, err)
	require.Equal(t, store.TaskStatusTodo, task.Status)

	t.Run("list filters by project", func(t *testing.T) {
		_, err := ts.CreateTask(ctx, &store.Task{UID: shortuuid.New(), ProjectID: 2, Title: "Other project task"})
		require.NoError(t, err)

		projectID := int32(1)
		list, err := ts.ListTasks(ctx, &store.FindTask{ProjectID: &projectID})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Implement Authentication", list[0].Title)
	})

	t.Run("update status", func(t *testing.T) {
		status := store.TaskStatusDoing
		updated, err := ts.UpdateTask(ctx, &store.UpdateTask{ID: task.ID, Status: &status})
		require.NoError(t, err)
		require.Equal(t, store.TaskStatusDoing, updated.Status)
	})

	t.Run("empty priority defaults to medium", func(t *testing.T) {
		created, err := ts.CreateTask(ctx, &store.Task{UID: shortuuid.New(), ProjectID: 1, Title: "No priority"})
		require.NoError(t, err)
		require.Equal(t, store.TaskPriorityMedium, created.Priority)
	})
}

func TestArtifactStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	artifact, err := ts.CreateArtifact(ctx, &store.Artifact{
		UID:       shortuuid.New(),
		ProjectID: 1,
		Type:      store.ArtifactTypeRequirements,
		Title:     "MVP Scope & Requirements",
		Content:   "# Requirements\n\n- sign in\n- projects",
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, artifact.Version)

	t.Run("filter by type", func(t *testing.T) {
		_, err := ts.CreateArtifact(ctx, &store.Artifact{
			UID: shortuuid.New(), ProjectID: 1, Type: store.ArtifactTypeAPI, Title: "API Specification",
		})
		require.NoError(t, err)

		artifactType := store.ArtifactTypeAPI
		list, err := ts.ListArtifacts(ctx, &store.FindArtifact{Type: &artifactType})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "API Specification", list[0].Title)
	})
}

func TestMessageStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	for _, m := range []struct {
		projectID int32
		role      string
		content   string
	}{
		{1, store.MessageRoleUser, "build me an app"},
		{1, "Auto", "Here is the plan."},
		{2, store.MessageRoleUser, "unrelated"},
	} {
		_, err := ts.CreateMessage(ctx, &store.Message{
			UID: shortuuid.New(), ProjectID: m.projectID, Role: m.role, Content: m.content,
		})
		require.NoError(t, err)
	}

	t.Run("history is scoped to one project in creation order", func(t *testing.T) {
		projectID := int32(1)
		list, err := ts.ListMessages(ctx, &store.FindMessage{ProjectID: &projectID})
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, store.MessageRoleUser, list[0].Role)
		require.Equal(t, "Auto", list[1].Role)
		for _, m := range list {
			require.EqualValues(t, 1, m.ProjectID)
		}
	})

	t.Run("empty history is not an error", func(t *testing.T) {
		projectID := int32(42)
		list, err := ts.ListMessages(ctx, &store.FindMessage{ProjectID: &projectID})
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	_, err := ts.CreateUser(ctx, &store.User{
		UID:          shortuuid.New(),
		Username:     "hamze",
		Nickname:     "Hamze",
		PasswordHash: "$2a$10$fake",
	})
	require.NoError(t, err)

	username := "hamze"
	got, err := ts.GetUser(ctx, &store.FindUser{Username: &username})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Hamze", got.Nickname)

	// Usernames are unique.
	_, err = ts.CreateUser(ctx, &store.User{UID: shortuuid.New(), Username: "hamze", PasswordHash: "x"})
	require.Error(t, err)
}
