package kickoff

import (
	"context"
	"testing"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/stretchr/testify/require"

	"github.com/hamzemohamed32/codementor/plugin/ai"
	"github.com/hamzemohamed32/codementor/store"
	storetest "github.com/hamzemohamed32/codementor/store/test"
)

type fakeCompleter struct {
	result *ai.CompletionResult
	calls  int
}

func (f *fakeCompleter) Complete(_ context.Context, _ ai.Role, _ string) *ai.CompletionResult {
	f.calls++
	return f.result
}

func succeededWith(content string) *ai.CompletionResult {
	return &ai.CompletionResult{Content: content, Succeeded: true}
}

func createProject(ctx context.Context, t *testing.T, ts *store.Store) *store.Project {
	t.Helper()
	project, err := ts.CreateProject(ctx, &store.Project{
		UID:         shortuuid.New(),
		Title:       "Fitness Tracker",
		Description: "Track workouts",
	})
	require.NoError(t, err)
	return project
}

func awaitState(t *testing.T, done <-chan State) State {
	t.Helper()
	select {
	case state := <-done:
		return state
	case <-time.After(10 * time.Second):
		t.Fatal("kickoff did not finish in time")
		return StateIdle
	}
}

func projectRecords(ctx context.Context, t *testing.T, ts *store.Store, projectID int32) ([]*store.Task, []*store.Artifact, []*store.Message) {
	t.Helper()
	tasks, err := ts.ListTasks(ctx, &store.FindTask{ProjectID: &projectID})
	require.NoError(t, err)
	artifacts, err := ts.ListArtifacts(ctx, &store.FindArtifact{ProjectID: &projectID})
	require.NoError(t, err)
	messages, err := ts.ListMessages(ctx, &store.FindMessage{ProjectID: &projectID})
	require.NoError(t, err)
	return tasks, artifacts, messages
}

func TestKickoffCommitsEnvelope(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	project := createProject(ctx, t, ts)

	completer := &fakeCompleter{result: succeededWith(
		"Sure! ```json\n{\"artifacts\":[],\"tasks\":[{\"title\":\"T1\",\"priority\":\"High\"}],\"welcomeMessage\":\"Hi\"}\n```",
	)}
	orchestrator := NewOrchestrator(ts, completer, 2)

	state := awaitState(t, orchestrator.Launch(project.ID, project.Title, project.Description))
	require.Equal(t, StateCommitted, state)

	tasks, artifacts, messages := projectRecords(ctx, t, ts, project.ID)
	require.Len(t, tasks, 1)
	require.Equal(t, "T1", tasks[0].Title)
	require.Equal(t, store.TaskPriorityHigh, tasks[0].Priority)
	require.Equal(t, store.TaskStatusTodo, tasks[0].Status)
	require.Empty(t, artifacts)
	require.Len(t, messages, 1)
	require.Equal(t, "Hi", messages[0].Content)
	require.Equal(t, ai.RoleAuto.String(), messages[0].Role)

	got, err := ts.GetProject(ctx, &store.FindProject{ID: &project.ID})
	require.NoError(t, err)
	require.Equal(t, store.KickoffStatusCompleted, got.KickoffStatus)
}

func TestKickoffCallFailure(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	project := createProject(ctx, t, ts)

	completer := &fakeCompleter{result: &ai.CompletionResult{
		Content:     "I apologize, but...",
		Succeeded:   false,
		ErrorDetail: "connection refused",
	}}
	orchestrator := NewOrchestrator(ts, completer, 2)

	state := awaitState(t, orchestrator.Launch(project.ID, project.Title, project.Description))
	require.Equal(t, StateCallFailed, state)

	tasks, artifacts, messages := projectRecords(ctx, t, ts, project.ID)
	require.Empty(t, tasks)
	require.Empty(t, artifacts)
	require.Empty(t, messages)

	got, err := ts.GetProject(ctx, &store.FindProject{ID: &project.ID})
	require.NoError(t, err)
	require.Equal(t, store.KickoffStatusFailed, got.KickoffStatus)
}

func TestKickoffParseFailure(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	project := createProject(ctx, t, ts)

	completer := &fakeCompleter{result: succeededWith("I cannot comply.")}
	orchestrator := NewOrchestrator(ts, completer, 2)

	state := awaitState(t, orchestrator.Launch(project.ID, project.Title, project.Description))
	require.Equal(t, StateParseFailed, state)

	tasks, artifacts, messages := projectRecords(ctx, t, ts, project.ID)
	require.Empty(t, tasks)
	require.Empty(t, artifacts)
	require.Empty(t, messages)
}

func TestKickoffDefaults(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	project := createProject(ctx, t, ts)

	// Unrecognized priority, unknown artifact type, blank welcome message.
	completer := &fakeCompleter{result: succeededWith(
		`{"artifacts":[{"type":"blueprint","title":"Plan","content":"..."}],"tasks":[{"title":"T1","priority":"Urgent"}],"welcomeMessage":""}`,
	)}
	orchestrator := NewOrchestrator(ts, completer, 2)

	state := awaitState(t, orchestrator.Launch(project.ID, project.Title, project.Description))
	require.Equal(t, StateCommitted, state)

	tasks, artifacts, messages := projectRecords(ctx, t, ts, project.ID)
	require.Len(t, tasks, 1)
	require.Equal(t, store.TaskPriorityMedium, tasks[0].Priority)
	require.Len(t, artifacts, 1)
	require.Equal(t, store.ArtifactTypeOther, artifacts[0].Type)
	require.Len(t, messages, 1)
	require.Equal(t, defaultWelcome, messages[0].Content)
}

func TestKickoffIsNotIdempotent(t *testing.T) {
	ctx := context.Background()
	ts := storetest.NewTestingStore(ctx, t)
	project := createProject(ctx, t, ts)

	completer := &fakeCompleter{result: succeededWith(
		`{"artifacts":[],"tasks":[{"title":"T1","priority":"Low"}],"welcomeMessage":"Hi"}`,
	)}
	orchestrator := NewOrchestrator(ts, completer, 2)

	require.Equal(t, StateCommitted, awaitState(t, orchestrator.Launch(project.ID, project.Title, project.Description)))
	require.Equal(t, StateCommitted, awaitState(t, orchestrator.Launch(project.ID, project.Title, project.Description)))

	tasks, _, messages := projectRecords(ctx, t, ts, project.ID)
	require.Len(t, tasks, 2)
	require.Len(t, messages, 2)
	require.Equal(t, 2, completer.calls)
}
