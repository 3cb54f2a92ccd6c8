// Package kickoff bootstraps a new project: it asks the completion service
// for the initial planning documents and backlog in one structured response,
// then distributes that response across tasks, artifacts, and the project
// chat. The whole pipeline runs detached from the request that created the
// project.
package kickoff

import (
	"context"
	"log/slog"

	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/semaphore"

	"github.com/hamzemohamed32/codementor/plugin/ai"
	"github.com/hamzemohamed32/codementor/internal/observability"
	"github.com/hamzemohamed32/codementor/store"
)

// State is the terminal-observable phase of one kickoff run.
type State string

const (
	StateIdle               State = "IDLE"
	StateRequested          State = "REQUESTED"
	StateAwaitingCompletion State = "AWAITING_COMPLETION"
	StateParsed             State = "PARSED"
	StateCommitted          State = "COMMITTED"
	StateParseFailed        State = "PARSE_FAILED"
	StateCallFailed         State = "CALL_FAILED"
	StateCommitFailed       State = "COMMIT_FAILED"
)

// defaultWelcome is used when the envelope's welcomeMessage is blank.
const defaultWelcome = "I've initialized your project kickoff! You can find the requirements, architecture, and task backlog in the respective tabs."

// Completer is the slice of the completion gateway the orchestrator needs.
type Completer interface {
	Complete(ctx context.Context, role ai.Role, userContent string) *ai.CompletionResult
}

// Orchestrator runs the kickoff pipeline.
type Orchestrator struct {
	store     *store.Store
	completer Completer

	// sem bounds concurrent kickoff runs so a burst of project creations
	// cannot exhaust upstream quota or database connections.
	sem *semaphore.Weighted
}

// NewOrchestrator creates a kickoff orchestrator allowing up to maxConcurrent
// simultaneous runs.
func NewOrchestrator(st *store.Store, completer Completer, maxConcurrent int64) *Orchestrator {
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}
	return &Orchestrator{
		store:     st,
		completer: completer,
		sem:       semaphore.NewWeighted(maxConcurrent),
	}
}

// Launch starts a kickoff in the background and returns immediately. The
// returned channel receives the terminal state exactly once; callers that do
// not care may drop it. The run uses its own context: kickoff outlives the
// request that triggered it and cannot be cancelled once started.
func (o *Orchestrator) Launch(projectID int32, title, description string) <-chan State {
	done := make(chan State, 1)
	go func() {
		ctx := context.Background()
		if err := o.sem.Acquire(ctx, 1); err != nil {
			done <- StateCallFailed
			return
		}
		defer o.sem.Release(1)
		done <- o.run(ctx, projectID, title, description)
	}()
	return done
}

// run executes the pipeline synchronously and returns its terminal state.
func (o *Orchestrator) run(ctx context.Context, projectID int32, title, description string) State {
	logger := observability.NewRequestContext(slog.Default(), ai.RoleAuto.String(), projectID)
	logger.Info("kickoff started",
		slog.String(observability.LogFieldKickoffState, string(StateRequested)),
		slog.String("title", title),
	)
	o.setKickoffStatus(ctx, logger, projectID, store.KickoffStatusRunning)

	prompt := buildPrompt(title, description)

	logger.Info("kickoff awaiting completion",
		slog.String(observability.LogFieldKickoffState, string(StateAwaitingCompletion)),
	)
	result := o.completer.Complete(ctx, ai.RoleAuto, prompt)
	if !result.Succeeded {
		// No store mutation beyond the status marker: the workspace stays
		// empty rather than inconsistent.
		logger.Warn("kickoff completion failed",
			slog.String(observability.LogFieldKickoffState, string(StateCallFailed)),
			slog.String("error_detail", result.ErrorDetail),
		)
		o.setKickoffStatus(ctx, logger, projectID, store.KickoffStatusFailed)
		return StateCallFailed
	}

	envelope, err := parseEnvelope(result.Content)
	if err != nil {
		logger.Error("kickoff envelope parse failed", err,
			slog.String(observability.LogFieldKickoffState, string(StateParseFailed)),
		)
		o.setKickoffStatus(ctx, logger, projectID, store.KickoffStatusFailed)
		return StateParseFailed
	}
	logger.Info("kickoff envelope parsed",
		slog.String(observability.LogFieldKickoffState, string(StateParsed)),
		slog.Int("task_count", len(envelope.Tasks)),
		slog.Int("artifact_count", len(envelope.Artifacts)),
	)

	if err := o.commit(ctx, projectID, envelope); err != nil {
		// No rollback: records committed before the failure are kept and the
		// project is marked failed so an operator can retry.
		logger.Error("kickoff commit failed", err,
			slog.String(observability.LogFieldKickoffState, string(StateCommitFailed)),
		)
		o.setKickoffStatus(ctx, logger, projectID, store.KickoffStatusFailed)
		return StateCommitFailed
	}

	o.setKickoffStatus(ctx, logger, projectID, store.KickoffStatusCompleted)
	logger.Info("kickoff completed",
		slog.String(observability.LogFieldKickoffState, string(StateCommitted)),
		slog.Int64(observability.LogFieldDuration, logger.DurationMs()),
	)
	return StateCommitted
}

// commit writes the envelope to the store: tasks first, then artifacts, then
// the welcome message. Later stages may assume earlier ones landed.
func (o *Orchestrator) commit(ctx context.Context, projectID int32, envelope *Envelope) error {
	for _, t := range envelope.Tasks {
		if _, err := o.store.CreateTask(ctx, &store.Task{
			UID:       shortuuid.New(),
			ProjectID: projectID,
			Title:     t.Title,
			Status:    store.TaskStatusTodo,
			Priority:  store.TaskPriorityFromString(t.Priority),
		}); err != nil {
			return err
		}
	}

	for _, a := range envelope.Artifacts {
		if _, err := o.store.CreateArtifact(ctx, &store.Artifact{
			UID:       shortuuid.New(),
			ProjectID: projectID,
			Type:      store.ArtifactTypeFromString(a.Type),
			Title:     a.Title,
			Content:   a.Content,
			Version:   1,
		}); err != nil {
			return err
		}
	}

	welcome := envelope.WelcomeMessage
	if welcome == "" {
		welcome = defaultWelcome
	}
	if _, err := o.store.CreateMessage(ctx, &store.Message{
		UID:       shortuuid.New(),
		ProjectID: projectID,
		Role:      ai.RoleAuto.String(),
		Content:   welcome,
	}); err != nil {
		return err
	}

	return nil
}

// setKickoffStatus is best-effort: a failed status write must not abort the
// pipeline it describes.
func (o *Orchestrator) setKickoffStatus(ctx context.Context, logger *observability.RequestContext, projectID int32, status store.KickoffStatus) {
	if _, err := o.store.UpdateProject(ctx, &store.UpdateProject{
		ID:            projectID,
		KickoffStatus: &status,
	}); err != nil {
		logger.Warn("failed to update kickoff status",
			slog.String("status", string(status)),
			slog.String("error", err.Error()),
		)
	}
}
