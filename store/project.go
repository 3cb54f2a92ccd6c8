package store

// KickoffStatus tracks the background kickoff pipeline for a project. It is
// the only record the orchestrator mutates after creation; tasks, artifacts
// and messages are append-only.
type KickoffStatus string

const (
	// KickoffStatusPending means kickoff has not started yet.
	KickoffStatusPending KickoffStatus = "PENDING"
	// KickoffStatusRunning means the background kickoff is in flight.
	KickoffStatusRunning KickoffStatus = "RUNNING"
	// KickoffStatusCompleted means the full kickoff batch was committed.
	KickoffStatusCompleted KickoffStatus = "COMPLETED"
	// KickoffStatusFailed means the call, the parse, or a mid-commit write
	// failed. Records committed before a mid-commit failure are kept.
	KickoffStatusFailed KickoffStatus = "FAILED"
)

type Project struct {
	ID            int32
	UID           string
	CreatorID     int32
	Title         string
	Description   string
	Stack         string
	KickoffStatus KickoffStatus
	CreatedTs     int64
}

type FindProject struct {
	ID        *int32
	UID       *string
	CreatorID *int32
}

type UpdateProject struct {
	ID            int32
	Title         *string
	Description   *string
	KickoffStatus *KickoffStatus
}
