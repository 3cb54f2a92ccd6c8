package store

type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "To do"
	TaskStatusDoing TaskStatus = "Doing"
	TaskStatusDone  TaskStatus = "Done"
)

// TaskStatusFromString resolves a raw status value, defaulting to "To do".
func TaskStatusFromString(raw string) TaskStatus {
	switch TaskStatus(raw) {
	case TaskStatusDoing:
		return TaskStatusDoing
	case TaskStatusDone:
		return TaskStatusDone
	default:
		return TaskStatusTodo
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// TaskPriorityFromString resolves a raw priority value. Absent or
// unrecognized values resolve to Medium.
func TaskPriorityFromString(raw string) TaskPriority {
	switch TaskPriority(raw) {
	case TaskPriorityLow:
		return TaskPriorityLow
	case TaskPriorityHigh:
		return TaskPriorityHigh
	default:
		return TaskPriorityMedium
	}
}

type Task struct {
	ID        int32
	UID       string
	ProjectID int32
	Title     string
	Status    TaskStatus
	Priority  TaskPriority
	CreatedTs int64
}

type FindTask struct {
	ID        *int32
	UID       *string
	ProjectID *int32
	Status    *TaskStatus
}

type UpdateTask struct {
	ID       int32
	Title    *string
	Status   *TaskStatus
	Priority *TaskPriority
}
