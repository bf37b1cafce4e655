package model

// TaskState is the dispatcher-visible state of one refresh task.
type TaskState string

const (
	TaskStatePending TaskState = "PENDING"
	TaskStateSuccess TaskState = "SUCCESS"
	TaskStateFailure TaskState = "FAILURE"
)

// Terminal reports whether a task in this state can still change state.
// SUCCESS and FAILURE are final; there is no retry transition.
func (s TaskState) Terminal() bool {
	return s == TaskStateSuccess || s == TaskStateFailure
}
