package domain

import (
	"encore.dev/beta/errs"

	"encore.app/accounts/model"
)

// TaskLifecycle validates state transitions for refresh tasks. A task starts
// PENDING and ends in exactly one of SUCCESS or FAILURE; there is no retry
// edge out of FAILURE.
type TaskLifecycle struct{}

func NewTaskLifecycle() *TaskLifecycle {
	return &TaskLifecycle{}
}

// Transition validates moving a task from one state to another.
func (l *TaskLifecycle) Transition(from, to model.TaskState) error {
	if from.Terminal() {
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "task is already in a terminal state",
		}
	}
	switch to {
	case model.TaskStateSuccess, model.TaskStateFailure:
		return nil
	default:
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "task can only transition to a terminal state",
		}
	}
}
