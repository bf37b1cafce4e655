package task

import (
	"context"

	"encore.app/accounts/model"
)

// TaskQueue is the Temporal task queue account refreshes run on.
const TaskQueue = "account-sync"

// RefreshParams describes one refresh task to dispatch.
type RefreshParams struct {
	AccountNumber string
	Token         string
	Region        string
	// ForWeb makes the task result carry the account cache key so a
	// browser poller can render the record on completion.
	ForWeb bool
}

// Dispatcher schedules refresh work off the request path and reports
// completion state to polling callers. Implementations are injected into the
// service; there is no ambient singleton.
type Dispatcher interface {
	// Dispatch enqueues the fetch-reconcile-store pipeline as one unit of
	// work and returns an opaque task identifier.
	Dispatch(ctx context.Context, p RefreshParams) (string, error)

	// Poll is a non-blocking, repeatable status read.
	Poll(ctx context.Context, taskID string) (model.TaskState, error)

	// Result returns the task result. Valid only after Poll reports SUCCESS.
	Result(ctx context.Context, taskID string) (string, error)
}
