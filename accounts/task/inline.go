package task

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/accounts/business/account"
	"encore.app/accounts/domain"
	"encore.app/accounts/model"
)

// InlineDispatcher executes refresh tasks synchronously in the dispatching
// goroutine. It exists for tests and local tooling where no Temporal server
// is available; Poll therefore always observes a terminal state.
type InlineDispatcher struct {
	business  account.Business
	lifecycle *domain.TaskLifecycle

	mu    sync.Mutex
	tasks map[string]*taskRecord
}

type taskRecord struct {
	state  model.TaskState
	result string
}

func NewInlineDispatcher(business account.Business) *InlineDispatcher {
	return &InlineDispatcher{
		business:  business,
		lifecycle: domain.NewTaskLifecycle(),
		tasks:     make(map[string]*taskRecord),
	}
}

func (d *InlineDispatcher) Dispatch(ctx context.Context, p RefreshParams) (string, error) {
	taskID := uuid.NewString()

	d.mu.Lock()
	d.tasks[taskID] = &taskRecord{state: model.TaskStatePending}
	d.mu.Unlock()

	accountNumber, err := d.business.RefreshAccount(ctx, account.RefreshParams{
		AccountNumber: p.AccountNumber,
		Token:         p.Token,
		Region:        p.Region,
	})
	if err != nil {
		d.complete(taskID, model.TaskStateFailure, "")
		return taskID, nil
	}

	result := ""
	if p.ForWeb {
		result = accountNumber
	}
	d.complete(taskID, model.TaskStateSuccess, result)
	return taskID, nil
}

func (d *InlineDispatcher) complete(taskID string, state model.TaskState, result string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record := d.tasks[taskID]
	if record == nil {
		return
	}
	if err := d.lifecycle.Transition(record.state, state); err != nil {
		return
	}
	record.state = state
	record.result = result
}

func (d *InlineDispatcher) Poll(ctx context.Context, taskID string) (model.TaskState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record, ok := d.tasks[taskID]
	if !ok {
		return "", &errs.Error{Code: errs.NotFound, Message: "task not found"}
	}
	return record.state, nil
}

func (d *InlineDispatcher) Result(ctx context.Context, taskID string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record, ok := d.tasks[taskID]
	if !ok {
		return "", &errs.Error{Code: errs.NotFound, Message: "task not found"}
	}
	if record.state != model.TaskStateSuccess {
		return "", &errs.Error{Code: errs.FailedPrecondition, Message: "task has not completed successfully"}
	}
	return record.result, nil
}
