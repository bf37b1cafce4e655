package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	enums "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"encore.dev/beta/errs"

	"encore.app/accounts/model"
	"encore.app/accounts/workflow"
)

// TemporalDispatcher runs refresh tasks as Temporal workflow executions. The
// workflow ID doubles as the task identifier handed back to pollers.
type TemporalDispatcher struct {
	temporal client.Client
}

func NewTemporalDispatcher(temporal client.Client) *TemporalDispatcher {
	return &TemporalDispatcher{temporal: temporal}
}

func (d *TemporalDispatcher) Dispatch(ctx context.Context, p RefreshParams) (string, error) {
	workflowID := fmt.Sprintf("account-sync-%s-%s", p.AccountNumber, uuid.NewString())

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: TaskQueue,
	}

	params := workflow.AccountRefreshParams{
		AccountNumber: p.AccountNumber,
		Token:         p.Token,
		Region:        p.Region,
		ForWeb:        p.ForWeb,
	}

	run, err := d.temporal.ExecuteWorkflow(ctx, options, workflow.AccountRefresh, params)
	if err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to dispatch refresh task"}
	}
	return run.GetID(), nil
}

func (d *TemporalDispatcher) Poll(ctx context.Context, taskID string) (model.TaskState, error) {
	resp, err := d.temporal.DescribeWorkflowExecution(ctx, taskID, "")
	if err != nil {
		return "", &errs.Error{Code: errs.NotFound, Message: "task not found"}
	}

	switch resp.GetWorkflowExecutionInfo().GetStatus() {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING, enums.WORKFLOW_EXECUTION_STATUS_UNSPECIFIED:
		return model.TaskStatePending, nil
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return model.TaskStateSuccess, nil
	default:
		// Terminated, failed, canceled and timed out all surface as FAILURE;
		// none of them has a retry transition.
		return model.TaskStateFailure, nil
	}
}

func (d *TemporalDispatcher) Result(ctx context.Context, taskID string) (string, error) {
	var result string
	if err := d.temporal.GetWorkflow(ctx, taskID, "").Get(ctx, &result); err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to read task result"}
	}
	return result, nil
}
