package task

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	enums "go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/mocks"

	"encore.app/accounts/model"
)

func TestTemporalDispatcherDispatch(t *testing.T) {
	t.Run("happy_case", func(t *testing.T) {
		mockClient := mocks.NewClient(t)
		mockRun := &mocks.WorkflowRun{}
		mockRun.On("GetID").Return("account-sync-123456-abc")

		mockClient.On("ExecuteWorkflow",
			mock.Anything, // context
			mock.Anything, // StartWorkflowOptions
			mock.Anything, // workflow function
			mock.Anything, // workflow params
		).Return(mockRun, nil)

		dispatcher := NewTemporalDispatcher(mockClient)

		taskID, err := dispatcher.Dispatch(context.Background(), RefreshParams{
			AccountNumber: "123456",
			Token:         "token-abc",
			Region:        "iad",
			ForWeb:        true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "account-sync-123456-abc", taskID)
		mockRun.AssertExpectations(t)
	})

	t.Run("execute_workflow_fails", func(t *testing.T) {
		mockClient := mocks.NewClient(t)
		mockClient.On("ExecuteWorkflow",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return(nil, errors.New("connection refused"))

		dispatcher := NewTemporalDispatcher(mockClient)

		taskID, err := dispatcher.Dispatch(context.Background(), RefreshParams{
			AccountNumber: "123456",
			Token:         "token-abc",
			Region:        "iad",
		})

		assert.Error(t, err)
		assert.Empty(t, taskID)
		assert.Contains(t, err.Error(), "failed to dispatch refresh task")
	})
}

func TestTemporalDispatcherPoll(t *testing.T) {
	describeResponse := func(status enums.WorkflowExecutionStatus) *workflowservice.DescribeWorkflowExecutionResponse {
		return &workflowservice.DescribeWorkflowExecutionResponse{
			WorkflowExecutionInfo: &workflowpb.WorkflowExecutionInfo{
				Status: status,
			},
		}
	}

	testCases := []struct {
		name     string
		status   enums.WorkflowExecutionStatus
		expected model.TaskState
	}{
		{
			name:     "running_maps_to_pending",
			status:   enums.WORKFLOW_EXECUTION_STATUS_RUNNING,
			expected: model.TaskStatePending,
		},
		{
			name:     "unspecified_maps_to_pending",
			status:   enums.WORKFLOW_EXECUTION_STATUS_UNSPECIFIED,
			expected: model.TaskStatePending,
		},
		{
			name:     "completed_maps_to_success",
			status:   enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
			expected: model.TaskStateSuccess,
		},
		{
			name:     "failed_maps_to_failure",
			status:   enums.WORKFLOW_EXECUTION_STATUS_FAILED,
			expected: model.TaskStateFailure,
		},
		{
			name:     "terminated_maps_to_failure",
			status:   enums.WORKFLOW_EXECUTION_STATUS_TERMINATED,
			expected: model.TaskStateFailure,
		},
		{
			name:     "timed_out_maps_to_failure",
			status:   enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT,
			expected: model.TaskStateFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := mocks.NewClient(t)
			mockClient.On("DescribeWorkflowExecution", mock.Anything, "task-1", "").
				Return(describeResponse(tc.status), nil)

			dispatcher := NewTemporalDispatcher(mockClient)

			state, err := dispatcher.Poll(context.Background(), "task-1")

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, state)
		})
	}

	t.Run("unknown_workflow", func(t *testing.T) {
		mockClient := mocks.NewClient(t)
		mockClient.On("DescribeWorkflowExecution", mock.Anything, "no-such-task", "").
			Return(nil, errors.New("workflow not found"))

		dispatcher := NewTemporalDispatcher(mockClient)

		_, err := dispatcher.Poll(context.Background(), "no-such-task")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "task not found")
	})
}

func TestTemporalDispatcherResult(t *testing.T) {
	t.Run("happy_case", func(t *testing.T) {
		mockClient := mocks.NewClient(t)
		mockRun := &mocks.WorkflowRun{}
		mockRun.On("Get", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				result := args.Get(1).(*string)
				*result = "123456"
			}).
			Return(nil)
		mockClient.On("GetWorkflow", mock.Anything, "task-1", "").Return(mockRun)

		dispatcher := NewTemporalDispatcher(mockClient)

		result, err := dispatcher.Result(context.Background(), "task-1")

		assert.NoError(t, err)
		assert.Equal(t, "123456", result)
		mockRun.AssertExpectations(t)
	})

	t.Run("workflow_failed", func(t *testing.T) {
		mockClient := mocks.NewClient(t)
		mockRun := &mocks.WorkflowRun{}
		mockRun.On("Get", mock.Anything, mock.Anything).Return(errors.New("workflow failed"))
		mockClient.On("GetWorkflow", mock.Anything, "task-1", "").Return(mockRun)

		dispatcher := NewTemporalDispatcher(mockClient)

		_, err := dispatcher.Result(context.Background(), "task-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read task result")
	})
}
