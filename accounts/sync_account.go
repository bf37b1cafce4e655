package accounts

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/accounts/model"
	"encore.app/accounts/task"
)

type SyncAccountRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	AuthToken      string `header:"X-Auth-Token" json:"-"`

	Region string `json:"region" validate:"required,alphanum,min=2,max=10"`
	// ForWeb asks the task to carry the account cache key in its result so
	// the polling page can render the record on completion.
	ForWeb bool `json:"for_web"`
}

type SyncAccountResponse struct {
	TaskID string `json:"task_id"`
}

// SyncAccount dispatches a full fetch-reconcile-store cycle for the account
// and returns the task identifier to poll.
//
//encore:api public path=/v1/accounts/:accountNumber/sync method=POST tag:idempotency
func (s *Service) SyncAccount(ctx context.Context, accountNumber string, req *SyncAccountRequest) (*SyncAccountResponse, error) {
	if req.AuthToken == "" {
		return nil, &errs.Error{Code: errs.Unauthenticated, Message: "no authentication token provided"}
	}

	dc, err := s.regions.GetRegion(ctx, req.Region)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unknown region"}
	}
	if !dc.Active {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "region is not active"}
	}

	taskID, err := s.dispatcher.Dispatch(ctx, task.RefreshParams{
		AccountNumber: accountNumber,
		Token:         req.AuthToken,
		Region:        dc.Abbreviation,
		ForWeb:        req.ForWeb,
	})
	if err != nil {
		rlog.Error("failed to dispatch account sync", "error", err, "account_number", accountNumber)
		return nil, err
	}

	rlog.Info("dispatched account sync", "account_number", accountNumber, "region", dc.Abbreviation, "task_id", taskID)
	return &SyncAccountResponse{TaskID: taskID}, nil
}

// Validate implements validation for SyncAccountRequest using go-playground/validator
func (r *SyncAccountRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type SyncTaskStatusResponse struct {
	State model.TaskState `json:"state"`
	// Result is the account cache key; set only when State is SUCCESS and
	// the task was dispatched with for_web.
	Result string `json:"result,omitempty"`
}

// SyncTaskStatus reports the state of a previously dispatched sync task.
// Safe to call repeatedly; polling never mutates queue state.
//
//encore:api public path=/v1/accounts/sync/:taskID method=GET
func (s *Service) SyncTaskStatus(ctx context.Context, taskID string) (*SyncTaskStatusResponse, error) {
	state, err := s.dispatcher.Poll(ctx, taskID)
	if err != nil {
		rlog.Error("failed to poll sync task", "error", err, "task_id", taskID)
		return nil, err
	}

	resp := &SyncTaskStatusResponse{State: state}
	if state == model.TaskStateSuccess {
		result, err := s.dispatcher.Result(ctx, taskID)
		if err != nil {
			rlog.Error("failed to read sync task result", "error", err, "task_id", taskID)
			return nil, err
		}
		resp.Result = result
	}
	return resp, nil
}
