package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// AccountRefreshParams contains parameters for starting the account refresh workflow
type AccountRefreshParams struct {
	AccountNumber string `json:"account_number"`
	Token         string `json:"token"`
	Region        string `json:"region"`
	ForWeb        bool   `json:"for_web"`
}

// AccountRefresh runs one fetch-reconcile-store cycle for an account. The
// single activity is not retried: an upstream failure is terminal for the
// task and the previously cached record is left as it was.
//
// When ForWeb is set the workflow result carries the account number so the
// polling page can look the record up; otherwise the result is empty.
func AccountRefresh(ctx workflow.Context, params AccountRefreshParams) (string, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting account refresh workflow", "accountNumber", params.AccountNumber, "region", params.Region)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var accountNumber string
	err := workflow.ExecuteActivity(activityCtx, RefreshAccountActivity, params).Get(ctx, &accountNumber)
	if err != nil {
		logger.Error("Account refresh failed", "accountNumber", params.AccountNumber, "error", err)
		return "", err
	}

	logger.Info("Account refresh workflow completed", "accountNumber", params.AccountNumber)
	if !params.ForWeb {
		return "", nil
	}
	return accountNumber, nil
}
