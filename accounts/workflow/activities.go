package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/accounts/business/account"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	AccountBusiness account.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(accountBusiness account.Business) {
	activityDeps = &ActivityDependencies{
		AccountBusiness: accountBusiness,
	}
}

// RefreshAccountActivity executes the fetch-reconcile-store pipeline for one
// account and returns the account number the record is keyed by.
func RefreshAccountActivity(ctx context.Context, params AccountRefreshParams) (string, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing account refresh activity", "accountNumber", params.AccountNumber, "region", params.Region)

	if activityDeps == nil || activityDeps.AccountBusiness == nil {
		logger.Error("Activity dependencies not set")
		return "", temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	accountNumber, err := activityDeps.AccountBusiness.RefreshAccount(ctx, account.RefreshParams{
		AccountNumber: params.AccountNumber,
		Token:         params.Token,
		Region:        params.Region,
	})
	if err != nil {
		logger.Error("Failed to refresh account", "accountNumber", params.AccountNumber, "error", err)
		return "", err
	}

	logger.Info("Successfully refreshed account", "accountNumber", params.AccountNumber)
	return accountNumber, nil
}
