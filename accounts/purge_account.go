package accounts

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type PurgeAccountRequest struct {
	AuthToken string `header:"X-Auth-Token" json:"-"`
}

// PurgeAccount drops the cached record for an account. The next lookup has
// to run a full sync.
//
//encore:api public path=/v1/accounts/:accountNumber method=DELETE
func (s *Service) PurgeAccount(ctx context.Context, accountNumber string, req *PurgeAccountRequest) error {
	if req.AuthToken == "" {
		return &errs.Error{Code: errs.Unauthenticated, Message: "no authentication token provided"}
	}

	if err := s.business.PurgeAccount(ctx, accountNumber); err != nil {
		rlog.Error("failed to purge account", "error", err, "account_number", accountNumber)
		return err
	}

	rlog.Info("purged account cache", "account_number", accountNumber)
	return nil
}
