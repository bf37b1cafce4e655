package accounts

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/accounts/model"
)

type GetAccountRequest struct {
	AuthToken string `header:"X-Auth-Token" json:"-"`
}

type AccountResponse struct {
	Account model.AccountCache `json:"account"`
	// Mismatch is set when the account has fewer distinct hosts than
	// servers, meaning at least two servers share a physical host.
	Mismatch bool `json:"mismatch"`
}

// GetAccount returns the cached record for an account while it is still
// fresh. NotFound means there is no fresh cache and a sync must run first.
//
//encore:api public path=/v1/accounts/:accountNumber method=GET
func (s *Service) GetAccount(ctx context.Context, accountNumber string, req *GetAccountRequest) (*AccountResponse, error) {
	if req.AuthToken == "" {
		return nil, &errs.Error{Code: errs.Unauthenticated, Message: "no authentication token provided"}
	}

	result, err := s.business.GetFreshAccount(ctx, accountNumber)
	if err != nil {
		rlog.Error("failed to get account", "error", err, "account_number", accountNumber)
		return nil, err
	}

	return &AccountResponse{
		Account:  *result,
		Mismatch: len(result.Servers) != len(result.HostServers),
	}, nil
}
