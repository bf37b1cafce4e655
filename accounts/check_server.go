package accounts

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/accounts/business/account"
)

type CheckServerRequest struct {
	AuthToken string `header:"X-Auth-Token" json:"-"`

	Region string `json:"region" validate:"required,alphanum,min=2,max=10"`
}

type CheckServerResponse struct {
	// Duplicate is true when the server shares a host with another cached
	// server on the account, false when it is alone. A null value means the
	// upstream data was unusable and the check should be retried later.
	Duplicate *bool `json:"duplicate"`
}

// CheckServer catalogues one newly observed server under the account and
// answers whether it is co-tenant with an already cached server.
//
// The account must have a cached baseline (run a sync first) and the server
// must not be catalogued under any account yet; both are enforced here, not
// in the insertion path itself.
//
//encore:api public path=/v1/accounts/:accountNumber/servers/:serverID method=PUT
func (s *Service) CheckServer(ctx context.Context, accountNumber, serverID string, req *CheckServerRequest) (*CheckServerResponse, error) {
	if req.AuthToken == "" {
		return nil, &errs.Error{Code: errs.Unauthenticated, Message: "no authentication token provided"}
	}

	if _, err := s.business.GetAccount(ctx, accountNumber); err != nil {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "you must initialize before checking a server"}
	}

	catalogued, err := s.business.HasServer(ctx, serverID)
	if err != nil {
		rlog.Error("failed to check catalogued servers", "error", err, "server_id", serverID)
		return nil, err
	}
	if catalogued {
		return nil, &errs.Error{Code: errs.AlreadyExists, Message: "server has been catalogued already"}
	}

	duplicate, err := s.business.CheckAddServer(ctx, account.CheckServerParams{
		AccountNumber: accountNumber,
		ServerID:      serverID,
		Token:         req.AuthToken,
		Region:        req.Region,
	})
	if err != nil {
		rlog.Error("failed to check server", "error", err, "account_number", accountNumber, "server_id", serverID)
		return nil, err
	}
	if duplicate == nil {
		rlog.Info("server check was inconclusive", "account_number", accountNumber, "server_id", serverID)
	}

	return &CheckServerResponse{Duplicate: duplicate}, nil
}

// Validate implements validation for CheckServerRequest
func (r *CheckServerRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
