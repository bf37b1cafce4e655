package account

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/accounts/model"
	"encore.app/accounts/repository/accounts"
)

// HasServer reports whether any account has already catalogued this server.
func (b *business) HasServer(ctx context.Context, serverID string) (bool, error) {
	probe, err := json.Marshal([]map[string]string{{"id": serverID}})
	if err != nil {
		return false, &errs.Error{Code: errs.Internal, Message: "failed to encode server probe"}
	}

	exists, err := b.accountRepo.HasServer(ctx, probe)
	if err != nil {
		return false, &errs.Error{Code: errs.Internal, Message: "failed to check catalogued servers"}
	}
	return exists, nil
}

// CheckAddServer fetches one server's detail record, appends it to the cached
// account, and answers whether it shares a host with another cached server.
//
// An unusable upstream response (malformed identifier, empty body) is a soft
// failure: the result is nil with no error and the store is left untouched.
// That is deliberately distinct from the precondition and conflict errors the
// caller raises before invoking this path.
func (b *business) CheckAddServer(ctx context.Context, p CheckServerParams) (*bool, error) {
	raw, err := b.cloud.GetServer(ctx, p.Token, p.Region, p.AccountNumber, p.ServerID)
	if err != nil {
		return nil, nil
	}

	summary := buildServerSummary(*raw)
	serverJSON, err := json.Marshal([]model.ServerSummary{summary})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to encode server summary"}
	}

	dbAccount, err := b.accountRepo.AppendServer(ctx, accounts.AppendServerParams{
		AccountNumber: p.AccountNumber,
		Server:        serverJSON,
		HostID:        summary.HostID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "account cache not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to append server to cache"}
	}

	account, err := convertDBAccountToModel(dbAccount)
	if err != nil {
		return nil, err
	}

	duplicate := sharesHost(account.Servers, summary.HostID)
	return &duplicate, nil
}
