package account

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/accounts/model"
	"encore.app/accounts/repository/accounts"
)

// RefreshAccount fetches every server on the account, reconciles host
// groupings, and replaces the cached record wholesale with a new expiration.
// Any upstream failure aborts before the store is touched, so a previous
// record survives a failed refresh unchanged.
func (b *business) RefreshAccount(ctx context.Context, p RefreshParams) (string, error) {
	raw, err := b.cloud.ListServers(ctx, p.Token, p.Region, p.AccountNumber)
	if err != nil {
		return "", &errs.Error{Code: errs.Unavailable, Message: "failed to fetch servers from the compute API"}
	}

	servers, hostServers := reconcileServers(raw)
	serversJSON, err := json.Marshal(servers)
	if err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to encode server list"}
	}

	dbAccount, err := b.accountRepo.UpsertAccount(ctx, accounts.UpsertAccountParams{
		AccountNumber:   p.AccountNumber,
		Region:          p.Region,
		Token:           p.Token,
		Servers:         serversJSON,
		HostServers:     hostServers,
		CacheExpiration: pgtype.Timestamptz{Time: time.Now().Add(b.cacheTTL), Valid: true},
	})
	if err != nil {
		return "", &errs.Error{Code: errs.Internal, Message: "failed to store account cache"}
	}

	return dbAccount.AccountNumber, nil
}

// convertDBAccountToModel converts a database Account to a domain model AccountCache
func convertDBAccountToModel(dbAccount accounts.Account) (*model.AccountCache, error) {
	account := &model.AccountCache{
		ID:              dbAccount.ID,
		AccountNumber:   dbAccount.AccountNumber,
		Region:          dbAccount.Region,
		Token:           dbAccount.Token,
		HostServers:     dbAccount.HostServers,
		CacheExpiration: dbAccount.CacheExpiration.Time,
		CreatedAt:       dbAccount.CreatedAt.Time,
		UpdatedAt:       dbAccount.UpdatedAt.Time,
	}

	if len(dbAccount.Servers) > 0 {
		if err := json.Unmarshal(dbAccount.Servers, &account.Servers); err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode cached server list"}
		}
	}

	return account, nil
}
