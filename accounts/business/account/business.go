package account

import (
	"context"
	"time"

	"encore.app/accounts/model"
	"encore.app/accounts/repository/accounts"
	"encore.app/accounts/upstream"
)

type Business interface {
	// RefreshAccount runs the full fetch-reconcile-store cycle and returns the
	// account number the cache record is keyed by.
	RefreshAccount(ctx context.Context, p RefreshParams) (string, error)

	// GetFreshAccount returns the cached record only while its expiration has
	// not passed.
	GetFreshAccount(ctx context.Context, accountNumber string) (*model.AccountCache, error)

	// GetAccount returns the cached record regardless of freshness. Used as
	// the precondition check for the single-server path.
	GetAccount(ctx context.Context, accountNumber string) (*model.AccountCache, error)

	// HasServer reports whether a server is already catalogued under any account.
	HasServer(ctx context.Context, serverID string) (bool, error)

	// CheckAddServer appends one newly observed server and answers whether it
	// shares a host with another cached server. A nil result with a nil error
	// means the upstream data was unusable and the caller should retry later.
	CheckAddServer(ctx context.Context, p CheckServerParams) (*bool, error)

	// PurgeAccount removes the cached record entirely.
	PurgeAccount(ctx context.Context, accountNumber string) error
}

type RefreshParams struct {
	AccountNumber string
	Token         string
	Region        string
}

type CheckServerParams struct {
	AccountNumber string
	ServerID      string
	Token         string
	Region        string
}

type business struct {
	accountRepo accounts.Querier
	cloud       upstream.API
	cacheTTL    time.Duration
}

// NewAccountBusiness creates the account business layer. cacheTTL controls how
// long a refreshed record stays fresh.
func NewAccountBusiness(accountRepo accounts.Querier, cloud upstream.API, cacheTTL time.Duration) Business {
	return &business{
		accountRepo: accountRepo,
		cloud:       cloud,
		cacheTTL:    cacheTTL,
	}
}
