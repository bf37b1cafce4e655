package account

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/accounts/model"
	"encore.app/accounts/repository/accounts"
)

// GetFreshAccount returns the cached record while cache_expiration has not
// passed. Absence means "no fresh cache, must refresh" to the caller.
func (b *business) GetFreshAccount(ctx context.Context, accountNumber string) (*model.AccountCache, error) {
	dbAccount, err := b.accountRepo.GetFreshAccount(ctx, accounts.GetFreshAccountParams{
		AccountNumber:   accountNumber,
		CacheExpiration: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "no fresh cache for account"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get account"}
	}

	return convertDBAccountToModel(dbAccount)
}

// GetAccount returns the cached record regardless of staleness.
func (b *business) GetAccount(ctx context.Context, accountNumber string) (*model.AccountCache, error) {
	dbAccount, err := b.accountRepo.GetAccount(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "account not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get account"}
	}

	return convertDBAccountToModel(dbAccount)
}
