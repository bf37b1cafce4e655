package account

import (
	"context"

	"encore.dev/beta/errs"
)

// PurgeAccount removes the cached record for the account entirely. The next
// lookup has to run a full refresh.
func (b *business) PurgeAccount(ctx context.Context, accountNumber string) error {
	rows, err := b.accountRepo.DeleteAccount(ctx, accountNumber)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to purge account cache"}
	}
	if rows == 0 {
		return &errs.Error{Code: errs.NotFound, Message: "account not found"}
	}
	return nil
}
