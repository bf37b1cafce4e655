package region

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/accounts/model"
)

// GetRegion handles the business logic for retrieving a region by abbreviation
func (b *business) GetRegion(ctx context.Context, abbreviation string) (*model.Region, error) {
	dbRegion, err := b.regionRepo.GetRegion(ctx, abbreviation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "region not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get region"}
	}

	return convertDBRegionToModel(dbRegion), nil
}

// ListRegions handles the business logic for listing all defined regions
func (b *business) ListRegions(ctx context.Context) ([]*model.Region, error) {
	dbRegions, err := b.regionRepo.ListRegions(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list regions"}
	}

	result := make([]*model.Region, len(dbRegions))
	for i, dbRegion := range dbRegions {
		result[i] = convertDBRegionToModel(dbRegion)
	}
	return result, nil
}
