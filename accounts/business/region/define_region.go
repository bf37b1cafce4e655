package region

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"encore.app/accounts/model"
	"encore.app/accounts/repository/regions"
)

// DefineRegion handles the business logic for adding a new provider region
func (b *business) DefineRegion(ctx context.Context, region *model.Region) (*model.Region, error) {
	dbRegion, err := b.regionRepo.CreateRegion(ctx, regions.CreateRegionParams{
		Name:         region.Name,
		Abbreviation: region.Abbreviation,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "region is already defined"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to define region"}
	}

	return convertDBRegionToModel(dbRegion), nil
}

// SetRegionStatus handles activating or deactivating a region
func (b *business) SetRegionStatus(ctx context.Context, abbreviation string, active bool) (*model.Region, error) {
	dbRegion, err := b.regionRepo.SetRegionActive(ctx, regions.SetRegionActiveParams{
		Abbreviation: abbreviation,
		Active:       active,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "region not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update region status"}
	}

	return convertDBRegionToModel(dbRegion), nil
}

// RemoveRegion handles deleting a region definition
func (b *business) RemoveRegion(ctx context.Context, abbreviation string) error {
	rows, err := b.regionRepo.DeleteRegion(ctx, abbreviation)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to remove region"}
	}
	if rows == 0 {
		return &errs.Error{Code: errs.NotFound, Message: "region not found"}
	}
	return nil
}
