package region

import (
	"context"

	"encore.app/accounts/model"
	"encore.app/accounts/repository/regions"
)

type Business interface {
	// GetRegion looks up one region by its abbreviation.
	GetRegion(ctx context.Context, abbreviation string) (*model.Region, error)

	// ListRegions returns every defined region, active or not.
	ListRegions(ctx context.Context) ([]*model.Region, error)

	// DefineRegion adds a region to the set refreshes can target.
	DefineRegion(ctx context.Context, region *model.Region) (*model.Region, error)

	// SetRegionStatus activates or deactivates a region.
	SetRegionStatus(ctx context.Context, abbreviation string, active bool) (*model.Region, error)

	// RemoveRegion deletes a region definition.
	RemoveRegion(ctx context.Context, abbreviation string) error
}

type business struct {
	regionRepo regions.Querier
}

// NewRegionBusiness creates the region business layer.
func NewRegionBusiness(regionRepo regions.Querier) Business {
	return &business{
		regionRepo: regionRepo,
	}
}

// convertDBRegionToModel converts a database Region to a domain model Region
func convertDBRegionToModel(dbRegion regions.Region) *model.Region {
	return &model.Region{
		ID:           dbRegion.ID,
		Name:         dbRegion.Name,
		Abbreviation: dbRegion.Abbreviation,
		Active:       dbRegion.Active,
		CreatedAt:    dbRegion.CreatedAt.Time,
		UpdatedAt:    dbRegion.UpdatedAt.Time,
	}
}
