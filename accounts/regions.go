package accounts

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/accounts/model"
)

type ListRegionsResponse struct {
	Regions []model.Region `json:"regions"`
}

// ListRegions returns every defined provider region. The lookup form uses the
// active ones as its data-center choices.
//
//encore:api public path=/v1/regions method=GET
func (s *Service) ListRegions(ctx context.Context) (*ListRegionsResponse, error) {
	regions, err := s.regions.ListRegions(ctx)
	if err != nil {
		rlog.Error("failed to list regions", "error", err)
		return nil, err
	}

	response := &ListRegionsResponse{
		Regions: make([]model.Region, len(regions)),
	}
	for i, r := range regions {
		response.Regions[i] = *r
	}
	return response, nil
}

type DefineRegionRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Abbreviation string `json:"abbreviation" validate:"required,alphanum,min=2,max=10"`
}

type RegionResponse struct {
	Region model.Region `json:"region"`
}

// DefineRegion adds a provider region to the set refreshes can target.
//
//encore:api public path=/v1/regions method=POST
func (s *Service) DefineRegion(ctx context.Context, req *DefineRegionRequest) (*RegionResponse, error) {
	result, err := s.regions.DefineRegion(ctx, &model.Region{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	})
	if err != nil {
		rlog.Error("failed to define region", "error", err, "abbreviation", req.Abbreviation)
		return nil, err
	}

	return &RegionResponse{Region: *result}, nil
}

// Validate implements validation for DefineRegionRequest
func (r *DefineRegionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type SetRegionStatusRequest struct {
	Active bool `json:"active"`
}

// SetRegionStatus activates or deactivates a region.
//
//encore:api public path=/v1/regions/:abbreviation/status method=POST
func (s *Service) SetRegionStatus(ctx context.Context, abbreviation string, req *SetRegionStatusRequest) (*RegionResponse, error) {
	result, err := s.regions.SetRegionStatus(ctx, abbreviation, req.Active)
	if err != nil {
		rlog.Error("failed to update region status", "error", err, "abbreviation", abbreviation)
		return nil, err
	}

	return &RegionResponse{Region: *result}, nil
}

// RemoveRegion deletes a region definition.
//
//encore:api public path=/v1/regions/:abbreviation method=DELETE
func (s *Service) RemoveRegion(ctx context.Context, abbreviation string) error {
	if err := s.regions.RemoveRegion(ctx, abbreviation); err != nil {
		rlog.Error("failed to remove region", "error", err, "abbreviation", abbreviation)
		return err
	}
	return nil
}
