package region

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/accounts/mocks/repository/region_repo"
	"encore.app/accounts/repository/regions"
)

func TestGetRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := region_repo.NewMockQuerier(ctrl)
	business := &business{regionRepo: mockRepo}

	t.Run("happy_case", func(t *testing.T) {
		mockRepo.EXPECT().
			GetRegion(gomock.Any(), "iad").
			Return(regions.Region{
				ID:           1,
				Name:         "Ashburn",
				Abbreviation: "iad",
				Active:       true,
			}, nil)

		result, err := business.GetRegion(context.Background(), "iad")

		assert.NoError(t, err)
		assert.Equal(t, "iad", result.Abbreviation)
		assert.Equal(t, "Ashburn", result.Name)
		assert.True(t, result.Active)
	})

	t.Run("not_found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetRegion(gomock.Any(), "xyz").
			Return(regions.Region{}, pgx.ErrNoRows)

		result, err := business.GetRegion(context.Background(), "xyz")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "region not found")
	})
}

func TestListRegions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := region_repo.NewMockQuerier(ctrl)
	business := &business{regionRepo: mockRepo}

	t.Run("happy_case", func(t *testing.T) {
		mockRepo.EXPECT().
			ListRegions(gomock.Any()).
			Return([]regions.Region{
				{Abbreviation: "iad", Active: true},
				{Abbreviation: "ord", Active: false},
			}, nil)

		result, err := business.ListRegions(context.Background())

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "iad", result[0].Abbreviation)
		assert.False(t, result[1].Active)
	})

	t.Run("store_error", func(t *testing.T) {
		mockRepo.EXPECT().
			ListRegions(gomock.Any()).
			Return(nil, assert.AnError)

		result, err := business.ListRegions(context.Background())

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to list regions")
	})
}
