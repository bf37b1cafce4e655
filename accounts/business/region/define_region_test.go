package region

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/accounts/mocks/repository/region_repo"
	"encore.app/accounts/model"
	"encore.app/accounts/repository/regions"
)

func TestDefineRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := region_repo.NewMockQuerier(ctrl)
	business := &business{regionRepo: mockRepo}

	input := &model.Region{
		Name:         "Ashburn",
		Abbreviation: "iad",
	}

	testCases := []struct {
		name          string
		mockReturn    regions.Region
		mockError     error
		expectedError string
		expectSuccess bool
	}{
		{
			name: "happy_case",
			mockReturn: regions.Region{
				ID:           1,
				Name:         "Ashburn",
				Abbreviation: "iad",
				Active:       true,
			},
			expectSuccess: true,
		},
		{
			name:          "duplicate_abbreviation",
			mockError:     &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectedError: "region is already defined",
		},
		{
			name:          "general_error",
			mockError:     assert.AnError,
			expectedError: "failed to define region",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo.EXPECT().
				CreateRegion(gomock.Any(), regions.CreateRegionParams{
					Name:         "Ashburn",
					Abbreviation: "iad",
				}).
				Return(tc.mockReturn, tc.mockError)

			result, err := business.DefineRegion(context.Background(), input)

			if tc.expectSuccess {
				assert.NoError(t, err)
				assert.Equal(t, tc.mockReturn.Abbreviation, result.Abbreviation)
				assert.True(t, result.Active)
			} else {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}

func TestSetRegionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := region_repo.NewMockQuerier(ctrl)
	business := &business{regionRepo: mockRepo}

	t.Run("deactivate", func(t *testing.T) {
		mockRepo.EXPECT().
			SetRegionActive(gomock.Any(), regions.SetRegionActiveParams{
				Abbreviation: "iad",
				Active:       false,
			}).
			Return(regions.Region{Abbreviation: "iad", Active: false}, nil)

		result, err := business.SetRegionStatus(context.Background(), "iad", false)

		assert.NoError(t, err)
		assert.False(t, result.Active)
	})

	t.Run("not_found", func(t *testing.T) {
		mockRepo.EXPECT().
			SetRegionActive(gomock.Any(), gomock.Any()).
			Return(regions.Region{}, pgx.ErrNoRows)

		result, err := business.SetRegionStatus(context.Background(), "xyz", true)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "region not found")
	})
}

func TestRemoveRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := region_repo.NewMockQuerier(ctrl)
	business := &business{regionRepo: mockRepo}

	t.Run("removed", func(t *testing.T) {
		mockRepo.EXPECT().
			DeleteRegion(gomock.Any(), "iad").
			Return(int64(1), nil)

		assert.NoError(t, business.RemoveRegion(context.Background(), "iad"))
	})

	t.Run("not_found", func(t *testing.T) {
		mockRepo.EXPECT().
			DeleteRegion(gomock.Any(), "xyz").
			Return(int64(0), nil)

		err := business.RemoveRegion(context.Background(), "xyz")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "region not found")
	})
}
