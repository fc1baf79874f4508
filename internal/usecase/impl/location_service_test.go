package impl

import (
	"context"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	mockRepo "zembil/internal/mocks/repository"
	"zembil/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_CreateLocation(t *testing.T) {
	ctx := context.Background()
	input := &usecase.CreateLocationInput{Latitude: 9.03, Longitude: 38.74, Description: "Piassa square"}

	t.Run("stores", func(t *testing.T) {
		repo := mockRepo.NewMockLocationRepository(t)
		svc := NewLocationService(repo)

		repo.EXPECT().CoordinatesExist(ctx, 9.03, 38.74).Return(false, nil)
		repo.EXPECT().CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

		location, err := svc.CreateLocation(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, &entity.Location{Latitude: 9.03, Longitude: 38.74, Description: "Piassa square"}, location)
	})

	t.Run("coordinates taken", func(t *testing.T) {
		repo := mockRepo.NewMockLocationRepository(t)
		svc := NewLocationService(repo)
		repo.EXPECT().CoordinatesExist(ctx, 9.03, 38.74).Return(true, nil)

		_, err := svc.CreateLocation(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateLocation)
	})
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name       string
		lat, lon   float64
		wantFields []string
	}{
		{name: "inside", lat: 9.03, lon: 38.74},
		{name: "latitude on the bound", lat: 90, lon: 0, wantFields: []string{"latitude"}},
		{name: "longitude on the bound", lat: 0, lon: -180, wantFields: []string{"longitude"}},
		{name: "both out", lat: -91, lon: 200, wantFields: []string{"latitude", "longitude"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCoordinates(tt.lat, tt.lon)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)

				return
			}

			var fieldErr *domainerrors.FieldError
			require.ErrorAs(t, err, &fieldErr)
			for _, field := range tt.wantFields {
				assert.Contains(t, fieldErr.Fields(), field)
			}
			assert.Len(t, fieldErr.Fields(), len(tt.wantFields))
		})
	}
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockLocationRepository(t)
	svc := NewLocationService(repo)

	repo.EXPECT().FindLocationByID(ctx, uint(1)).Return(nil, repository.ErrLocationNotFound)

	_, err := svc.GetLocation(ctx, 1)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}
