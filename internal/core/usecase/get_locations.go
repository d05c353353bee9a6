package usecase

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetLocationsUseCase struct {
	storage port.ListingStoragePort
}

func NewGetLocationsUseCase(storage port.ListingStoragePort) *GetLocationsUseCase {
	return &GetLocationsUseCase{storage: storage}
}

// Execute возвращает актуальный набор локаций. Не кэшируется.
func (uc *GetLocationsUseCase) Execute(ctx context.Context) ([]string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetLocations"})

	locations, err := uc.storage.GetDistinctLocations(ctx)
	if err != nil {
		ucLogger.Error("Failed to get distinct locations", err, nil)
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	ucLogger.Debug("Locations fetched", port.Fields{"count": len(locations)})
	return locations, nil
}
