package usecase

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type SelectLocationsUseCase struct {
	storage port.ListingStoragePort
}

func NewSelectLocationsUseCase(storage port.ListingStoragePort) *SelectLocationsUseCase {
	return &SelectLocationsUseCase{storage: storage}
}

// Execute возвращает отмеченные пользователем локации в порядке перечисления.
// Флаги для значений, которых нет в хранилище, игнорируются.
func (uc *SelectLocationsUseCase) Execute(ctx context.Context, flags map[string]string) ([]string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":        "SelectLocations",
		"submitted_flags": len(flags),
	})

	universe, err := uc.storage.GetDistinctLocations(ctx)
	if err != nil {
		ucLogger.Error("Failed to get distinct locations", err, nil)
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	selected := domain.SelectFlagged(universe, flags)
	ucLogger.Info("Locations selected", port.Fields{"universe": len(universe), "selected": len(selected)})

	return selected, nil
}
