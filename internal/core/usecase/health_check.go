package usecase

import (
	"context"
	"fmt"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type HealthCheckUseCase struct {
	storage port.ListingStoragePort
}

func NewHealthCheckUseCase(storage port.ListingStoragePort) *HealthCheckUseCase {
	return &HealthCheckUseCase{storage: storage}
}

func (uc *HealthCheckUseCase) Execute(ctx context.Context) error {
	if err := uc.storage.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
