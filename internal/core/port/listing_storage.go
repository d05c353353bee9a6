package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// ListingStoragePort - хранилище объявлений. Для ядра оно только на чтение.
type ListingStoragePort interface {
	FindAll(ctx context.Context) ([]domain.Listing, error)
	FindByPredicate(ctx context.Context, predicate domain.Predicate) ([]domain.Listing, error)
	GetDistinctLocations(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
