package usecase

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/metrics"
)

type SearchListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewSearchListingsUseCase(storage port.ListingStoragePort) *SearchListingsUseCase {
	return &SearchListingsUseCase{storage: storage}
}

// Execute строит предикат из критериев и возвращает все подходящие объявления.
// Порядок определяется хранилищем. Пустой результат - не ошибка.
func (uc *SearchListingsUseCase) Execute(ctx context.Context, criteria domain.Criteria) ([]domain.Listing, error) {
	predicate := domain.BuildPredicate(criteria)

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "SearchListings",
		"constraints": predicate.Strings(),
	})

	for _, c := range predicate.Constraints() {
		metrics.SearchCriteriaTotal.WithLabelValues(string(c.Field), string(c.Operator)).Inc()
	}

	ucLogger.Info("Use case started", nil)

	var (
		listings []domain.Listing
		err      error
	)
	if predicate.IsEmpty() {
		listings, err = uc.storage.FindAll(ctx)
	} else {
		listings, err = uc.storage.FindByPredicate(ctx, predicate)
	}
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	metrics.SearchResults.Observe(float64(len(listings)))
	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(listings)})

	return listings, nil
}
