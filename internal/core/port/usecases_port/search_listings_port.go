package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type SearchListingsUseCase interface {
	Execute(ctx context.Context, criteria domain.Criteria) ([]domain.Listing, error)
}
