package usecases_port

import "context"

type GetLocationsUseCase interface {
	Execute(ctx context.Context) ([]string, error)
}
