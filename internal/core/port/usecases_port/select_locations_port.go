package usecases_port

import "context"

type SelectLocationsUseCase interface {
	Execute(ctx context.Context, flags map[string]string) ([]string, error)
}
