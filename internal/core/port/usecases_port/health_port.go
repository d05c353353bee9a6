package usecases_port

import "context"

type HealthCheckUseCase interface {
	Execute(ctx context.Context) error
}
