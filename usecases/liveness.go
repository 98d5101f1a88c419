package usecases

import "context"

type LivenessUsecase struct{}

func (usecase LivenessUsecase) Liveness(ctx context.Context) error {
	// Nothing to probe: the service has no external dependencies.
	return nil
}
