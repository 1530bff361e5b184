package alerts

import "context"

type Repository interface {
	Create(ctx context.Context, a Alert) error
	Update(ctx context.Context, a Alert) error
	// ListByPet filtra por status ("" = todos), ordenado por first_detected DESC.
	ListByPet(ctx context.Context, petID string, status Status) ([]Alert, error)
}
