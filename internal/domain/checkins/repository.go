package checkins

import "context"

type Repository interface {
	// Create devuelve ErrConflict si ya existe un check-in para (pet, fecha).
	Create(ctx context.Context, c CheckIn) error
	GetByDate(ctx context.Context, petID, date string) (CheckIn, error)
	// ListByPet devuelve ordenado por check_in_date DESC.
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]CheckIn, error)
}

// ListFilter usa fechas YYYY-MM-DD inclusivas; vacías = sin límite.
type ListFilter struct {
	From  string
	To    string
	Limit int
}
