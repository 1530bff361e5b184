package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-health-journal/internal/domain/checkins"
)

type checkInRepo struct {
	mu sync.RWMutex
	// petID -> fecha -> check-in
	byPet map[string]map[string]checkins.CheckIn
}

func NewCheckInRepo() checkins.Repository {
	return &checkInRepo{
		byPet: make(map[string]map[string]checkins.CheckIn),
	}
}

func (r *checkInRepo) Create(ctx context.Context, c checkins.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.PetID) == "" {
		return errors.New("check-in id and pet id required")
	}

	days, ok := r.byPet[c.PetID]
	if !ok {
		days = make(map[string]checkins.CheckIn)
		r.byPet[c.PetID] = days
	}
	if _, exists := days[c.Date()]; exists {
		return checkins.ErrConflict
	}
	days[c.Date()] = c
	return nil
}

func (r *checkInRepo) GetByDate(ctx context.Context, petID, date string) (checkins.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byPet[petID][date]
	if !ok {
		return checkins.CheckIn{}, checkins.ErrNotFound
	}
	return c, nil
}

func (r *checkInRepo) ListByPet(ctx context.Context, petID string, f checkins.ListFilter) ([]checkins.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]checkins.CheckIn, 0, len(r.byPet[petID]))
	for date, c := range r.byPet[petID] {
		// YYYY-MM-DD compara bien como string
		if f.From != "" && date < f.From {
			continue
		}
		if f.To != "" && date > f.To {
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date() > out[j].Date()
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}
