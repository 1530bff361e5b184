package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-health-journal/internal/domain/alerts"
)

type alertRepo struct {
	mu   sync.RWMutex
	byID map[string]alerts.Alert
}

func NewAlertRepo() alerts.Repository {
	return &alertRepo{
		byID: make(map[string]alerts.Alert),
	}
}

func (r *alertRepo) Create(ctx context.Context, a alerts.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("alert id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("alert already exists")
	}
	if a.Status == alerts.StatusActive {
		for _, cur := range r.byID {
			if cur.PetID == a.PetID && cur.PatternType == a.PatternType && cur.Status == alerts.StatusActive {
				return alerts.ErrConflict
			}
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *alertRepo) Update(ctx context.Context, a alerts.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return alerts.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *alertRepo) ListByPet(ctx context.Context, petID string, status alerts.Status) ([]alerts.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]alerts.Alert, 0)
	for _, a := range r.byID {
		if a.PetID != petID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FirstDetected.Equal(out[j].FirstDetected) {
			return out[i].PatternType < out[j].PatternType
		}
		return out[i].FirstDetected.After(out[j].FirstDetected)
	})
	return out, nil
}
