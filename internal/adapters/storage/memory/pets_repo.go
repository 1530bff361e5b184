package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-health-journal/internal/domain/pets"
)

// petRepo guarda perfiles por id y mantiene un índice por dueño.
type petRepo struct {
	mu      sync.RWMutex
	byID    map[string]pets.Pet
	byOwner map[string]map[string]struct{}
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID:    make(map[string]pets.Pet),
		byOwner: make(map[string]map[string]struct{}),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byID[p.ID]; dup {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p

	ids, ok := r.byOwner[p.OwnerUserID]
	if !ok {
		ids = make(map[string]struct{})
		r.byOwner[p.OwnerUserID] = ids
	}
	ids[p.ID] = struct{}{}
	return nil
}

// Update reemplaza el perfil; el dueño no cambia.
func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[p.ID]
	if !ok {
		return pets.ErrNotFound
	}
	p.OwnerUserID = cur.OwnerUserID
	p.CreatedAt = cur.CreatedAt
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byOwner[ownerUserID]
	out := make([]pets.Pet, 0, len(ids))
	for id := range ids {
		out = append(out, r.byID[id])
	}

	// mismo orden que postgres: created_at asc, id como desempate
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
