package pets

import (
	"context"
	"errors"
	"strings"
)

// Authorize devuelve la mascota si userID es el dueño.
// ErrNotFound si no existe, ErrForbidden si es de otro usuario.
func (s *Service) Authorize(ctx context.Context, petID, userID string) (Pet, error) {
	if strings.TrimSpace(userID) == "" {
		return Pet{}, ErrForbidden
	}
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, err
	}
	if p.OwnerUserID != userID {
		return Pet{}, ErrForbidden
	}
	return p, nil
}
