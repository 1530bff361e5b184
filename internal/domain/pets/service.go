package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Breed     string
	Size      Size
	Sex       Sex
	BirthDate *time.Time
	Notes     string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	sex := in.Sex
	if sex == "" {
		sex = SexUnknown
	}
	if !sex.Valid() {
		return Pet{}, ErrInvalidInput
	}
	if in.Size != "" && !in.Size.Valid() {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	if in.BirthDate != nil && in.BirthDate.After(now) {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		Size:        in.Size,
		Sex:         sex,
		BirthDate:   in.BirthDate,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// UpdateInput es un PATCH: nil = no tocar. ClearBirthDate borra la fecha.
type UpdateInput struct {
	Name           *string
	Breed          *string
	Size           *Size
	Sex            *Sex
	BirthDate      *time.Time
	ClearBirthDate bool
	Notes          *string
}

// Update modifica el perfil. Solo el dueño puede hacerlo.
func (s *Service) Update(ctx context.Context, petID, userID string, in UpdateInput) (Pet, error) {
	p, err := s.Authorize(ctx, petID, userID)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Size != nil {
		if *in.Size != "" && !in.Size.Valid() {
			return Pet{}, ErrInvalidInput
		}
		p.Size = *in.Size
	}
	if in.Sex != nil {
		if !in.Sex.Valid() {
			return Pet{}, ErrInvalidInput
		}
		p.Sex = *in.Sex
	}
	switch {
	case in.ClearBirthDate:
		p.BirthDate = nil
	case in.BirthDate != nil:
		if in.BirthDate.After(now) {
			return Pet{}, ErrInvalidInput
		}
		bd := *in.BirthDate
		p.BirthDate = &bd
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}

	p.UpdatedAt = now
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}
