package pets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService() *Service {
	s := NewService(newTestRepo())
	s.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestCreate_DefaultsAndTrims(t *testing.T) {
	svc := newTestService()

	p, err := svc.Create(context.Background(), "user-1", CreateInput{Name: "  Milo ", Breed: " beagle "})
	require.NoError(t, err)

	assert.Equal(t, "Milo", p.Name)
	assert.Equal(t, "beagle", p.Breed)
	assert.Equal(t, SexUnknown, p.Sex)
	assert.Equal(t, "user-1", p.OwnerUserID)
	assert.NotEmpty(t, p.ID)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	future := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := map[string]CreateInput{
		"missing name":      {Name: " "},
		"bad sex":           {Name: "Milo", Sex: "other"},
		"bad size":          {Name: "Milo", Size: "huge"},
		"future birth date": {Name: "Milo", BirthDate: &future},
	}
	for name, in := range cases {
		_, err := svc.Create(ctx, "user-1", in)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}

	_, err := svc.Create(ctx, "", CreateInput{Name: "Milo"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthorize(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", Size: SizeSmall})
	require.NoError(t, err)

	got, err := svc.Authorize(ctx, p.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = svc.Authorize(ctx, p.ID, "someone-else")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Authorize(ctx, "missing", "owner-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Authorize(ctx, "", "owner-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Authorize(ctx, p.ID, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func ptr[T any](v T) *T { return &v }

func TestUpdate_PatchesOnlyGivenFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	bd := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", Breed: "beagle", Size: SizeSmall, BirthDate: &bd})
	require.NoError(t, err)

	later := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }

	got, err := svc.Update(ctx, p.ID, "owner-1", UpdateInput{Name: ptr(" Milo II "), Size: ptr(SizeMedium)})
	require.NoError(t, err)
	assert.Equal(t, "Milo II", got.Name)
	assert.Equal(t, SizeMedium, got.Size)
	assert.Equal(t, "beagle", got.Breed)
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, bd, *got.BirthDate)
	assert.Equal(t, later, got.UpdatedAt)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)

	got, err = svc.Update(ctx, p.ID, "owner-1", UpdateInput{ClearBirthDate: true})
	require.NoError(t, err)
	assert.Nil(t, got.BirthDate)

	stored, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.BirthDate)
	assert.Equal(t, "Milo II", stored.Name)
}

func TestUpdate_OwnerOnlyAndValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, p.ID, "someone-else", UpdateInput{Name: ptr("Rex")})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, "missing", "owner-1", UpdateInput{Name: ptr("Rex")})
	assert.ErrorIs(t, err, ErrNotFound)

	future := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := map[string]UpdateInput{
		"blank name":        {Name: ptr("  ")},
		"bad size":          {Size: ptr(Size("huge"))},
		"bad sex":           {Sex: ptr(Sex("other"))},
		"future birth date": {BirthDate: &future},
	}
	for name, in := range cases {
		_, err := svc.Update(ctx, p.ID, "owner-1", in)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}

	stored, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milo", stored.Name)
}
