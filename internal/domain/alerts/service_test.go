package alerts

import (
	"context"
	"sync"
	"testing"
	"time"

	"pet-health-journal/internal/insights/patterns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	mu   sync.Mutex
	byID map[string]Alert

	// retrasa ListByPet para abrir la ventana entre lectura y alta
	listDelay time.Duration
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Alert{}}
}

func (r *testRepo) Create(ctx context.Context, a Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cur := range r.byID {
		if cur.PetID == a.PetID && cur.PatternType == a.PatternType && cur.Status == StatusActive {
			return ErrConflict
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string, status Status) ([]Alert, error) {
	if r.listDelay > 0 {
		time.Sleep(r.listDelay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Alert, 0)
	for _, a := range r.byID {
		if a.PetID == petID && (status == "" || a.Status == status) {
			out = append(out, a)
		}
	}
	return out, nil
}

// racyRepo simula otra instancia que abre la alerta justo antes del insert.
type racyRepo struct {
	*testRepo
	once sync.Once
}

func (r *racyRepo) Create(ctx context.Context, a Alert) error {
	r.once.Do(func() {
		other := a
		other.ID = "other-instance"
		_ = r.testRepo.Create(ctx, other)
	})
	return r.testRepo.Create(ctx, a)
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func detected(types ...patterns.Type) []patterns.Alert {
	out := make([]patterns.Alert, 0, len(types))
	for _, t := range types {
		out = append(out, patterns.Alert{PatternType: t, AlertLevel: patterns.LevelWatch, Title: string(t)})
	}
	return out
}

func TestSync_Lifecycle(t *testing.T) {
	repo := newTestRepo()
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewService(repo, nil)
	svc.now = c.now
	ctx := context.Background()

	// día 1: se abren dos
	res, err := svc.Sync(ctx, "pet-1", detected(patterns.TypeEnergyDecline, patterns.TypeBloodInStool), true)
	require.NoError(t, err)
	assert.Len(t, res.Opened, 2)
	assert.Empty(t, res.Resolved)

	// día 2: energy sigue, blood desaparece
	c.t = c.t.Add(24 * time.Hour)
	res, err = svc.Sync(ctx, "pet-1", detected(patterns.TypeEnergyDecline), true)
	require.NoError(t, err)
	assert.Empty(t, res.Opened)
	require.Len(t, res.Refreshed, 1)
	require.Len(t, res.Resolved, 1)

	refreshed := res.Refreshed[0]
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), refreshed.FirstDetected)
	assert.Equal(t, c.t, refreshed.LastDetected)

	resolved := res.Resolved[0]
	assert.Equal(t, patterns.TypeBloodInStool, resolved.PatternType)
	assert.Equal(t, StatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, c.t, *resolved.ResolvedAt)

	// reaparece: alerta nueva, la resuelta queda en historial
	res, err = svc.Sync(ctx, "pet-1", detected(patterns.TypeEnergyDecline, patterns.TypeBloodInStool), true)
	require.NoError(t, err)
	assert.Len(t, res.Opened, 1)

	all, err := svc.ListByPet(ctx, "pet-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := svc.ListByPet(ctx, "pet-1", StatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestSync_KeepsTrendAlertsWhenNotEvaluated(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Sync(ctx, "pet-1", detected(patterns.TypeMobilityIssues, patterns.TypeSuddenAggression), true)
	require.NoError(t, err)

	res, err := svc.Sync(ctx, "pet-1", nil, false)
	require.NoError(t, err)

	require.Len(t, res.Resolved, 1)
	assert.Equal(t, patterns.TypeSuddenAggression, res.Resolved[0].PatternType)

	active, err := svc.ListByPet(ctx, "pet-1", StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, patterns.TypeMobilityIssues, active[0].PatternType)
}

func TestSync_IgnoresDuplicateDetections(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	res, err := svc.Sync(context.Background(), "pet-1", detected(patterns.TypeAbnormalWater, patterns.TypeAbnormalWater), true)
	require.NoError(t, err)
	assert.Len(t, res.Opened, 1)
}

func TestListByPet_Validation(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	_, err := svc.ListByPet(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListByPet(context.Background(), "pet-1", "open")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Sync(context.Background(), " ", nil, true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSync_ConcurrentCallsOpenOneAlert(t *testing.T) {
	repo := newTestRepo()
	repo.listDelay = 2 * time.Millisecond
	svc := NewService(repo, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Sync(ctx, "pet-1", detected(patterns.TypeBloodInStool), true)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	active, err := svc.ListByPet(ctx, "pet-1", StatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestSync_ConflictOnCreateRefreshesExisting(t *testing.T) {
	repo := &racyRepo{testRepo: newTestRepo()}
	svc := NewService(repo, nil)
	ctx := context.Background()

	res, err := svc.Sync(ctx, "pet-1", detected(patterns.TypeBloodInStool), true)
	require.NoError(t, err)
	assert.Empty(t, res.Opened)
	require.Len(t, res.Refreshed, 1)
	assert.Equal(t, "other-instance", res.Refreshed[0].ID)

	active, err := svc.ListByPet(ctx, "pet-1", StatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
