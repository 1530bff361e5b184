package alerts

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-health-journal/internal/insights/patterns"
	"pet-health-journal/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("alert not found")
	// ya hay una alerta activa del mismo tipo para la mascota
	ErrConflict = errors.New("active alert already exists")
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time

	// Sync se serializa por mascota
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		log:   log.With(map[string]any{"module": "alerts"}),
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Service) lockPet(petID string) func() {
	s.mu.Lock()
	l, ok := s.locks[petID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[petID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// SyncResult resume qué cambió en una sincronización.
type SyncResult struct {
	Opened    []Alert
	Refreshed []Alert
	Resolved  []Alert
}

// Sync reconcilia las alertas activas de la mascota con lo detectado ahora:
// abre las nuevas, refresca last_detected de las que siguen y resuelve las ausentes.
// Con trendsEvaluated=false (densidad insuficiente) las alertas de tendencia
// activas no se resuelven: no hay datos para afirmar que desaparecieron.
func (s *Service) Sync(ctx context.Context, petID string, detected []patterns.Alert, trendsEvaluated bool) (SyncResult, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return SyncResult{}, ErrInvalidInput
	}

	unlock := s.lockPet(petID)
	defer unlock()

	active, err := s.repo.ListByPet(ctx, petID, StatusActive)
	if err != nil {
		return SyncResult{}, err
	}

	byType := make(map[patterns.Type]Alert, len(active))
	for _, a := range active {
		byType[a.PatternType] = a
	}

	now := s.now()
	var res SyncResult
	present := make(map[patterns.Type]struct{}, len(detected))

	for _, d := range detected {
		if _, dup := present[d.PatternType]; dup {
			continue
		}
		present[d.PatternType] = struct{}{}

		if cur, ok := byType[d.PatternType]; ok {
			updated, err := s.refresh(ctx, cur, d, now)
			if err != nil {
				return SyncResult{}, err
			}
			res.Refreshed = append(res.Refreshed, updated)
			continue
		}

		a := Alert{
			ID:            uuid.NewString(),
			PetID:         petID,
			PatternType:   d.PatternType,
			Level:         d.AlertLevel,
			Title:         d.Title,
			Message:       d.Message,
			Status:        StatusActive,
			FirstDetected: now,
			LastDetected:  now,
		}
		err = s.repo.Create(ctx, a)
		if errors.Is(err, ErrConflict) {
			// otra instancia la abrió entre la lectura y el insert
			updated, err := s.refreshActive(ctx, petID, d, now)
			if err != nil {
				return SyncResult{}, err
			}
			res.Refreshed = append(res.Refreshed, updated)
			continue
		}
		if err != nil {
			return SyncResult{}, err
		}
		res.Opened = append(res.Opened, a)
		s.log.Info("alert opened", map[string]any{
			"pet_id": petID, "alert_id": a.ID, "pattern": string(a.PatternType), "level": string(a.Level),
		})
	}

	for _, a := range active {
		if _, ok := present[a.PatternType]; ok {
			continue
		}
		if a.PatternType.IsTrend() && !trendsEvaluated {
			continue
		}
		t := now
		a.Status = StatusResolved
		a.ResolvedAt = &t
		if err := s.repo.Update(ctx, a); err != nil {
			return SyncResult{}, err
		}
		res.Resolved = append(res.Resolved, a)
		s.log.Info("alert resolved", map[string]any{
			"pet_id": petID, "alert_id": a.ID, "pattern": string(a.PatternType),
		})
	}

	return res, nil
}

func (s *Service) refresh(ctx context.Context, cur Alert, d patterns.Alert, now time.Time) (Alert, error) {
	cur.LastDetected = now
	cur.Level = d.AlertLevel
	cur.Title = d.Title
	cur.Message = d.Message
	if err := s.repo.Update(ctx, cur); err != nil {
		return Alert{}, err
	}
	return cur, nil
}

func (s *Service) refreshActive(ctx context.Context, petID string, d patterns.Alert, now time.Time) (Alert, error) {
	active, err := s.repo.ListByPet(ctx, petID, StatusActive)
	if err != nil {
		return Alert{}, err
	}
	for _, a := range active {
		if a.PatternType == d.PatternType {
			return s.refresh(ctx, a, d, now)
		}
	}
	return Alert{}, ErrConflict
}

func (s *Service) ListByPet(ctx context.Context, petID string, status Status) ([]Alert, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidInput
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID, status)
}
