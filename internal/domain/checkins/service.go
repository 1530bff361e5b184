package checkins

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"pet-health-journal/internal/insights/emergency"
	"pet-health-journal/internal/insights/observation"
	"pet-health-journal/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidDate     = errors.New("check_in_date must be YYYY-MM-DD and not in the future")
	ErrFreeTextTooLong = errors.New("free_text too long")
	ErrNotFound        = errors.New("check-in not found")
	ErrConflict        = errors.New("check-in already exists for this date")
)

const (
	DefaultFreeTextMaxChars = 2000
	maxListLimit            = 366
)

// Invalidator recibe aviso cuando cambian los check-ins de una mascota
// (lo implementa el cache de insights).
type Invalidator interface {
	Invalidate(ctx context.Context, petID string) error
}

type Options struct {
	Logger           logger.Logger
	Invalidator      Invalidator
	FreeTextMaxChars int
}

type Service struct {
	repo        Repository
	log         logger.Logger
	invalidator Invalidator
	maxText     int
	now         func() time.Time
}

func NewService(repo Repository, opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	maxText := opts.FreeTextMaxChars
	if maxText <= 0 {
		maxText = DefaultFreeTextMaxChars
	}
	return &Service{
		repo:        repo,
		log:         l.With(map[string]any{"module": "checkins"}),
		invalidator: opts.Invalidator,
		maxText:     maxText,
		now:         time.Now,
	}
}

type CreateInput struct {
	Date string

	Appetite     observation.Appetite
	WaterIntake  observation.WaterIntake
	EnergyLevel  observation.EnergyLevel
	StoolQuality observation.StoolQuality
	Vomiting     observation.Vomiting
	Mobility     observation.Mobility
	Mood         observation.Mood

	AdditionalSymptoms []string
	FreeText           string
}

// CreateResult incluye el resultado de emergencia calculado sobre free_text.
type CreateResult struct {
	CheckIn   CheckIn
	Emergency emergency.Result
}

func (s *Service) Create(ctx context.Context, petID, actorID string, in CreateInput) (CreateResult, error) {
	petID = strings.TrimSpace(petID)
	actorID = strings.TrimSpace(actorID)
	if petID == "" || actorID == "" {
		return CreateResult{}, ErrInvalidInput
	}

	date, err := s.validDate(in.Date)
	if err != nil {
		return CreateResult{}, err
	}

	text := strings.TrimSpace(in.FreeText)
	if utf8.RuneCountInString(text) > s.maxText {
		return CreateResult{}, ErrFreeTextTooLong
	}

	obs := observation.DailyObservation{
		CheckInDate:        date,
		Appetite:           in.Appetite,
		WaterIntake:        in.WaterIntake,
		EnergyLevel:        in.EnergyLevel,
		StoolQuality:       in.StoolQuality,
		Vomiting:           in.Vomiting,
		Mobility:           in.Mobility,
		Mood:               in.Mood,
		AdditionalSymptoms: normalizeSymptoms(in.AdditionalSymptoms),
		FreeText:           text,
	}
	if err := obs.Validate(); err != nil {
		return CreateResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	em := emergency.Detect(text)
	obs.EmergencyFlagged = em.IsEmergency

	c := CheckIn{
		ID:          uuid.NewString(),
		PetID:       petID,
		Observation: obs,
		RecordedBy:  actorID,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return CreateResult{}, err
	}

	fields := map[string]any{"pet_id": petID, "date": date, "check_in_id": c.ID}
	if em.IsEmergency {
		fields["matched_patterns"] = em.MatchedPatterns
		s.log.Warn("emergency language in check-in", fields)
	} else {
		s.log.Info("check-in recorded", fields)
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, petID); err != nil {
			// el cache tiene TTL; no fallamos el alta por esto
			s.log.Warn("insights cache invalidation failed", map[string]any{"pet_id": petID, "err": err})
		}
	}

	return CreateResult{CheckIn: c, Emergency: em}, nil
}

func (s *Service) GetByDate(ctx context.Context, petID, date string) (CheckIn, error) {
	if strings.TrimSpace(petID) == "" {
		return CheckIn{}, ErrInvalidInput
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return CheckIn{}, ErrInvalidDate
	}
	return s.repo.GetByDate(ctx, petID, date)
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]CheckIn, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidInput
	}
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	return s.repo.ListByPet(ctx, petID, filter)
}

// Window devuelve las observaciones en [endDate-days+1, endDate], más reciente primero.
// len(resultado) es la cantidad de días registrados en la ventana.
func (s *Service) Window(ctx context.Context, petID, endDate string, days int) ([]observation.DailyObservation, error) {
	if days <= 0 {
		return nil, ErrInvalidInput
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	from := end.AddDate(0, 0, -(days - 1)).Format(DateLayout)

	items, err := s.repo.ListByPet(ctx, petID, ListFilter{From: from, To: endDate, Limit: days})
	if err != nil {
		return nil, err
	}

	out := make([]observation.DailyObservation, 0, len(items))
	for _, c := range items {
		out = append(out, c.Observation)
	}

	if err := observation.CheckDescending(out); err != nil {
		// el repo debería ordenar; si no, es un bug de integración
		s.log.Error("check-in window out of order", map[string]any{"pet_id": petID, "err": err})
		return nil, err
	}
	return out, nil
}

// Today en formato YYYY-MM-DD, siempre en UTC.
func (s *Service) Today() string {
	return s.now().UTC().Format(DateLayout)
}

func (s *Service) validDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.Today(), nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", ErrInvalidDate
	}
	date := t.Format(DateLayout)
	if date > s.Today() {
		return "", ErrInvalidDate
	}
	return date, nil
}

func normalizeSymptoms(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
