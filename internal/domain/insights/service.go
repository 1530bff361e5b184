package insights

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"pet-health-journal/internal/domain/alerts"
	"pet-health-journal/internal/domain/checkins"
	"pet-health-journal/internal/insights/consistency"
	"pet-health-journal/internal/insights/emergency"
	"pet-health-journal/internal/insights/observation"
	"pet-health-journal/internal/insights/patterns"
	"pet-health-journal/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD and not in the future")
	ErrTextTooLong  = errors.New("text too long")
)

const (
	DefaultWindowDays       = 7
	DefaultDensityThreshold = 0.70

	ReasonInsufficientHistory = "insufficient_history"
)

// WindowSource entrega la ventana de observaciones (la implementa checkins.Service).
type WindowSource interface {
	Window(ctx context.Context, petID, endDate string, days int) ([]observation.DailyObservation, error)
	Today() string
}

// AlertSyncer persiste el ciclo de vida de las alertas (alerts.Service).
type AlertSyncer interface {
	Sync(ctx context.Context, petID string, detected []patterns.Alert, trendsEvaluated bool) (alerts.SyncResult, error)
}

type Options struct {
	Logger           logger.Logger
	Cache            Cache
	Alerts           AlertSyncer
	WindowDays       int
	DensityThreshold float64
	TextMaxChars     int
}

type Service struct {
	windows WindowSource
	alerts  AlertSyncer
	cache   Cache
	log     logger.Logger

	windowDays int
	threshold  float64
	maxText    int
}

func NewService(windows WindowSource, opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	c := opts.Cache
	if c == nil {
		c = NopCache{}
	}
	days := opts.WindowDays
	if days <= 0 {
		days = DefaultWindowDays
	}
	th := opts.DensityThreshold
	if th <= 0 || th > 1 {
		th = DefaultDensityThreshold
	}
	maxText := opts.TextMaxChars
	if maxText <= 0 {
		maxText = checkins.DefaultFreeTextMaxChars
	}
	return &Service{
		windows:    windows,
		alerts:     opts.Alerts,
		cache:      c,
		log:        l.With(map[string]any{"module": "insights"}),
		windowDays: days,
		threshold:  th,
		maxText:    maxText,
	}
}

// ConsistencyReport. Score nil => Reason = insufficient_history.
type ConsistencyReport struct {
	Date        string `json:"date"`
	WindowDays  int    `json:"window_days"`
	LoggedDays  int    `json:"logged_days"`
	Score       *int   `json:"score"`
	MatchCount  int    `json:"match_count"`
	TotalFields int    `json:"total_fields"`
	Reason      string `json:"reason,omitempty"`
}

// PatternsReport es el snapshot de patrones a una fecha.
type PatternsReport struct {
	Date              string           `json:"date"`
	WindowDays        int              `json:"window_days"`
	LoggedDays        int              `json:"logged_days"`
	Density           float64          `json:"density"`
	DensitySufficient bool             `json:"density_sufficient"`
	Alerts            []patterns.Alert `json:"alerts"`
}

func (s *Service) Consistency(ctx context.Context, petID, date string) (ConsistencyReport, error) {
	date, err := s.resolveDate(petID, date)
	if err != nil {
		return ConsistencyReport{}, err
	}

	key := "consistency:" + date
	var cached ConsistencyReport
	if s.fromCache(ctx, petID, key, &cached) {
		return cached, nil
	}

	window, err := s.window(ctx, petID, date)
	if err != nil {
		return ConsistencyReport{}, err
	}

	rep := ConsistencyReport{
		Date:        date,
		WindowDays:  s.windowDays,
		LoggedDays:  len(window),
		TotalFields: observation.TotalFields,
	}
	if res := consistency.Score(window); res != nil {
		score := res.Score
		rep.Score = &score
		rep.MatchCount = res.MatchCount
		rep.TotalFields = res.TotalFields
	} else {
		rep.Reason = ReasonInsufficientHistory
	}

	s.toCache(ctx, petID, key, rep)
	return rep, nil
}

// Patterns corre el detector sobre la ventana que termina en date.
// Si date es hoy, sincroniza el ciclo de vida de alertas.
func (s *Service) Patterns(ctx context.Context, petID, date string) (PatternsReport, error) {
	date, err := s.resolveDate(petID, date)
	if err != nil {
		return PatternsReport{}, err
	}

	key := "patterns:" + date
	var cached PatternsReport
	if s.fromCache(ctx, petID, key, &cached) {
		return cached, nil
	}

	window, err := s.window(ctx, petID, date)
	if err != nil {
		return PatternsReport{}, err
	}

	density := float64(len(window)) / float64(s.windowDays)
	sufficient := density >= s.threshold

	detected := patterns.Detect(window, sufficient)
	if detected == nil {
		detected = []patterns.Alert{}
	}

	rep := PatternsReport{
		Date:              date,
		WindowDays:        s.windowDays,
		LoggedDays:        len(window),
		Density:           density,
		DensitySufficient: sufficient,
		Alerts:            detected,
	}

	if s.alerts != nil && date == s.windows.Today() {
		if _, err := s.alerts.Sync(ctx, petID, detected, sufficient); err != nil {
			return PatternsReport{}, err
		}
	}

	if len(detected) > 0 {
		types := make([]string, 0, len(detected))
		for _, a := range detected {
			types = append(types, string(a.PatternType))
		}
		s.log.Info("patterns detected", map[string]any{
			"pet_id": petID, "date": date, "patterns": types, "density": density,
		})
	}

	s.toCache(ctx, petID, key, rep)
	return rep, nil
}

// DetectEmergency expone el detector léxico sin persistir nada.
func (s *Service) DetectEmergency(text string) (emergency.Result, error) {
	if utf8.RuneCountInString(text) > s.maxText {
		return emergency.Result{}, ErrTextTooLong
	}
	return emergency.Detect(text), nil
}

// Invalidate cumple checkins.Invalidator.
func (s *Service) Invalidate(ctx context.Context, petID string) error {
	return s.cache.Invalidate(ctx, petID)
}

func (s *Service) resolveDate(petID, date string) (string, error) {
	if strings.TrimSpace(petID) == "" {
		return "", ErrInvalidInput
	}
	today := s.windows.Today()
	date = strings.TrimSpace(date)
	if date == "" {
		return today, nil
	}
	t, err := time.Parse(checkins.DateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	date = t.Format(checkins.DateLayout)
	if date > today {
		return "", ErrInvalidDate
	}
	return date, nil
}

func (s *Service) window(ctx context.Context, petID, date string) ([]observation.DailyObservation, error) {
	window, err := s.windows.Window(ctx, petID, date, s.windowDays)
	if errors.Is(err, checkins.ErrInvalidDate) {
		return nil, ErrInvalidDate
	}
	return window, err
}

// fromCache: un error de cache se loguea y se recalcula.
func (s *Service) fromCache(ctx context.Context, petID, key string, dst any) bool {
	raw, ok, err := s.cache.Get(ctx, petID, key)
	if err != nil {
		s.log.Warn("insights cache get failed", map[string]any{"pet_id": petID, "key": key, "err": err})
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn("insights cache entry corrupt", map[string]any{"pet_id": petID, "key": key, "err": err})
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, petID, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, petID, key, raw); err != nil {
		s.log.Warn("insights cache set failed", map[string]any{"pet_id": petID, "key": key, "err": err})
	}
}
