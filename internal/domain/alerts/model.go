package alerts

import (
	"time"

	"pet-health-journal/internal/insights/patterns"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusResolved
}

// Alert es un patrón con identidad propia. Mientras está activo hay a lo sumo
// uno por (pet, pattern_type).
type Alert struct {
	ID    string
	PetID string

	PatternType patterns.Type
	Level       patterns.Level
	Title       string
	Message     string

	Status Status

	FirstDetected time.Time
	LastDetected  time.Time
	ResolvedAt    *time.Time
}
