package checkins

import (
	"time"

	"pet-health-journal/internal/insights/observation"
)

// DateLayout es el formato de check_in_date.
const DateLayout = "2006-01-02"

// CheckIn es la observación diaria persistida (única por pet + fecha).
type CheckIn struct {
	ID    string
	PetID string

	Observation observation.DailyObservation

	RecordedBy string

	CreatedAt time.Time
}

// Date atajo a Observation.CheckInDate.
func (c CheckIn) Date() string {
	return c.Observation.CheckInDate
}
