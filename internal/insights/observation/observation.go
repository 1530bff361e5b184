package observation

import (
	"errors"
	"fmt"
)

// DailyObservation es el registro diario (check-in) de un perro.
// CheckInDate es YYYY-MM-DD y se compara de forma léxica; no se interpreta zona horaria.
type DailyObservation struct {
	CheckInDate string

	Appetite     Appetite
	WaterIntake  WaterIntake
	EnergyLevel  EnergyLevel
	StoolQuality StoolQuality
	Vomiting     Vomiting
	Mobility     Mobility
	Mood         Mood

	AdditionalSymptoms []string
	FreeText           string

	// EmergencyFlagged lo setea quien llama a partir de emergency.Detect(FreeText).
	EmergencyFlagged bool
}

// Baseline devuelve una observación con los 7 campos en su valor normal.
func Baseline(date string) DailyObservation {
	return DailyObservation{
		CheckInDate:  date,
		Appetite:     AppetiteNormal,
		WaterIntake:  WaterNormal,
		EnergyLevel:  EnergyNormal,
		StoolQuality: StoolNormal,
		Vomiting:     VomitingNone,
		Mobility:     MobilityNormal,
		Mood:         MoodNormal,
	}
}

// Value devuelve el valor crudo de la métrica (útil para comparar modas).
func (o DailyObservation) Value(m Metric) string {
	switch m {
	case MetricAppetite:
		return string(o.Appetite)
	case MetricWaterIntake:
		return string(o.WaterIntake)
	case MetricEnergyLevel:
		return string(o.EnergyLevel)
	case MetricStoolQuality:
		return string(o.StoolQuality)
	case MetricVomiting:
		return string(o.Vomiting)
	case MetricMobility:
		return string(o.Mobility)
	case MetricMood:
		return string(o.Mood)
	}
	return ""
}

// Severity clasifica el valor de una métrica usando la tabla fija.
func (o DailyObservation) Severity(m Metric) Severity {
	switch m {
	case MetricAppetite:
		return o.Appetite.Severity()
	case MetricWaterIntake:
		return o.WaterIntake.Severity()
	case MetricEnergyLevel:
		return o.EnergyLevel.Severity()
	case MetricStoolQuality:
		return o.StoolQuality.Severity()
	case MetricVomiting:
		return o.Vomiting.Severity()
	case MetricMobility:
		return o.Mobility.Severity()
	case MetricMood:
		return o.Mood.Severity()
	}
	return SeverityBaseline
}

// Validate revisa que los 7 campos pertenezcan a su enum.
// Solo se usa en el borde (HTTP / storage); el motor asume datos válidos.
func (o DailyObservation) Validate() error {
	for _, m := range Metrics {
		if !validValue(m, o.Value(m)) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, m, o.Value(m))
		}
	}
	return nil
}

func validValue(m Metric, v string) bool {
	switch m {
	case MetricAppetite:
		return Appetite(v).Valid()
	case MetricWaterIntake:
		return WaterIntake(v).Valid()
	case MetricEnergyLevel:
		return EnergyLevel(v).Valid()
	case MetricStoolQuality:
		return StoolQuality(v).Valid()
	case MetricVomiting:
		return Vomiting(v).Valid()
	case MetricMobility:
		return Mobility(v).Valid()
	case MetricMood:
		return Mood(v).Valid()
	}
	return false
}

var (
	ErrInvalidValue   = errors.New("invalid metric value")
	ErrUnsortedWindow = errors.New("observations must be sorted by check_in_date descending")
)

// CheckDescending valida el orden que asumen consistency y patterns
// (índice 0 = más reciente, sin fechas repetidas).
func CheckDescending(window []DailyObservation) error {
	for i := 1; i < len(window); i++ {
		if window[i-1].CheckInDate <= window[i].CheckInDate {
			return fmt.Errorf("%w: %s before %s at index %d",
				ErrUnsortedWindow, window[i-1].CheckInDate, window[i].CheckInDate, i)
		}
	}
	return nil
}
