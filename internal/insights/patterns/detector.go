// Package patterns detecta alertas de un día y de tendencia sobre una ventana de
// observaciones ordenada por fecha descendente (índice 0 = hoy).
package patterns

import "pet-health-journal/internal/insights/observation"

const (
	trendDays             = 3
	persistentDays        = 7
	persistentMinDays     = 5
	persistentMinAbnormal = 2
	multiTrendMinFields   = 2
	recurringVomitMinDays = 2
)

// Detect evalúa las reglas de un día sobre window[0] y, si densitySufficient y hay
// al menos 3 días, las reglas de tendencia. Devuelve las alertas en orden de evaluación.
func Detect(window []observation.DailyObservation, densitySufficient bool) []Alert {
	alerts := make([]Alert, 0)
	if len(window) == 0 {
		return alerts
	}

	alerts = append(alerts, singleDay(window[0])...)

	if !densitySufficient || len(window) < trendDays {
		return alerts
	}

	alerts = append(alerts, trends(window)...)
	return alerts
}

func singleDay(today observation.DailyObservation) []Alert {
	out := make([]Alert, 0)

	if today.StoolQuality == observation.StoolBlood {
		out = append(out, newAlert(TypeBloodInStool))
	}
	if today.Vomiting == observation.VomitingDryHeaving {
		out = append(out, newAlert(TypeDryHeavingEmergency))
	}
	if today.Mood == observation.MoodAggressive {
		out = append(out, newAlert(TypeSuddenAggression))
	}
	heavyVomit := today.Vomiting == observation.VomitingMultiple || today.Vomiting == observation.VomitingDryHeaving
	if heavyVomit && observation.CountSignificantFields(today) >= 2 {
		out = append(out, newAlert(TypeVomitingPlusOther))
	}
	if observation.CountAbnormalFields(today) >= 3 {
		out = append(out, newAlert(TypeMultiSymptomAcute))
	}

	return out
}

func trends(window []observation.DailyObservation) []Alert {
	out := make([]Alert, 0)
	last3 := window[:trendDays]

	// Métricas con composite ya emitido; la regla individual se omite.
	suppressed := map[observation.Metric]bool{}

	if allAbnormal(last3, observation.MetricAppetite) {
		allMore := all(last3, func(o observation.DailyObservation) bool {
			return o.Appetite == observation.AppetiteMore
		})
		thirsty := all(last3, func(o observation.DailyObservation) bool {
			return o.WaterIntake == observation.WaterExcessive || o.WaterIntake == observation.WaterMore
		})

		if allMore && thirsty {
			out = append(out, newAlert(TypeAppetiteThirstIncrease))
			suppressed[observation.MetricAppetite] = true
		}

		if !suppressed[observation.MetricAppetite] {
			if allMore {
				out = append(out, newAlert(TypeAppetiteIncrease))
			} else {
				out = append(out, newAlert(TypeAppetiteDecline))
			}
		}
	}

	if allAbnormal(last3, observation.MetricEnergyLevel) {
		hyper := all(last3, func(o observation.DailyObservation) bool {
			return o.EnergyLevel == observation.EnergyHyperactive
		})
		if hyper {
			out = append(out, newAlert(TypeExcessiveEnergy))
		} else {
			out = append(out, newAlert(TypeEnergyDecline))
		}
	}

	if allAbnormal(last3, observation.MetricStoolQuality) {
		out = append(out, newAlert(TypeDigestiveIssues))
	}

	vomitDays := 0
	for _, o := range last3 {
		if o.Vomiting != observation.VomitingNone {
			vomitDays++
		}
	}
	if vomitDays >= recurringVomitMinDays {
		out = append(out, newAlert(TypeRecurringVomiting))
	}

	if allAbnormal(last3, observation.MetricWaterIntake) {
		out = append(out, newAlert(TypeAbnormalWater))
	}
	if allAbnormal(last3, observation.MetricMobility) {
		out = append(out, newAlert(TypeMobilityIssues))
	}
	if allAbnormal(last3, observation.MetricMood) {
		out = append(out, newAlert(TypeBehavioralChange))
	}

	persistentFields := 0
	for _, m := range observation.Metrics {
		if allAbnormal(last3, m) {
			persistentFields++
		}
	}
	if persistentFields >= multiTrendMinFields {
		out = append(out, newAlert(TypeMultiSymptomTrend))
	}

	if len(window) >= persistentDays {
		badDays := 0
		for _, o := range window[:persistentDays] {
			if observation.CountAbnormalFields(o) >= persistentMinAbnormal {
				badDays++
			}
		}
		if badDays >= persistentMinDays {
			out = append(out, newAlert(TypePersistentDecline))
		}
	}

	return out
}

func allAbnormal(days []observation.DailyObservation, m observation.Metric) bool {
	return all(days, func(o observation.DailyObservation) bool {
		return observation.IsAbnormal(o.Severity(m))
	})
}

func all(days []observation.DailyObservation, pred func(observation.DailyObservation) bool) bool {
	for _, o := range days {
		if !pred(o) {
			return false
		}
	}
	return true
}
