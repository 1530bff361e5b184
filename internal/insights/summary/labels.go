package summary

import "pet-health-journal/internal/insights/observation"

// Label devuelve el texto legible para un valor no-baseline.
// Para valores baseline devuelve "".
func Label(m observation.Metric, value string) string {
	switch m {
	case observation.MetricAppetite:
		return appetiteLabel(observation.Appetite(value))
	case observation.MetricWaterIntake:
		return waterLabel(observation.WaterIntake(value))
	case observation.MetricEnergyLevel:
		return energyLabel(observation.EnergyLevel(value))
	case observation.MetricStoolQuality:
		return stoolLabel(observation.StoolQuality(value))
	case observation.MetricVomiting:
		return vomitingLabel(observation.Vomiting(value))
	case observation.MetricMobility:
		return mobilityLabel(observation.Mobility(value))
	case observation.MetricMood:
		return moodLabel(observation.Mood(value))
	}
	return ""
}

func appetiteLabel(v observation.Appetite) string {
	switch v {
	case observation.AppetiteLess:
		return "Eating less than usual"
	case observation.AppetiteBarely:
		return "Barely eating"
	case observation.AppetiteRefusing:
		return "Refusing food"
	case observation.AppetiteMore:
		return "Eating more than usual (polyphagia)"
	}
	return ""
}

func waterLabel(v observation.WaterIntake) string {
	switch v {
	case observation.WaterLess:
		return "Drinking less than usual"
	case observation.WaterMore:
		return "Drinking more than usual"
	case observation.WaterMuchLess:
		return "Drinking much less than usual"
	case observation.WaterExcessive:
		return "Excessive thirst (polydipsia)"
	}
	return ""
}

func energyLabel(v observation.EnergyLevel) string {
	switch v {
	case observation.EnergyLow:
		return "Lower energy than usual"
	case observation.EnergyLethargic:
		return "Lethargic"
	case observation.EnergyBarelyMoving:
		return "Barely moving"
	case observation.EnergyHyperactive:
		return "Unusually hyperactive"
	}
	return ""
}

func stoolLabel(v observation.StoolQuality) string {
	switch v {
	case observation.StoolSoft:
		return "Soft stool"
	case observation.StoolDiarrhea:
		return "Diarrhea"
	case observation.StoolBlood:
		return "Blood in stool"
	}
	return ""
}

func vomitingLabel(v observation.Vomiting) string {
	switch v {
	case observation.VomitingOnce:
		return "Vomited once"
	case observation.VomitingMultiple:
		return "Vomited multiple times"
	case observation.VomitingDryHeaving:
		return "Dry heaving (unproductive retching)"
	}
	return ""
}

func mobilityLabel(v observation.Mobility) string {
	switch v {
	case observation.MobilityStiff:
		return "Stiff when moving"
	case observation.MobilityLimping:
		return "Limping"
	case observation.MobilityReluctant:
		return "Reluctant to move"
	case observation.MobilityDifficultyRising:
		return "Difficulty getting up"
	}
	return ""
}

func moodLabel(v observation.Mood) string {
	switch v {
	case observation.MoodQuiet:
		return "Quieter than usual"
	case observation.MoodClingy:
		return "Clingier than usual"
	case observation.MoodAnxious:
		return "Anxious"
	case observation.MoodHiding:
		return "Hiding"
	case observation.MoodAggressive:
		return "Aggressive behavior"
	}
	return ""
}
