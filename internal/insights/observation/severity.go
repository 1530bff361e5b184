package observation

// Tabla de severidad por métrica. Cada switch cubre todo el enum;
// un valor fuera del enum cae en default y se trata como baseline.

func (v Appetite) Severity() Severity {
	switch v {
	case AppetiteNormal:
		return SeverityBaseline
	case AppetiteLess:
		return SeverityMild
	case AppetiteBarely, AppetiteRefusing:
		return SeveritySignificant
	case AppetiteMore:
		return SeverityFlag
	default:
		return SeverityBaseline
	}
}

func (v WaterIntake) Severity() Severity {
	switch v {
	case WaterNormal:
		return SeverityBaseline
	case WaterLess, WaterMore:
		return SeverityMild
	case WaterMuchLess, WaterExcessive:
		return SeveritySignificant
	default:
		return SeverityBaseline
	}
}

func (v EnergyLevel) Severity() Severity {
	switch v {
	case EnergyNormal:
		return SeverityBaseline
	case EnergyLow:
		return SeverityMild
	case EnergyLethargic, EnergyBarelyMoving:
		return SeveritySignificant
	case EnergyHyperactive:
		return SeverityFlag
	default:
		return SeverityBaseline
	}
}

func (v StoolQuality) Severity() Severity {
	switch v {
	case StoolNormal, StoolConstipated, StoolNotNoticed:
		return SeverityBaseline
	case StoolSoft:
		return SeverityMild
	case StoolDiarrhea, StoolBlood:
		return SeveritySignificant
	default:
		return SeverityBaseline
	}
}

func (v Vomiting) Severity() Severity {
	switch v {
	case VomitingNone:
		return SeverityBaseline
	case VomitingOnce:
		return SeverityMild
	case VomitingMultiple, VomitingDryHeaving:
		return SeveritySignificant
	default:
		return SeverityBaseline
	}
}

func (v Mobility) Severity() Severity {
	switch v {
	case MobilityNormal:
		return SeverityBaseline
	case MobilityStiff:
		return SeverityMild
	case MobilityLimping, MobilityReluctant, MobilityDifficultyRising:
		return SeveritySignificant
	default:
		return SeverityBaseline
	}
}

func (v Mood) Severity() Severity {
	switch v {
	case MoodNormal:
		return SeverityBaseline
	case MoodQuiet, MoodClingy:
		return SeverityMild
	case MoodAnxious, MoodHiding, MoodAggressive:
		return SeveritySignificant
	default:
		return SeverityBaseline
	}
}

// Classify es la entrada genérica (métrica + valor crudo) sobre la misma tabla.
func Classify(m Metric, value string) Severity {
	switch m {
	case MetricAppetite:
		return Appetite(value).Severity()
	case MetricWaterIntake:
		return WaterIntake(value).Severity()
	case MetricEnergyLevel:
		return EnergyLevel(value).Severity()
	case MetricStoolQuality:
		return StoolQuality(value).Severity()
	case MetricVomiting:
		return Vomiting(value).Severity()
	case MetricMobility:
		return Mobility(value).Severity()
	case MetricMood:
		return Mood(value).Severity()
	}
	return SeverityBaseline
}

func IsAbnormal(s Severity) bool {
	return s != SeverityBaseline
}

// CountAbnormalFields cuenta métricas no-baseline (incluye flag).
func CountAbnormalFields(o DailyObservation) int {
	n := 0
	for _, m := range Metrics {
		if IsAbnormal(o.Severity(m)) {
			n++
		}
	}
	return n
}

// CountSignificantFields cuenta solo métricas en SeveritySignificant.
func CountSignificantFields(o DailyObservation) int {
	n := 0
	for _, m := range Metrics {
		if o.Severity(m) == SeveritySignificant {
			n++
		}
	}
	return n
}

// Valid reporta si el valor pertenece al enum.
func (v Appetite) Valid() bool {
	switch v {
	case AppetiteNormal, AppetiteLess, AppetiteBarely, AppetiteRefusing, AppetiteMore:
		return true
	}
	return false
}

func (v WaterIntake) Valid() bool {
	switch v {
	case WaterNormal, WaterLess, WaterMore, WaterMuchLess, WaterExcessive:
		return true
	}
	return false
}

func (v EnergyLevel) Valid() bool {
	switch v {
	case EnergyNormal, EnergyLow, EnergyLethargic, EnergyBarelyMoving, EnergyHyperactive:
		return true
	}
	return false
}

func (v StoolQuality) Valid() bool {
	switch v {
	case StoolNormal, StoolConstipated, StoolNotNoticed, StoolSoft, StoolDiarrhea, StoolBlood:
		return true
	}
	return false
}

func (v Vomiting) Valid() bool {
	switch v {
	case VomitingNone, VomitingOnce, VomitingMultiple, VomitingDryHeaving:
		return true
	}
	return false
}

func (v Mobility) Valid() bool {
	switch v {
	case MobilityNormal, MobilityStiff, MobilityLimping, MobilityReluctant, MobilityDifficultyRising:
		return true
	}
	return false
}

func (v Mood) Valid() bool {
	switch v {
	case MoodNormal, MoodQuiet, MoodClingy, MoodAnxious, MoodHiding, MoodAggressive:
		return true
	}
	return false
}
