package patterns

// Type identifica el patrón detectado.
type Type string

const (
	// Reglas de un solo día (siempre sobre window[0]).
	TypeBloodInStool        Type = "blood_in_stool"
	TypeDryHeavingEmergency Type = "dry_heaving_emergency"
	TypeSuddenAggression    Type = "sudden_aggression"
	TypeVomitingPlusOther   Type = "vomiting_plus_other"
	TypeMultiSymptomAcute   Type = "multi_symptom_acute"

	// Reglas de tendencia (requieren densidad suficiente y >= 3 días).
	TypeAppetiteThirstIncrease Type = "appetite_thirst_increase"
	TypeAppetiteIncrease       Type = "appetite_increase"
	TypeAppetiteDecline        Type = "appetite_decline"
	TypeExcessiveEnergy        Type = "excessive_energy"
	TypeEnergyDecline          Type = "energy_decline"
	TypeDigestiveIssues        Type = "digestive_issues"
	TypeRecurringVomiting      Type = "recurring_vomiting"
	TypeAbnormalWater          Type = "abnormal_water"
	TypeMobilityIssues         Type = "mobility_issues"
	TypeBehavioralChange       Type = "behavioral_change"
	TypeMultiSymptomTrend      Type = "multi_symptom_trend"
	TypePersistentDecline      Type = "persistent_decline"
)

// SingleDayTypes y TrendTypes particionan los 17 tipos.
var (
	SingleDayTypes = []Type{
		TypeBloodInStool,
		TypeDryHeavingEmergency,
		TypeSuddenAggression,
		TypeVomitingPlusOther,
		TypeMultiSymptomAcute,
	}
	TrendTypes = []Type{
		TypeAppetiteThirstIncrease,
		TypeAppetiteIncrease,
		TypeAppetiteDecline,
		TypeExcessiveEnergy,
		TypeEnergyDecline,
		TypeDigestiveIssues,
		TypeRecurringVomiting,
		TypeAbnormalWater,
		TypeMobilityIssues,
		TypeBehavioralChange,
		TypeMultiSymptomTrend,
		TypePersistentDecline,
	}
)

// IsTrend reporta si t es una regla de tendencia (gateada por densidad).
func (t Type) IsTrend() bool {
	for _, tt := range TrendTypes {
		if tt == t {
			return true
		}
	}
	return false
}

// Level de la alerta.
// @Enum info, watch, concern, vet_recommended
type Level string

const (
	LevelInfo           Level = "info"
	LevelWatch          Level = "watch"
	LevelConcern        Level = "concern"
	LevelVetRecommended Level = "vet_recommended"
)

// Alert es un patrón detectado sobre un snapshot. Identidad, dedupe y ciclo de vida
// (first_detected / resolved_at) son responsabilidad de quien llama.
type Alert struct {
	PatternType Type   `json:"pattern_type"`
	AlertLevel  Level  `json:"alert_level"`
	Title       string `json:"title"`
	Message     string `json:"message"`
}
