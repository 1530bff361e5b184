package observation

// Metric identifica uno de los 7 campos estructurados del check-in.
type Metric string

const (
	MetricAppetite     Metric = "appetite"
	MetricWaterIntake  Metric = "water_intake"
	MetricEnergyLevel  Metric = "energy_level"
	MetricStoolQuality Metric = "stool_quality"
	MetricVomiting     Metric = "vomiting"
	MetricMobility     Metric = "mobility"
	MetricMood         Metric = "mood"
)

// Metrics en el orden fijo de evaluación.
var Metrics = []Metric{
	MetricAppetite,
	MetricWaterIntake,
	MetricEnergyLevel,
	MetricStoolQuality,
	MetricVomiting,
	MetricMobility,
	MetricMood,
}

// TotalFields es la cantidad de métricas evaluadas por día.
const TotalFields = 7

// Appetite
// @Enum normal, less, barely, refusing, more
type Appetite string

const (
	AppetiteNormal   Appetite = "normal"
	AppetiteLess     Appetite = "less"
	AppetiteBarely   Appetite = "barely"
	AppetiteRefusing Appetite = "refusing"
	AppetiteMore     Appetite = "more"
)

// WaterIntake
// @Enum normal, less, more, much_less, excessive
type WaterIntake string

const (
	WaterNormal    WaterIntake = "normal"
	WaterLess      WaterIntake = "less"
	WaterMore      WaterIntake = "more"
	WaterMuchLess  WaterIntake = "much_less"
	WaterExcessive WaterIntake = "excessive"
)

// EnergyLevel
// @Enum normal, low, lethargic, barely_moving, hyperactive
type EnergyLevel string

const (
	EnergyNormal       EnergyLevel = "normal"
	EnergyLow          EnergyLevel = "low"
	EnergyLethargic    EnergyLevel = "lethargic"
	EnergyBarelyMoving EnergyLevel = "barely_moving"
	EnergyHyperactive  EnergyLevel = "hyperactive"
)

// StoolQuality
// @Enum normal, constipated, not_noticed, soft, diarrhea, blood
type StoolQuality string

const (
	StoolNormal      StoolQuality = "normal"
	StoolConstipated StoolQuality = "constipated"
	StoolNotNoticed  StoolQuality = "not_noticed"
	StoolSoft        StoolQuality = "soft"
	StoolDiarrhea    StoolQuality = "diarrhea"
	StoolBlood       StoolQuality = "blood"
)

// Vomiting
// @Enum none, once, multiple, dry_heaving
type Vomiting string

const (
	VomitingNone       Vomiting = "none"
	VomitingOnce       Vomiting = "once"
	VomitingMultiple   Vomiting = "multiple"
	VomitingDryHeaving Vomiting = "dry_heaving"
)

// Mobility
// @Enum normal, stiff, limping, reluctant, difficulty_rising
type Mobility string

const (
	MobilityNormal           Mobility = "normal"
	MobilityStiff            Mobility = "stiff"
	MobilityLimping          Mobility = "limping"
	MobilityReluctant        Mobility = "reluctant"
	MobilityDifficultyRising Mobility = "difficulty_rising"
)

// Mood
// @Enum normal, quiet, clingy, anxious, hiding, aggressive
type Mood string

const (
	MoodNormal     Mood = "normal"
	MoodQuiet      Mood = "quiet"
	MoodClingy     Mood = "clingy"
	MoodAnxious    Mood = "anxious"
	MoodHiding     Mood = "hiding"
	MoodAggressive Mood = "aggressive"
)

// Severity es el nivel de un valor puntual.
// No es un orden total: SeverityFlag (p.ej. comer de más) nunca cuenta como significativo.
type Severity string

const (
	SeverityBaseline    Severity = "baseline"
	SeverityMild        Severity = "mild"
	SeveritySignificant Severity = "significant"
	SeverityFlag        Severity = "flag"
)
