package patterns

type copyText struct {
	level   Level
	title   string
	message string
}

var catalog = map[Type]copyText{
	TypeBloodInStool: {
		LevelVetRecommended,
		"Blood in stool",
		"Blood in the stool was logged today. Please contact your vet to have it checked.",
	},
	TypeDryHeavingEmergency: {
		LevelVetRecommended,
		"Dry heaving",
		"Unproductive retching can signal bloat (GDV). Contact your vet or an emergency clinic immediately.",
	},
	TypeSuddenAggression: {
		LevelConcern,
		"Sudden aggression",
		"Aggressive behavior can be a sign of pain or discomfort. Watch closely and consider a vet check.",
	},
	TypeVomitingPlusOther: {
		LevelConcern,
		"Vomiting with other symptoms",
		"Repeated vomiting together with other significant symptoms today. Consider calling your vet.",
	},
	TypeMultiSymptomAcute: {
		LevelConcern,
		"Several symptoms today",
		"Three or more areas were off today. Keep a close eye and log again tomorrow.",
	},
	TypeAppetiteThirstIncrease: {
		LevelConcern,
		"Eating and drinking more",
		"Increased appetite and thirst for 3 days in a row can point to a metabolic issue. A vet check is a good idea.",
	},
	TypeAppetiteIncrease: {
		LevelWatch,
		"Appetite increase",
		"Your dog has been eating more than usual for 3 days.",
	},
	TypeAppetiteDecline: {
		LevelWatch,
		"Appetite change",
		"Appetite has been off for 3 days in a row.",
	},
	TypeExcessiveEnergy: {
		LevelWatch,
		"High energy",
		"Your dog has been unusually hyperactive for 3 days.",
	},
	TypeEnergyDecline: {
		LevelWatch,
		"Low energy",
		"Energy has been below normal for 3 days in a row.",
	},
	TypeDigestiveIssues: {
		LevelWatch,
		"Digestive issues",
		"Stool has been abnormal for 3 days in a row.",
	},
	TypeRecurringVomiting: {
		LevelConcern,
		"Recurring vomiting",
		"Vomiting was logged on at least 2 of the last 3 days.",
	},
	TypeAbnormalWater: {
		LevelWatch,
		"Water intake change",
		"Water intake has been unusual for 3 days in a row.",
	},
	TypeMobilityIssues: {
		LevelWatch,
		"Mobility issues",
		"Movement has been affected for 3 days in a row.",
	},
	TypeBehavioralChange: {
		LevelWatch,
		"Behavior change",
		"Mood has been different from normal for 3 days in a row.",
	},
	TypeMultiSymptomTrend: {
		LevelConcern,
		"Multiple ongoing symptoms",
		"Two or more areas have stayed abnormal for 3 days in a row.",
	},
	TypePersistentDecline: {
		LevelVetRecommended,
		"Persistent decline",
		"Your dog has had multiple symptoms on most days this week. We recommend a vet visit.",
	},
}

func newAlert(t Type) Alert {
	c := catalog[t]
	return Alert{
		PatternType: t,
		AlertLevel:  c.level,
		Title:       c.title,
		Message:     c.message,
	}
}
