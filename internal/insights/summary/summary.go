package summary

import (
	"pet-health-journal/internal/insights/observation"
)

// Type es el nivel agregado del día.
// @Enum all_normal, minor_notes, attention_needed, vet_recommended
type Type string

const (
	TypeAllNormal       Type = "all_normal"
	TypeMinorNotes      Type = "minor_notes"
	TypeAttentionNeeded Type = "attention_needed"
	TypeVetRecommended  Type = "vet_recommended"
)

// DaySummary se deriva de una observación; no se persiste.
type DaySummary struct {
	Type          Type     `json:"type"`
	Message       string   `json:"message"`
	Abnormalities []string `json:"abnormalities"`
}

const (
	msgAllNormal = "Everything looks normal today. Keep up the great routine!"

	msgDryHeaving = "Dry heaving can be a sign of bloat (GDV), which is a life-threatening emergency. " +
		"Contact your vet or an emergency clinic right away."
	msgBloodInStool = "Blood in the stool should be checked by a professional. " +
		"Please schedule a vet visit soon."
	msgMultipleSignificant = "Several concerning symptoms showed up today. " +
		"We recommend contacting your vet."

	msgAttention  = "Some of today's answers need attention. Keep a close eye on your dog and log again tomorrow."
	msgMinorNotes = "A few small changes today, nothing alarming. We'll keep watching the trend."
)

type finding struct {
	label    string
	severity observation.Severity
}

// Summarize agrega los 7 campos de un día. Primera regla que aplica gana:
// sin anomalías, vet_recommended, attention_needed, minor_notes.
func Summarize(o observation.DailyObservation) DaySummary {
	findings := make([]finding, 0, observation.TotalFields)
	for _, m := range observation.Metrics {
		sev := o.Severity(m)
		if !observation.IsAbnormal(sev) {
			continue
		}
		findings = append(findings, finding{label: Label(m, o.Value(m)), severity: sev})
	}

	if len(findings) == 0 {
		return DaySummary{Type: TypeAllNormal, Message: msgAllNormal, Abnormalities: []string{}}
	}

	labels := make([]string, 0, len(findings))
	significant := 0
	for _, f := range findings {
		labels = append(labels, f.label)
		if f.severity == observation.SeveritySignificant {
			significant++
		}
	}

	dryHeaving := o.Vomiting == observation.VomitingDryHeaving
	blood := o.StoolQuality == observation.StoolBlood

	if dryHeaving || blood || significant >= 3 {
		msg := msgMultipleSignificant
		switch {
		case dryHeaving:
			msg = msgDryHeaving
		case blood:
			msg = msgBloodInStool
		}
		return DaySummary{Type: TypeVetRecommended, Message: msg, Abnormalities: labels}
	}

	if significant > 0 {
		return DaySummary{Type: TypeAttentionNeeded, Message: msgAttention, Abnormalities: labels}
	}

	return DaySummary{Type: TypeMinorNotes, Message: msgMinorNotes, Abnormalities: labels}
}
