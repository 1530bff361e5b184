package consistency

import "pet-health-journal/internal/insights/observation"

// MinDays es el mínimo de días necesarios para calcular un score.
const MinDays = 5

// Result del score de consistencia (1..5).
type Result struct {
	Score       int `json:"score"`
	MatchCount  int `json:"match_count"`
	TotalFields int `json:"total_fields"`
}

// Score compara el día más reciente contra la moda de cada campo en la ventana.
// window viene ordenada por fecha descendente. Devuelve nil si hay menos de MinDays.
func Score(window []observation.DailyObservation) *Result {
	if len(window) < MinDays {
		return nil
	}

	today := window[0]
	matches := 0
	for _, m := range observation.Metrics {
		if today.Value(m) == Mode(window, m) {
			matches++
		}
	}

	return &Result{
		Score:       scoreFor(matches),
		MatchCount:  matches,
		TotalFields: observation.TotalFields,
	}
}

// Mode devuelve el valor más frecuente del campo. En empate gana el que aparece
// primero en la ventana (el más reciente): solo se reemplaza con conteo estrictamente mayor.
func Mode(window []observation.DailyObservation, m observation.Metric) string {
	counts := make(map[string]int, len(window))
	for _, o := range window {
		counts[o.Value(m)]++
	}

	mode := ""
	best := 0
	for _, o := range window {
		v := o.Value(m)
		if counts[v] > best {
			mode = v
			best = counts[v]
		}
	}
	return mode
}

func scoreFor(matches int) int {
	switch {
	case matches >= 7:
		return 5
	case matches >= 5:
		return 4
	case matches == 4:
		return 3
	case matches >= 2:
		return 2
	default:
		return 1
	}
}
