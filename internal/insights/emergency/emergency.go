// Package emergency clasifica texto libre del dueño buscando lenguaje de emergencia
// veterinaria. Es puramente léxico: términos sueltos, combinaciones de palabras y
// clusters de síntomas. No hay red ni estado; cada llamada es independiente.
package emergency

import (
	"regexp"
	"strings"
)

// Result es el resultado de Detect. MatchedPatterns es para diagnóstico/tests;
// la copia que ve el usuario depende solo de IsEmergency.
type Result struct {
	IsEmergency     bool     `json:"is_emergency"`
	MatchedPatterns []string `json:"matched_patterns"`
}

var (
	quoteReplacer = strings.NewReplacer(
		"‘", "'", "’", "'", "‚", "'", "‛", "'", "`", "'", "´", "'",
		"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
	)
	nonWordRe    = regexp.MustCompile(`[^\w\s']`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize aplica la misma normalización que usa Detect.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = quoteReplacer.Replace(s)
	s = nonWordRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Detect clasifica text. Orden de MatchedPatterns: términos, compuestos, clusters,
// cada grupo en orden de declaración.
func Detect(text string) Result {
	norm := Normalize(text)
	if norm == "" {
		return Result{IsEmergency: false, MatchedPatterns: []string{}}
	}

	matched := make([]string, 0)

	for _, t := range singleTerms {
		if t.re.MatchString(norm) {
			matched = append(matched, t.term)
		}
	}

	for _, c := range compounds {
		if c.matches(norm) {
			matched = append(matched, c.label)
		}
	}

	for _, cl := range clusters {
		if label, ok := cl.matches(norm); ok {
			matched = append(matched, label)
		}
	}

	return Result{
		IsEmergency:     len(matched) > 0,
		MatchedPatterns: matched,
	}
}

func wordRe(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}
