package emergency

import (
	"regexp"
	"strings"
)

type singleTerm struct {
	term string
	re   *regexp.Regexp
}

// Términos que por sí solos indican emergencia.
// "bleeding" queda incondicional, sesgo a favor de la cautela.
var singleTermList = []string{
	// convulsiones
	"seizure", "seizures", "seizing", "convulsion", "convulsions", "convulsing",
	// intoxicación
	"poison", "poisoned", "poisoning", "toxic", "toxin",
	// torsión gástrica
	"bloat", "bloated", "gdv",
	// vía aérea
	"choking", "suffocating", "drowning", "drowned",
	// ambiente
	"electrocuted", "electrocution", "heatstroke", "hypothermia",
	// sangrado
	"hemorrhage", "hemorrhaging", "bleeding",
	// tóxicos con nombre
	"antifreeze", "xylitol", "chocolate", "rat bait", "snail bait", "slug bait",
	// conciencia
	"unresponsive", "unconscious", "paralyzed",
}

type compound struct {
	label string
	res   []*regexp.Regexp
}

// Todas las palabras deben aparecer en el texto; orden y adyacencia no importan.
var compoundList = [][]string{
	{"not", "breathing"},
	{"stopped", "breathing"},
	{"can't", "breathe"},
	{"cant", "breathe"},
	{"cannot", "breathe"},
	{"difficulty", "breathing"},
	{"trouble", "breathing"},
	{"blue", "gums"},
	{"white", "gums"},
	{"stuck", "throat"},
	{"hit", "car"},
	{"cannot", "use", "legs"},
	{"can't", "use", "legs"},
	{"cant", "use", "legs"},
	{"can't", "stand"},
	{"cant", "stand"},
	{"cannot", "stand"},
	{"won't", "wake"},
	{"wont", "wake"},
	{"not", "responding"},
	{"ate", "grapes"},
	{"ate", "raisins"},
	{"can't", "pee"},
	{"cant", "pee"},
}

type cluster struct {
	name       string
	keywords   []string
	res        []*regexp.Regexp
	minMatches int
}

// Grupos de síntomas que juntos sugieren emergencia.
var clusterList = []struct {
	name       string
	keywords   []string
	minMatches int
}{
	{"gastrointestinal", []string{"vomiting", "vomit", "diarrhea", "lethargy", "lethargic", "blood"}, 3},
	{"bloat_signs", []string{"swollen", "belly", "pacing", "restless", "drooling"}, 3},
	{"shock_signs", []string{"weak", "collapse", "pale", "cold"}, 3},
}

var (
	singleTerms []singleTerm
	compounds   []compound
	clusters    []cluster
)

func init() {
	singleTerms = make([]singleTerm, 0, len(singleTermList))
	for _, t := range singleTermList {
		singleTerms = append(singleTerms, singleTerm{term: t, re: wordRe(t)})
	}

	compounds = make([]compound, 0, len(compoundList))
	for _, words := range compoundList {
		c := compound{label: strings.Join(words, " + ")}
		for _, w := range words {
			c.res = append(c.res, wordRe(w))
		}
		compounds = append(compounds, c)
	}

	clusters = make([]cluster, 0, len(clusterList))
	for _, def := range clusterList {
		c := cluster{name: def.name, keywords: def.keywords, minMatches: def.minMatches}
		for _, k := range def.keywords {
			c.res = append(c.res, wordRe(k))
		}
		clusters = append(clusters, c)
	}
}

func (c compound) matches(text string) bool {
	for _, re := range c.res {
		if !re.MatchString(text) {
			return false
		}
	}
	return true
}

func (c cluster) matches(text string) (string, bool) {
	present := make([]string, 0, len(c.keywords))
	for i, re := range c.res {
		if re.MatchString(text) {
			present = append(present, c.keywords[i])
		}
	}
	if len(present) < c.minMatches {
		return "", false
	}
	return "cluster: " + strings.Join(present, ", "), true
}
