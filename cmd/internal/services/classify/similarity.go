package classify

import (
	"strings"
)

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u",
	"ç", "c",
)

// stopwords are connective words ignored when comparing descriptions.
var stopwords = map[string]bool{
	"de": true, "da": true, "do": true, "das": true, "dos": true,
	"para": true, "com": true, "em": true, "e": true, "a": true, "o": true,
}

// tokenize lowercases, strips accents and drops stopwords and single
// characters. "Cimento CP-II 50kg" and "CIMENTO CP-II SACO 50KG" share most
// of their tokens after this.
func tokenize(s string) map[string]bool {
	s = accentReplacer.Replace(strings.ToLower(s))
	tokens := map[string]bool{}
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if len(field) < 2 || stopwords[field] {
			continue
		}
		tokens[field] = true
	}
	return tokens
}

// jaccard is the intersection-over-union similarity of two token sets.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for token := range a {
		if b[token] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// valueProximity compares the NF line's unit value with the budget item's.
// Equal values score 1, values an order of magnitude apart score near 0.
func valueProximity(nfUnitValue, budgetUnitValue float64) float64 {
	if nfUnitValue <= 0 || budgetUnitValue <= 0 {
		return 0
	}
	larger := nfUnitValue
	if budgetUnitValue > larger {
		larger = budgetUnitValue
	}
	diff := nfUnitValue - budgetUnitValue
	if diff < 0 {
		diff = -diff
	}
	return 1 - diff/larger
}
