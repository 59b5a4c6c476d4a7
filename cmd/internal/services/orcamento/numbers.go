package orcamento

import (
	"strconv"
	"strings"
)

// parseNumberPtr parses a numeric cell, accepting both the plain form
// (1234.56) and the Brazilian form (1.234,56), with an optional currency
// prefix. Unparseable values return nil instead of zero so that absent and
// invalid stay distinguishable downstream.
func parseNumberPtr(cell string) *float64 {
	cleaned := strings.TrimSpace(cell)
	cleaned = strings.TrimPrefix(cleaned, "R$")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return nil
	}

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u",
	"ç", "c",
)

// normalize lowercases, strips accents and collapses whitespace so that
// header captions like "  Valor Unitário " match their canonical keys.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = accentReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
