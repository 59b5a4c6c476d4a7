package classify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
)

// Confidence weights. Description carries most of the signal; category and
// unit value break ties between similar lines.
const (
	weightDescription = 0.55
	weightCategory    = 0.25
	weightValue       = 0.20

	// minConfidence drops suggestions too weak to show (0-100 scale).
	minConfidence = 25
)

// Suggest scores every unlinked NF line of an invoice against the budget
// items of its contract. Suggestions below the confidence floor are dropped;
// the rest come back sorted by confidence, strongest first.
func Suggest(nfItems []db.NfItem, budgetItems []db.BudgetItem) []api_models.NFToBudgetSuggestion {
	suggestions := []api_models.NFToBudgetSuggestion{}

	for _, nfItem := range nfItems {
		if nfItem.BudgetItemID.Valid {
			continue
		}
		nfTokens := tokenize(nfItem.Description)

		for _, budgetItem := range budgetItems {
			factors := api_models.SimilarityFactors{
				Description: jaccard(nfTokens, tokenize(budgetItem.Description)),
				Category:    categoryAffinity(nfTokens, budgetItem),
				Value:       valueProximity(nfItem.UnitValue, budgetUnitValue(budgetItem)),
			}

			confidence := (weightDescription*factors.Description +
				weightCategory*factors.Category +
				weightValue*factors.Value) * 100
			if confidence < minConfidence {
				continue
			}

			suggestions = append(suggestions, api_models.NFToBudgetSuggestion{
				NfItemID:          nfItem.ID,
				BudgetItemID:      budgetItem.ID,
				ConfidenceScore:   confidence,
				Reason:            reason(factors),
				SimilarityFactors: factors,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].ConfidenceScore > suggestions[j].ConfidenceScore
	})

	return suggestions
}

// categoryAffinity measures how much of the budget item's category and cost
// center vocabulary appears in the NF line.
func categoryAffinity(nfTokens map[string]bool, item db.BudgetItem) float64 {
	vocabulary := item.Category
	if item.CostCenter.Valid {
		vocabulary += " " + item.CostCenter.String
	}
	return jaccard(nfTokens, tokenize(vocabulary))
}

// budgetUnitValue picks the comparable per-unit price of a budget item:
// unit value for material lines, hourly rate for service lines.
func budgetUnitValue(item db.BudgetItem) float64 {
	if item.UnitValue.Valid && item.UnitValue.Float64 > 0 {
		return item.UnitValue.Float64
	}
	if item.HourlyRate.Valid {
		return item.HourlyRate.Float64
	}
	return 0
}

func reason(factors api_models.SimilarityFactors) string {
	parts := []string{}
	if factors.Description >= 0.5 {
		parts = append(parts, fmt.Sprintf("descrição %.0f%% similar", factors.Description*100))
	}
	if factors.Category >= 0.5 {
		parts = append(parts, "categoria compatível")
	}
	if factors.Value >= 0.8 {
		parts = append(parts, "valor unitário próximo")
	}
	if len(parts) == 0 {
		return "similaridade parcial entre descrição, categoria e valor"
	}
	return strings.Join(parts, ", ")
}
