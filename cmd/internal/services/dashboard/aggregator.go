package dashboard

import (
	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
)

// DefaultAttentionRatio is the spent/value fraction above which a contract
// is flagged as running low on balance. The comparison is strict: exactly at
// the ratio is still fine. Overridable through the execution config section.
const DefaultAttentionRatio = 0.85

// StatusActive is the lifecycle label of contracts counted as active.
const StatusActive = "Em Andamento"

// Summarize computes the overview KPIs for a set of contracts. Sums and the
// progress mean are unweighted; an empty set yields zeros, never NaN.
func Summarize(contracts []db.Contract) api_models.ContractKPIs {
	kpis := api_models.ContractKPIs{}

	for _, c := range contracts {
		kpis.TotalValue += c.Value
		kpis.TotalSpent += c.Spent
		kpis.SavingsTarget += c.Value * c.MetaReducaoPercentual / 100
		kpis.AvgProgress += c.Progress
		if c.Status == StatusActive {
			kpis.ActiveContracts++
		}
	}

	kpis.ContractBalance = kpis.TotalValue - kpis.TotalSpent
	if len(contracts) > 0 {
		kpis.AvgProgress /= float64(len(contracts))
	}

	return kpis
}

// NeedsAttention reports whether a contract's spend crossed the low-balance
// ratio. Contracts without a value never qualify.
func NeedsAttention(c db.Contract, ratio float64) bool {
	return c.Value > 0 && c.Spent/c.Value > ratio
}

// AttentionList filters the contracts that need attention, preserving the
// input order.
func AttentionList(contracts []db.Contract, ratio float64) []api_models.ContractAttention {
	flagged := []api_models.ContractAttention{}
	for _, c := range contracts {
		if !NeedsAttention(c, ratio) {
			continue
		}
		flagged = append(flagged, api_models.ContractAttention{
			ContractID: c.ID,
			Name:       c.Name,
			SpentRatio: c.Spent / c.Value,
		})
	}
	return flagged
}
