package execucao

import (
	"fmt"
	"time"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
)

// LinkedRow is one validated invoice line attributed to a budget item.
// Rows must arrive already ordered by (invoice date, invoice id, line id);
// BuildExecution preserves that order in LinkedNFs.
type LinkedRow struct {
	NfID         int64
	NfItemID     int64
	BudgetItemID string
	Value        float64
	Quantity     float64
	Date         time.Time
}

// Thresholds hold the tunable limits of the reconciliation rules.
type Thresholds struct {
	VarianceMediumPercent float64
	VarianceHighPercent   float64
	CompletionRatio       float64
	ProgressDelayPoints   float64
}

// DefaultThresholds returns the limits used when no config override exists.
func DefaultThresholds() Thresholds {
	return Thresholds{
		VarianceMediumPercent: 10,
		VarianceHighPercent:   20,
		CompletionRatio:       0.98,
		ProgressDelayPoints:   15,
	}
}

// Input carries everything BuildExecution needs, pre-fetched by the caller.
type Input struct {
	ContractID int64
	// PhysicalProgress is the contract's tracked progress field (0-100).
	PhysicalProgress float64
	Items            []db.BudgetItem
	Linked           []LinkedRow
	// UnlinkedCount is the number of validated invoice lines of this
	// contract that are not attributed to any budget item.
	UnlinkedCount int64
}

// BuildExecution reconciles a contract's predicted budget against the
// invoice lines linked to it. It is pure and deterministic: identical
// inputs produce identical output, including alert IDs, so recalculation
// is idempotent. LastUpdate is left empty for the caller to stamp.
func BuildExecution(in Input, th Thresholds) api_models.ContractExecution {
	byItem := map[string][]LinkedRow{}
	for _, row := range in.Linked {
		byItem[row.BudgetItemID] = append(byItem[row.BudgetItemID], row)
	}

	realizations := make([]api_models.BudgetRealization, 0, len(in.Items))
	alerts := []api_models.ExecutionAlert{}
	var totalPredicted, totalRealized float64

	for _, item := range in.Items {
		r := buildRealization(item, byItem[item.ID], th)
		totalPredicted += r.PredictedValue
		totalRealized += r.RealizedValue

		if alert, ok := varianceAlert(r, th); ok {
			alerts = append(alerts, alert)
		}
		realizations = append(realizations, r)
	}

	if totalRealized > totalPredicted && totalPredicted > 0 {
		action := "Revisar itens acima do orçamento e renegociar escopo"
		alerts = append(alerts, api_models.ExecutionAlert{
			ID:       fmt.Sprintf("budget:%d", in.ContractID),
			Type:     api_models.AlertBudgetExceeded,
			Severity: api_models.SeverityHigh,
			Message: fmt.Sprintf("Valor realizado (R$ %.2f) ultrapassou o orçamento previsto (R$ %.2f)",
				totalRealized, totalPredicted),
			SuggestedAction: &action,
		})
	}

	financial := 0.0
	if totalPredicted > 0 {
		financial = totalRealized / totalPredicted * 100
	}

	if financial-in.PhysicalProgress > th.ProgressDelayPoints {
		action := "Conferir avanço físico da obra junto à fiscalização"
		alerts = append(alerts, api_models.ExecutionAlert{
			ID:       fmt.Sprintf("delay:%d", in.ContractID),
			Type:     api_models.AlertProgressDelayed,
			Severity: api_models.SeverityMedium,
			Message: fmt.Sprintf("Avanço financeiro (%.1f%%) está %.1f pontos à frente do avanço físico (%.1f%%)",
				financial, financial-in.PhysicalProgress, in.PhysicalProgress),
			SuggestedAction: &action,
		})
	}

	if in.UnlinkedCount > 0 {
		action := "Classificar os itens de NF pendentes"
		alerts = append(alerts, api_models.ExecutionAlert{
			ID:       fmt.Sprintf("missing:%d", in.ContractID),
			Type:     api_models.AlertMissingNF,
			Severity: api_models.SeverityLow,
			Message: fmt.Sprintf("%d itens de notas fiscais validadas ainda não foram vinculados ao orçamento",
				in.UnlinkedCount),
			SuggestedAction: &action,
		})
	}

	return api_models.ContractExecution{
		ContractID:          in.ContractID,
		TotalPredictedValue: totalPredicted,
		TotalRealizedValue:  totalRealized,
		PhysicalProgress:    in.PhysicalProgress,
		FinancialProgress:   financial,
		Items:               realizations,
		Alerts:              alerts,
	}
}

func buildRealization(item db.BudgetItem, rows []LinkedRow, th Thresholds) api_models.BudgetRealization {
	var realizedValue, realizedQuantity float64
	linked := make([]api_models.LinkedNF, 0, len(rows))
	for _, row := range rows {
		realizedValue += row.Value
		realizedQuantity += row.Quantity
		linked = append(linked, api_models.LinkedNF{
			NfID:     row.NfID,
			NfItemID: row.NfItemID,
			Value:    row.Value,
			Quantity: row.Quantity,
			Date:     row.Date.Format("2006-01-02"),
		})
	}

	variance := realizedValue - item.TotalValue
	variancePercent := 0.0
	if item.TotalValue != 0 {
		variancePercent = variance / item.TotalValue * 100
	}

	r := api_models.BudgetRealization{
		BudgetItemID:    item.ID,
		Description:     item.Description,
		PredictedValue:  item.TotalValue,
		RealizedValue:   realizedValue,
		Variance:        variance,
		VariancePercent: variancePercent,
		LinkedNFs:       linked,
	}
	if item.Quantity.Valid {
		r.PredictedQuantity = &item.Quantity.Float64
	}
	if len(rows) > 0 {
		r.RealizedQuantity = &realizedQuantity
	}
	r.Status = realizationStatus(r, th)
	return r
}

// realizationStatus applies the precedence over_budget > completed >
// in_progress > not_started. Completion requires value coverage at the
// completion ratio and, when a predicted quantity exists, quantity coverage
// at the same ratio.
func realizationStatus(r api_models.BudgetRealization, th Thresholds) api_models.RealizationStatus {
	switch {
	case r.RealizedValue > r.PredictedValue:
		return api_models.RealizationOverBudget
	case r.PredictedValue > 0 && r.RealizedValue >= th.CompletionRatio*r.PredictedValue:
		if r.PredictedQuantity != nil && *r.PredictedQuantity > 0 {
			if r.RealizedQuantity == nil || *r.RealizedQuantity < th.CompletionRatio**r.PredictedQuantity {
				return api_models.RealizationInProgress
			}
		}
		return api_models.RealizationCompleted
	case len(r.LinkedNFs) > 0:
		return api_models.RealizationInProgress
	default:
		return api_models.RealizationNotStarted
	}
}

func varianceAlert(r api_models.BudgetRealization, th Thresholds) (api_models.ExecutionAlert, bool) {
	if r.VariancePercent <= th.VarianceMediumPercent {
		return api_models.ExecutionAlert{}, false
	}

	severity := api_models.SeverityMedium
	if r.VariancePercent > th.VarianceHighPercent || r.Status == api_models.RealizationOverBudget {
		severity = api_models.SeverityHigh
	}

	itemID := r.BudgetItemID
	action := "Verificar notas fiscais vinculadas e revisar o item previsto"
	return api_models.ExecutionAlert{
		ID:       "variance:" + itemID,
		Type:     api_models.AlertVarianceHigh,
		Severity: severity,
		Message: fmt.Sprintf("%s: desvio de %.1f%% sobre o valor previsto (R$ %.2f realizados contra R$ %.2f)",
			r.Description, r.VariancePercent, r.RealizedValue, r.PredictedValue),
		BudgetItemID:    &itemID,
		SuggestedAction: &action,
	}, true
}
