package classify

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
)

func nfLine(id int64, description string, unitValue float64) db.NfItem {
	return db.NfItem{ID: id, NfID: 1, Description: description, Quantity: 10, UnitValue: unitValue, TotalValue: unitValue * 10}
}

func budgetLine(id, description, category string, unitValue float64) db.BudgetItem {
	return db.BudgetItem{
		ID:          id,
		ContractID:  1,
		Description: description,
		Category:    category,
		UnitValue:   sql.NullFloat64{Float64: unitValue, Valid: unitValue > 0},
		TotalValue:  unitValue * 100,
	}
}

func TestSuggestRanksCloseMatchesFirst(t *testing.T) {
	nfItems := []db.NfItem{nfLine(1, "CIMENTO CP-II SACO 50KG", 72)}
	budgetItems := []db.BudgetItem{
		budgetLine("b1", "Cimento CP-II 50kg", "Estrutura", 71),
		budgetLine("b2", "Areia média lavada", "Estrutura", 125),
	}

	suggestions := Suggest(nfItems, budgetItems)

	require.NotEmpty(t, suggestions)
	best := suggestions[0]
	assert.Equal(t, int64(1), best.NfItemID)
	assert.Equal(t, "b1", best.BudgetItemID)
	assert.Greater(t, best.ConfidenceScore, 50.0)
	assert.Greater(t, best.SimilarityFactors.Description, 0.5)
	assert.Greater(t, best.SimilarityFactors.Value, 0.95)
	assert.NotEmpty(t, best.Reason)

	for _, s := range suggestions {
		assert.GreaterOrEqual(t, s.ConfidenceScore, 25.0)
	}
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].ConfidenceScore, suggestions[i].ConfidenceScore)
	}
}

func TestSuggestSkipsLinkedLines(t *testing.T) {
	linked := nfLine(1, "Cimento CP-II 50kg", 71)
	linked.BudgetItemID = sql.NullString{String: "b1", Valid: true}

	suggestions := Suggest([]db.NfItem{linked}, []db.BudgetItem{
		budgetLine("b1", "Cimento CP-II 50kg", "Estrutura", 71),
	})

	assert.Empty(t, suggestions)
}

func TestSuggestDropsWeakMatches(t *testing.T) {
	nfItems := []db.NfItem{nfLine(1, "Locação de andaime fachadeiro", 35)}
	budgetItems := []db.BudgetItem{
		budgetLine("b1", "Concreto usinado fck 30", "Estrutura", 450),
	}

	assert.Empty(t, Suggest(nfItems, budgetItems))
}

func TestJaccard(t *testing.T) {
	a := tokenize("Cimento CP-II 50kg")
	b := tokenize("CIMENTO CP-II SACO 50KG")

	sim := jaccard(a, b)
	assert.Greater(t, sim, 0.5)
	assert.InDelta(t, 1.0, jaccard(a, a), 0.0001)
	assert.Zero(t, jaccard(a, tokenize("")))
}

func TestTokenizeDropsStopwordsAndAccents(t *testing.T) {
	tokens := tokenize("Locação de Andaime para Fachada")

	assert.True(t, tokens["locacao"])
	assert.True(t, tokens["andaime"])
	assert.True(t, tokens["fachada"])
	assert.False(t, tokens["de"])
	assert.False(t, tokens["para"])
}

func TestValueProximity(t *testing.T) {
	assert.InDelta(t, 1.0, valueProximity(100, 100), 0.0001)
	assert.InDelta(t, 0.5, valueProximity(50, 100), 0.0001)
	assert.Zero(t, valueProximity(0, 100))
	assert.Zero(t, valueProximity(100, 0))
}
