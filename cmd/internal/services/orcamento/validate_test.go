package orcamento

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
)

func TestValidateItemsMaterial(t *testing.T) {
	items := []api_models.BudgetItem{
		{Description: "Cimento", Quantity: fptr(500), Unit: sptr("sc"), TotalValue: 35500},
		{Description: "", Quantity: fptr(10), Unit: sptr("m³"), TotalValue: 1250},
		{Description: "Areia", TotalValue: 4375},
		{Description: "Brita", Quantity: fptr(15), TotalValue: 0},
	}

	errs, warns := ValidateItems(items, api_models.ContractTypeMaterial)

	assert.Equal(t, []string{
		"Item 2: Descrição é obrigatória",
		"Item 3: Quantidade é obrigatória para contratos de material",
		"Item 4: Valor total deve ser maior que zero",
	}, errs)
	assert.Equal(t, []string{
		"Item 3: Unidade não informada",
		"Item 4: Unidade não informada",
	}, warns)
}

func TestValidateItemsService(t *testing.T) {
	items := []api_models.BudgetItem{
		{Description: "Projeto estrutural", Hours: fptr(120), TotalValue: 30000},
		{Description: "Consultoria", TotalValue: 5000},
	}

	errs, warns := ValidateItems(items, api_models.ContractTypeService)

	assert.Empty(t, errs)
	assert.Equal(t, []string{"Item 2: Horas não informadas"}, warns)
}

func TestValidateItemsCleanBudget(t *testing.T) {
	items := []api_models.BudgetItem{
		{Description: "Cimento", Quantity: fptr(500), Unit: sptr("sc"), TotalValue: 35500},
	}

	errs, warns := ValidateItems(items, api_models.ContractTypeMaterial)

	assert.Empty(t, errs)
	assert.Empty(t, warns)
}
