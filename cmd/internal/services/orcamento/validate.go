package orcamento

import (
	"fmt"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
)

// ValidateItems checks parsed budget items against the rules of the detected
// contract type. Errors block persisting the import; warnings only inform.
// Item numbering is 1-based to match what the user sees in the spreadsheet.
func ValidateItems(items []api_models.BudgetItem, contractType api_models.ContractType) (errors, warnings []string) {
	errors = []string{}
	warnings = []string{}

	for i, item := range items {
		n := i + 1

		if item.Description == "" {
			errors = append(errors, fmt.Sprintf("Item %d: Descrição é obrigatória", n))
		}
		if item.TotalValue <= 0 {
			errors = append(errors, fmt.Sprintf("Item %d: Valor total deve ser maior que zero", n))
		}

		switch contractType {
		case api_models.ContractTypeMaterial:
			if item.Quantity == nil || *item.Quantity <= 0 {
				errors = append(errors, fmt.Sprintf("Item %d: Quantidade é obrigatória para contratos de material", n))
			}
			if item.Unit == nil || *item.Unit == "" {
				warnings = append(warnings, fmt.Sprintf("Item %d: Unidade não informada", n))
			}
		case api_models.ContractTypeService:
			if item.Hours == nil || *item.Hours <= 0 {
				warnings = append(warnings, fmt.Sprintf("Item %d: Horas não informadas", n))
			}
		}
	}

	return errors, warnings
}
