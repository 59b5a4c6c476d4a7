package orcamento

import "github.com/dalmoeng/custos-go/cmd/internal/api_models"

// DetectContractType classifies a parsed budget as material supply or
// service. An item votes material when it carries a positive quantity and a
// unit of measure; it votes service when it carries positive hours or a
// service type. Material wins only on a strict majority, so ties and empty
// inputs fall to service, the safer default for construction contracts.
func DetectContractType(items []api_models.BudgetItem) api_models.ContractType {
	var materialVotes, serviceVotes int

	for _, item := range items {
		if item.Quantity != nil && *item.Quantity > 0 && item.Unit != nil && *item.Unit != "" {
			materialVotes++
		}
		if (item.Hours != nil && *item.Hours > 0) || (item.ServiceType != nil && *item.ServiceType != "") {
			serviceVotes++
		}
	}

	if materialVotes > serviceVotes {
		return api_models.ContractTypeMaterial
	}
	return api_models.ContractTypeService
}
