package orcamento

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func materialItem(qty float64, unit string) api_models.BudgetItem {
	return api_models.BudgetItem{Description: "item", Quantity: fptr(qty), Unit: sptr(unit), TotalValue: 100}
}

func serviceItem(hours float64) api_models.BudgetItem {
	return api_models.BudgetItem{Description: "item", Hours: fptr(hours), TotalValue: 100}
}

func TestDetectContractType(t *testing.T) {
	tests := []struct {
		name  string
		items []api_models.BudgetItem
		want  api_models.ContractType
	}{
		{
			name:  "material majority",
			items: []api_models.BudgetItem{materialItem(10, "sc"), materialItem(5, "m³"), serviceItem(8)},
			want:  api_models.ContractTypeMaterial,
		},
		{
			name:  "service majority",
			items: []api_models.BudgetItem{serviceItem(40), serviceItem(16), materialItem(3, "un")},
			want:  api_models.ContractTypeService,
		},
		{
			name:  "tie falls to service",
			items: []api_models.BudgetItem{materialItem(10, "sc"), serviceItem(8)},
			want:  api_models.ContractTypeService,
		},
		{
			name:  "empty falls to service",
			items: nil,
			want:  api_models.ContractTypeService,
		},
		{
			name: "zero quantity does not vote material",
			items: []api_models.BudgetItem{
				materialItem(0, "sc"),
				{Description: "consultoria", ServiceType: sptr("projeto"), TotalValue: 100},
			},
			want: api_models.ContractTypeService,
		},
		{
			name: "service type without hours still votes service",
			items: []api_models.BudgetItem{
				{Description: "gestão da obra", ServiceType: sptr("gestão"), TotalValue: 100},
			},
			want: api_models.ContractTypeService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectContractType(tt.items))
		})
	}
}
