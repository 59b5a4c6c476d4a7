package nf

import (
	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/util"
)

func toAPI(row db.NotaFiscal, items []db.NfItem) api_models.NotaFiscal {
	result := api_models.NotaFiscal{
		ID:       row.ID,
		Number:   row.Number,
		Series:   row.Series,
		Supplier: row.Supplier,
		Value:    row.Value,
		Date:     row.IssueDate.Format("2006-01-02"),
		Status:   row.Status,
		XmlFile:  util.StringPtr(row.XmlFile),
		PdfFile:  util.StringPtr(row.PdfFile),
		Items:    make([]api_models.NFItem, 0, len(items)),
	}
	if row.ContractID.Valid {
		result.Contract = &row.ContractID.Int64
	}
	for _, item := range items {
		result.Items = append(result.Items, itemToAPI(item))
	}
	return result
}

func itemToAPI(item db.NfItem) api_models.NFItem {
	return api_models.NFItem{
		ID:                   item.ID,
		Description:          item.Description,
		Quantity:             item.Quantity,
		UnitValue:            item.UnitValue,
		TotalValue:           item.TotalValue,
		Ncm:                  util.StringPtr(item.Ncm),
		Unit:                 util.StringPtr(item.Unit),
		Weight:               util.FloatPtr(item.Weight),
		BudgetItemID:         util.StringPtr(item.BudgetItemID),
		CostCenterID:         util.StringPtr(item.CostCenterID),
		ClassificationScore:  util.FloatPtr(item.ClassificationScore),
		ClassificationSource: util.StringPtr(item.ClassificationSource),
	}
}
