package classify

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/services/apierrors"
	"github.com/dalmoeng/custos-go/cmd/internal/util"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

// Service links invoice lines to budget items and proposes candidate links.
type Service struct {
	store  db.Store
	logger *logging.Logger
}

func NewService(store db.Store, logger *logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// GetSuggestions scores the unlinked lines of an invoice against the budget
// of its contract. An invoice without a contract has nothing to match.
func (s *Service) GetSuggestions(ctx context.Context, nfID int64) ([]api_models.NFToBudgetSuggestion, error) {
	notaFiscal, err := s.store.GetNotaFiscal(ctx, nfID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.NewNotFoundError("nota fiscal %d não encontrada", nfID)
		}
		return nil, fmt.Errorf("loading invoice %d: %w", nfID, err)
	}
	if !notaFiscal.ContractID.Valid {
		return nil, apierrors.NewValidationError("NF %d não está vinculada a nenhum contrato", nfID)
	}

	nfItems, err := s.store.ListNfItemsByNf(ctx, nfID)
	if err != nil {
		return nil, fmt.Errorf("loading lines of invoice %d: %w", nfID, err)
	}

	budgetItems, err := s.store.ListBudgetItemsByContract(ctx, notaFiscal.ContractID.Int64)
	if err != nil {
		return nil, fmt.Errorf("loading budget of contract %d: %w", notaFiscal.ContractID.Int64, err)
	}

	return Suggest(nfItems, budgetItems), nil
}

// LinkParams describes a manual or suggestion-accepted link.
type LinkParams struct {
	BudgetItemID string
	Score        *float64
	Source       string
}

// LinkItem attributes one invoice line to a budget item. The line must
// belong to the invoice and the budget item to the invoice's contract.
func (s *Service) LinkItem(ctx context.Context, nfID, itemID int64, params LinkParams) (*api_models.NFItem, error) {
	_, notaFiscal, err := s.loadLine(ctx, nfID, itemID)
	if err != nil {
		return nil, err
	}

	budgetItem, err := s.store.GetBudgetItem(ctx, params.BudgetItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.NewNotFoundError("item de orçamento %s não encontrado", params.BudgetItemID)
		}
		return nil, fmt.Errorf("loading budget item %s: %w", params.BudgetItemID, err)
	}
	if !notaFiscal.ContractID.Valid || budgetItem.ContractID != notaFiscal.ContractID.Int64 {
		return nil, apierrors.NewValidationError("item de orçamento %s não pertence ao contrato da NF", params.BudgetItemID)
	}

	source := params.Source
	if source == "" {
		source = "manual"
	}

	updated, err := s.store.LinkNfItemToBudget(ctx, db.LinkNfItemToBudgetParams{
		ID:                   itemID,
		BudgetItemID:         sql.NullString{String: params.BudgetItemID, Valid: true},
		CostCenterID:         budgetItem.CostCenter,
		ClassificationScore:  util.NullableFloat64(params.Score),
		ClassificationSource: sql.NullString{String: source, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("linking invoice line %d: %w", itemID, err)
	}

	s.logger.WithFields(map[string]interface{}{"nf_id": nfID, "nf_item_id": itemID}).
		Infof("invoice line linked to budget item %s (%s)", params.BudgetItemID, source)

	result := itemToAPI(updated)
	return &result, nil
}

// UnlinkItem removes the budget attribution of one invoice line.
func (s *Service) UnlinkItem(ctx context.Context, nfID, itemID int64) (*api_models.NFItem, error) {
	if _, _, err := s.loadLine(ctx, nfID, itemID); err != nil {
		return nil, err
	}

	updated, err := s.store.LinkNfItemToBudget(ctx, db.LinkNfItemToBudgetParams{ID: itemID})
	if err != nil {
		return nil, fmt.Errorf("unlinking invoice line %d: %w", itemID, err)
	}

	result := itemToAPI(updated)
	return &result, nil
}

func (s *Service) loadLine(ctx context.Context, nfID, itemID int64) (db.NfItem, db.NotaFiscal, error) {
	nfItem, err := s.store.GetNfItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.NfItem{}, db.NotaFiscal{}, apierrors.NewNotFoundError("item %d não encontrado", itemID)
		}
		return db.NfItem{}, db.NotaFiscal{}, fmt.Errorf("loading invoice line %d: %w", itemID, err)
	}
	if nfItem.NfID != nfID {
		return db.NfItem{}, db.NotaFiscal{}, apierrors.NewValidationError("item %d não pertence à NF %d", itemID, nfID)
	}

	notaFiscal, err := s.store.GetNotaFiscal(ctx, nfID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.NfItem{}, db.NotaFiscal{}, apierrors.NewNotFoundError("nota fiscal %d não encontrada", nfID)
		}
		return db.NfItem{}, db.NotaFiscal{}, fmt.Errorf("loading invoice %d: %w", nfID, err)
	}

	return nfItem, notaFiscal, nil
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
