package execucao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/services/apierrors"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

// Service loads a contract's execution inputs from the store and derives
// the reconciled view. The derivation itself lives in BuildExecution.
type Service struct {
	store      db.Store
	logger     *logging.Logger
	thresholds Thresholds
}

func NewService(store db.Store, logger *logging.Logger, thresholds Thresholds) *Service {
	return &Service{store: store, logger: logger, thresholds: thresholds}
}

// GetExecution rebuilds the predicted-vs-realized picture of a contract.
// GET and recalculate share this path: the view is always derived from the
// current links, never cached, so repeating the call changes nothing.
func (s *Service) GetExecution(ctx context.Context, contractID int64) (*api_models.ContractExecution, error) {
	contract, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.NewNotFoundError("contrato %d não encontrado", contractID)
		}
		return nil, fmt.Errorf("loading contract %d: %w", contractID, err)
	}

	items, err := s.store.ListBudgetItemsByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("loading budget items for contract %d: %w", contractID, err)
	}

	nfContract := sql.NullInt64{Int64: contractID, Valid: true}
	rows, err := s.store.ListContractLinkedNfItems(ctx, nfContract)
	if err != nil {
		return nil, fmt.Errorf("loading invoice lines for contract %d: %w", contractID, err)
	}

	unlinked, err := s.store.CountUnlinkedNfItemsByContract(ctx, nfContract)
	if err != nil {
		return nil, fmt.Errorf("counting unlinked invoice lines for contract %d: %w", contractID, err)
	}

	linked := make([]LinkedRow, 0, len(rows))
	for _, row := range rows {
		if !row.BudgetItemID.Valid {
			continue
		}
		linked = append(linked, LinkedRow{
			NfID:         row.NfID,
			NfItemID:     row.ID,
			BudgetItemID: row.BudgetItemID.String,
			Value:        row.TotalValue,
			Quantity:     row.Quantity,
			Date:         row.IssueDate,
		})
	}

	execution := BuildExecution(Input{
		ContractID:       contractID,
		PhysicalProgress: contract.Progress,
		Items:            items,
		Linked:           linked,
		UnlinkedCount:    unlinked,
	}, s.thresholds)
	execution.LastUpdate = time.Now().UTC().Format(time.RFC3339)

	s.logger.WithField("contract_id", contractID).
		Debugf("execution rebuilt: %d items, %d alerts", len(execution.Items), len(execution.Alerts))

	return &execution, nil
}
