package contracts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/services/apierrors"
	"github.com/dalmoeng/custos-go/cmd/internal/services/orcamento"
	"github.com/dalmoeng/custos-go/cmd/internal/util"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

// Contract lifecycle labels, in Portuguese as persisted.
const (
	StatusEmAndamento = "Em Andamento"
	StatusFinalizando = "Finalizando"
	StatusConcluido   = "Concluído"
	StatusPausado     = "Pausado"
)

var validStatuses = map[string]bool{
	StatusEmAndamento: true,
	StatusFinalizando: true,
	StatusConcluido:   true,
	StatusPausado:     true,
}

// Service owns contract CRUD and the persistence side of budget imports.
type Service struct {
	store  db.Store
	logger *logging.Logger
}

func NewService(store db.Store, logger *logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateParams describes a new contract. Items, when present, seed the
// predicted budget: the contract value becomes their sum and the contract
// type is inferred unless given.
type CreateParams struct {
	Name                  string
	Client                string
	Value                 float64
	Status                string
	StartDate             time.Time
	EndDate               *time.Time
	ContractType          *string
	MetaReducaoPercentual float64
	Items                 []api_models.BudgetItem
}

// UpdateParams carries a partial contract update; nil fields stay unchanged.
type UpdateParams struct {
	Name                  *string
	Client                *string
	Value                 *float64
	Spent                 *float64
	Progress              *float64
	Status                *string
	EndDate               *time.Time
	ContractType          *string
	MetaReducaoPercentual *float64
}

// ListFilters narrows and pages the contract listing.
type ListFilters struct {
	Client *string
	Status *string
	Page   int
	Limit  int
}

// Normalized clamps pagination to the accepted window so callers can echo
// the values that were actually applied.
func (f ListFilters) Normalized() ListFilters {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return f
}

// Create persists a contract, optionally seeded by an already-parsed budget
// import. Contract and items land in one transaction.
func (s *Service) Create(ctx context.Context, params CreateParams) (*db.Contract, error) {
	if params.Name == "" {
		return nil, apierrors.NewValidationError("nome do contrato é obrigatório")
	}
	if params.Client == "" {
		return nil, apierrors.NewValidationError("cliente é obrigatório")
	}
	if params.StartDate.IsZero() {
		return nil, apierrors.NewValidationError("data de início é obrigatória")
	}
	status := params.Status
	if status == "" {
		status = StatusEmAndamento
	}
	if !validStatuses[status] {
		return nil, apierrors.NewValidationError("status de contrato inválido: %s", status)
	}
	if params.MetaReducaoPercentual < 0 || params.MetaReducaoPercentual > 100 {
		return nil, apierrors.NewValidationError("meta de redução deve estar entre 0 e 100")
	}

	value := params.Value
	contractType := params.ContractType
	hasImport := len(params.Items) > 0
	if hasImport {
		value = 0
		for _, item := range params.Items {
			value += item.TotalValue
		}
		if contractType == nil {
			detected := string(orcamento.DetectContractType(params.Items))
			contractType = &detected
		}
	}
	if value <= 0 {
		return nil, apierrors.NewValidationError("valor do contrato deve ser maior que zero")
	}

	var created db.Contract
	err := s.store.ExecTx(ctx, func(q *db.Queries) error {
		var err error
		created, err = q.CreateContract(ctx, db.CreateContractParams{
			Name:                  params.Name,
			Client:                params.Client,
			Value:                 value,
			Status:                status,
			StartDate:             params.StartDate,
			EndDate:               util.NullableTime(params.EndDate),
			ContractType:          util.NullableString(contractType),
			MetaReducaoPercentual: params.MetaReducaoPercentual,
			HasBudgetImport:       hasImport,
		})
		if err != nil {
			return err
		}
		return insertBudgetItems(ctx, q, created.ID, params.Items)
	})
	if err != nil {
		return nil, fmt.Errorf("creating contract: %w", err)
	}

	s.logger.WithField("contract_id", created.ID).
		Infof("contract %q created (%d budget items)", created.Name, len(params.Items))

	return &created, nil
}

// Get loads one contract.
func (s *Service) Get(ctx context.Context, id int64) (*db.Contract, error) {
	contract, err := s.store.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.NewNotFoundError("contrato %d não encontrado", id)
		}
		return nil, fmt.Errorf("loading contract %d: %w", id, err)
	}
	return &contract, nil
}

// List pages through contracts with optional filters.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]db.Contract, int64, error) {
	filters = filters.Normalized()

	rows, err := s.store.ListContracts(ctx, db.ListContractsParams{
		Client: util.NullableString(filters.Client),
		Status: util.NullableString(filters.Status),
		Limit:  int32(filters.Limit),
		Offset: int32((filters.Page - 1) * filters.Limit),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing contracts: %w", err)
	}

	total, err := s.store.CountContracts(ctx, db.CountContractsParams{
		Client: util.NullableString(filters.Client),
		Status: util.NullableString(filters.Status),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("counting contracts: %w", err)
	}

	return rows, total, nil
}

// Update applies a partial update to a contract.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*db.Contract, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if params.Status != nil && !validStatuses[*params.Status] {
		return nil, apierrors.NewValidationError("status de contrato inválido: %s", *params.Status)
	}
	if params.Value != nil && *params.Value <= 0 {
		return nil, apierrors.NewValidationError("valor do contrato deve ser maior que zero")
	}
	if params.Progress != nil && (*params.Progress < 0 || *params.Progress > 100) {
		return nil, apierrors.NewValidationError("progresso deve estar entre 0 e 100")
	}

	updated, err := s.store.UpdateContract(ctx, db.UpdateContractParams{
		ID:                    id,
		Name:                  util.NullableString(params.Name),
		Client:                util.NullableString(params.Client),
		Value:                 util.NullableFloat64(params.Value),
		Spent:                 util.NullableFloat64(params.Spent),
		Progress:              util.NullableFloat64(params.Progress),
		Status:                util.NullableString(params.Status),
		EndDate:               util.NullableTime(params.EndDate),
		ContractType:          util.NullableString(params.ContractType),
		MetaReducaoPercentual: util.NullableFloat64(params.MetaReducaoPercentual),
	})
	if err != nil {
		return nil, fmt.Errorf("updating contract %d: %w", id, err)
	}

	return &updated, nil
}

// Delete removes a contract and, through cascading, its budget items.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteContract(ctx, id); err != nil {
		return fmt.Errorf("deleting contract %d: %w", id, err)
	}
	return nil
}

// GetBudget returns the predicted budget of a contract in import order.
func (s *Service) GetBudget(ctx context.Context, id int64) ([]api_models.BudgetItem, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.store.ListBudgetItemsByContract(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading budget of contract %d: %w", id, err)
	}

	items := make([]api_models.BudgetItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, api_models.BudgetItem{
			ID:          row.ID,
			Description: row.Description,
			Category:    row.Category,
			CostCenter:  util.StringPtr(row.CostCenter),
			Quantity:    util.FloatPtr(row.Quantity),
			Unit:        util.StringPtr(row.Unit),
			Weight:      util.FloatPtr(row.Weight),
			UnitValue:   util.FloatPtr(row.UnitValue),
			Hours:       util.FloatPtr(row.Hours),
			HourlyRate:  util.FloatPtr(row.HourlyRate),
			ServiceType: util.StringPtr(row.ServiceType),
			TotalValue:  row.TotalValue,
		})
	}
	return items, nil
}

// ImportBudget replaces the predicted budget of an existing contract with a
// parsed import. Blocking validation errors must be resolved first. The old
// items, the new items and the contract figures change in one transaction.
func (s *Service) ImportBudget(ctx context.Context, id int64, result *api_models.BudgetImportResult) (*db.Contract, error) {
	if !result.Success {
		return nil, apierrors.NewValidationError("importação estruturalmente inválida: %v", result.Errors)
	}
	if len(result.Errors) > 0 {
		return nil, apierrors.NewValidationError("importação contém erros de validação: %v", result.Errors)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	var updated db.Contract
	err := s.store.ExecTx(ctx, func(q *db.Queries) error {
		if err := q.DeleteBudgetItemsByContract(ctx, id); err != nil {
			return err
		}
		if err := insertBudgetItems(ctx, q, id, result.Items); err != nil {
			return err
		}
		contractType := string(result.ContractType)
		var err error
		updated, err = q.SetContractBudgetImport(ctx, db.SetContractBudgetImportParams{
			ID:              id,
			Value:           result.TotalValue,
			ContractType:    sql.NullString{String: contractType, Valid: contractType != ""},
			HasBudgetImport: true,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("importing budget into contract %d: %w", id, err)
	}

	s.logger.WithField("contract_id", id).
		Infof("budget import applied: %d items, total %.2f", len(result.Items), result.TotalValue)

	return &updated, nil
}

// UpdateProgress sets the tracked physical progress of a contract.
func (s *Service) UpdateProgress(ctx context.Context, id int64, progress float64) (*db.Contract, error) {
	if progress < 0 || progress > 100 {
		return nil, apierrors.NewValidationError("progresso deve estar entre 0 e 100")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateContractProgress(ctx, db.UpdateContractProgressParams{ID: id, Progress: progress})
	if err != nil {
		return nil, fmt.Errorf("updating progress of contract %d: %w", id, err)
	}
	return &updated, nil
}

func insertBudgetItems(ctx context.Context, q *db.Queries, contractID int64, items []api_models.BudgetItem) error {
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := q.CreateBudgetItem(ctx, db.CreateBudgetItemParams{
			ID:          id,
			ContractID:  contractID,
			Position:    int32(i),
			Description: item.Description,
			Category:    item.Category,
			CostCenter:  util.NullableString(item.CostCenter),
			Quantity:    util.NullableFloat64(item.Quantity),
			Unit:        util.NullableString(item.Unit),
			Weight:      util.NullableFloat64(item.Weight),
			UnitValue:   util.NullableFloat64(item.UnitValue),
			Hours:       util.NullableFloat64(item.Hours),
			HourlyRate:  util.NullableFloat64(item.HourlyRate),
			ServiceType: util.NullableString(item.ServiceType),
			TotalValue:  item.TotalValue,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
