package nf

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/services/apierrors"
	"github.com/dalmoeng/custos-go/cmd/internal/util"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

const uniqueViolation = "23505"

// Service owns the invoice lifecycle: CRUD, status transitions and the
// stats read model.
type Service struct {
	store  db.Store
	logger *logging.Logger
}

func NewService(store db.Store, logger *logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ItemParams describes one invoice line on creation.
type ItemParams struct {
	Description string
	Quantity    float64
	UnitValue   float64
	TotalValue  float64
	Ncm         *string
	Unit        *string
	Weight      *float64
}

// CreateParams describes a new invoice with its lines.
type CreateParams struct {
	Number     string
	Series     string
	Supplier   string
	ContractID *int64
	Value      float64
	IssueDate  time.Time
	XmlFile    *string
	PdfFile    *string
	Items      []ItemParams
}

// UpdateParams carries a partial invoice update; nil fields stay unchanged.
type UpdateParams struct {
	Number     *string
	Series     *string
	Supplier   *string
	ContractID *int64
	Value      *float64
	IssueDate  *time.Time
}

// ListFilters narrows and pages the invoice listing.
type ListFilters struct {
	Status     *string
	Supplier   *string
	ContractID *int64
	Page       int
	Limit      int
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

// Create validates and persists an invoice with its lines in one
// transaction. A duplicate (number, series, supplier) triple is rejected.
func (s *Service) Create(ctx context.Context, params CreateParams) (*api_models.NotaFiscal, error) {
	if params.Number == "" {
		return nil, apierrors.NewValidationError("número da NF é obrigatório")
	}
	if params.Supplier == "" {
		return nil, apierrors.NewValidationError("fornecedor é obrigatório")
	}
	if params.Value <= 0 {
		return nil, apierrors.NewValidationError("valor da NF deve ser maior que zero")
	}
	if params.IssueDate.IsZero() {
		return nil, apierrors.NewValidationError("data de emissão é obrigatória")
	}

	var created db.NotaFiscal
	var createdItems []db.NfItem

	err := s.store.ExecTx(ctx, func(q *db.Queries) error {
		var err error
		created, err = q.CreateNotaFiscal(ctx, db.CreateNotaFiscalParams{
			Number:     params.Number,
			Series:     params.Series,
			Supplier:   params.Supplier,
			ContractID: util.NullableInt64(params.ContractID),
			Value:      params.Value,
			IssueDate:  params.IssueDate,
			Status:     StatusPendente,
			XmlFile:    util.NullableString(params.XmlFile),
			PdfFile:    util.NullableString(params.PdfFile),
		})
		if err != nil {
			return err
		}
		for _, item := range params.Items {
			row, err := q.CreateNfItem(ctx, db.CreateNfItemParams{
				NfID:        created.ID,
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitValue:   item.UnitValue,
				TotalValue:  item.TotalValue,
				Ncm:         util.NullableString(item.Ncm),
				Unit:        util.NullableString(item.Unit),
				Weight:      util.NullableFloat64(item.Weight),
			})
			if err != nil {
				return err
			}
			createdItems = append(createdItems, row)
		}
		return nil
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apierrors.NewValidationError("NF %s série %s de %s já cadastrada",
				params.Number, params.Series, params.Supplier)
		}
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	s.logger.WithField("nf_id", created.ID).Infof("invoice %s/%s created with %d items",
		created.Number, created.Series, len(createdItems))

	result := toAPI(created, createdItems)
	return &result, nil
}

// Get loads one invoice with its lines.
func (s *Service) Get(ctx context.Context, id int64) (*api_models.NotaFiscal, error) {
	row, err := s.store.GetNotaFiscal(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.NewNotFoundError("nota fiscal %d não encontrada", id)
		}
		return nil, fmt.Errorf("loading invoice %d: %w", id, err)
	}

	items, err := s.store.ListNfItemsByNf(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading lines of invoice %d: %w", id, err)
	}

	result := toAPI(row, items)
	return &result, nil
}

// ListByContract returns every invoice of one contract in issue-date order.
// The caller is expected to have resolved the contract already.
func (s *Service) ListByContract(ctx context.Context, contractID int64) ([]api_models.NotaFiscal, error) {
	rows, err := s.store.ListContractNotasFiscais(ctx, sql.NullInt64{Int64: contractID, Valid: true})
	if err != nil {
		return nil, fmt.Errorf("listing invoices of contract %d: %w", contractID, err)
	}

	result := make([]api_models.NotaFiscal, 0, len(rows))
	for _, row := range rows {
		items, err := s.store.ListNfItemsByNf(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("loading lines of invoice %d: %w", row.ID, err)
		}
		result = append(result, toAPI(row, items))
	}

	return result, nil
}

// List pages through invoices with optional filters, returning the page and
// the unfiltered-by-page total.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]api_models.NotaFiscal, int64, error) {
	filters = filters.Normalized()

	rows, err := s.store.ListNotasFiscais(ctx, db.ListNotasFiscaisParams{
		Status:     util.NullableString(filters.Status),
		Supplier:   util.NullableString(filters.Supplier),
		ContractID: util.NullableInt64(filters.ContractID),
		Limit:      int32(filters.Limit),
		Offset:     int32((filters.Page - 1) * filters.Limit),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing invoices: %w", err)
	}

	total, err := s.store.CountNotasFiscais(ctx, db.CountNotasFiscaisParams{
		Status:     util.NullableString(filters.Status),
		Supplier:   util.NullableString(filters.Supplier),
		ContractID: util.NullableInt64(filters.ContractID),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("counting invoices: %w", err)
	}

	result := make([]api_models.NotaFiscal, 0, len(rows))
	for _, row := range rows {
		items, err := s.store.ListNfItemsByNf(ctx, row.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("loading lines of invoice %d: %w", row.ID, err)
		}
		result = append(result, toAPI(row, items))
	}

	return result, total, nil
}

// Update applies a partial update. Only Pendente invoices may be edited.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*api_models.NotaFiscal, error) {
	current, err := s.store.GetNotaFiscal(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.NewNotFoundError("nota fiscal %d não encontrada", id)
		}
		return nil, fmt.Errorf("loading invoice %d: %w", id, err)
	}
	if current.Status != StatusPendente {
		return nil, apierrors.NewValidationError("apenas NFs pendentes podem ser editadas (status atual: %s)", current.Status)
	}
	if params.Value != nil && *params.Value <= 0 {
		return nil, apierrors.NewValidationError("valor da NF deve ser maior que zero")
	}

	updated, err := s.store.UpdateNotaFiscal(ctx, db.UpdateNotaFiscalParams{
		ID:         id,
		Number:     util.NullableString(params.Number),
		Series:     util.NullableString(params.Series),
		Supplier:   util.NullableString(params.Supplier),
		ContractID: util.NullableInt64(params.ContractID),
		Value:      util.NullableFloat64(params.Value),
		IssueDate:  util.NullableTime(params.IssueDate),
	})
	if err != nil {
		return nil, fmt.Errorf("updating invoice %d: %w", id, err)
	}

	items, err := s.store.ListNfItemsByNf(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading lines of invoice %d: %w", id, err)
	}

	result := toAPI(updated, items)
	return &result, nil
}

// Delete removes an invoice. Processed invoices are evidence of realized
// spend and cannot be deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	current, err := s.store.GetNotaFiscal(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apierrors.NewNotFoundError("nota fiscal %d não encontrada", id)
		}
		return fmt.Errorf("loading invoice %d: %w", id, err)
	}
	if current.Status == StatusProcessada {
		return apierrors.NewValidationError("NF processada não pode ser excluída")
	}

	if err := s.store.DeleteNotaFiscal(ctx, id); err != nil {
		return fmt.Errorf("deleting invoice %d: %w", id, err)
	}
	return nil
}

// Validate moves a pending invoice to Validada.
func (s *Service) Validate(ctx context.Context, id int64) (*api_models.NotaFiscal, error) {
	return s.transition(ctx, id, StatusValidada, nil)
}

// Reject moves a pending invoice to Rejeitada, recording the reason.
func (s *Service) Reject(ctx context.Context, id int64, reason string) (*api_models.NotaFiscal, error) {
	if reason == "" {
		return nil, apierrors.NewValidationError("motivo da rejeição é obrigatório")
	}
	return s.transition(ctx, id, StatusRejeitada, &reason)
}

// Process moves a validated invoice to Processada.
func (s *Service) Process(ctx context.Context, id int64) (*api_models.NotaFiscal, error) {
	return s.transition(ctx, id, StatusProcessada, nil)
}

func (s *Service) transition(ctx context.Context, id int64, target string, reason *string) (*api_models.NotaFiscal, error) {
	current, err := s.store.GetNotaFiscal(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.NewNotFoundError("nota fiscal %d não encontrada", id)
		}
		return nil, fmt.Errorf("loading invoice %d: %w", id, err)
	}

	if err := CheckTransition(current.Status, target); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateNotaFiscalStatus(ctx, db.UpdateNotaFiscalStatusParams{
		ID:              id,
		Status:          target,
		RejectionReason: util.NullableString(reason),
	})
	if err != nil {
		return nil, fmt.Errorf("updating status of invoice %d: %w", id, err)
	}

	s.logger.WithField("nf_id", id).Infof("invoice status %s -> %s", current.Status, target)

	items, err := s.store.ListNfItemsByNf(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading lines of invoice %d: %w", id, err)
	}

	result := toAPI(updated, items)
	return &result, nil
}

// Stats aggregates invoice volume: totals, per-status distribution and the
// monthly series.
func (s *Service) Stats(ctx context.Context) (*api_models.NFStats, error) {
	totals, err := s.store.GetNotaFiscalTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading invoice totals: %w", err)
	}

	byStatus, err := s.store.CountNotasFiscaisByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting invoices by status: %w", err)
	}

	monthly, err := s.store.ListMonthlyNfStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading monthly invoice stats: %w", err)
	}

	stats := &api_models.NFStats{
		TotalCount: totals.TotalNfs,
		TotalValue: totals.TotalValue,
		ByStatus:   make([]api_models.NfStatusCount, 0, len(byStatus)),
		Monthly:    make([]api_models.MonthlyNfStat, 0, len(monthly)),
	}
	for _, row := range byStatus {
		stats.ByStatus = append(stats.ByStatus, api_models.NfStatusCount{Status: row.Status, Count: row.Count})
	}
	for _, row := range monthly {
		stats.Monthly = append(stats.Monthly, api_models.MonthlyNfStat{
			Month: row.Month.Format("2006-01"),
			Count: row.Count,
			Value: row.Value,
		})
	}

	return stats, nil
}
