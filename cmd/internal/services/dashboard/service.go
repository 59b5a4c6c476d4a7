package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

// Service assembles the dashboard payload from contract and invoice data.
type Service struct {
	store          db.Store
	logger         *logging.Logger
	attentionRatio float64
}

// NewService builds the dashboard service. A non-positive attentionRatio
// falls back to DefaultAttentionRatio.
func NewService(store db.Store, logger *logging.Logger, attentionRatio float64) *Service {
	if attentionRatio <= 0 {
		attentionRatio = DefaultAttentionRatio
	}
	return &Service{store: store, logger: logger, attentionRatio: attentionRatio}
}

// GetKPIs aggregates the contract overview figures.
func (s *Service) GetKPIs(ctx context.Context) (*api_models.ContractKPIs, error) {
	contracts, err := s.store.ListAllContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading contracts for KPIs: %w", err)
	}
	kpis := Summarize(contracts)
	return &kpis, nil
}

// GetSummary builds the full home-screen payload: contract KPIs, low-balance
// contracts and invoice volume statistics.
func (s *Service) GetSummary(ctx context.Context) (*api_models.DashboardSummary, error) {
	var (
		contracts []db.Contract
		totals    db.GetNotaFiscalTotalsRow
		byStatus  []db.CountNotasFiscaisByStatusRow
		monthly   []db.ListMonthlyNfStatsRow
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		contracts, err = s.store.ListAllContracts(gctx)
		if err != nil {
			return fmt.Errorf("loading contracts for dashboard: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		totals, err = s.store.GetNotaFiscalTotals(gctx)
		if err != nil {
			return fmt.Errorf("loading invoice totals: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		byStatus, err = s.store.CountNotasFiscaisByStatus(gctx)
		if err != nil {
			return fmt.Errorf("counting invoices by status: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		monthly, err = s.store.ListMonthlyNfStats(gctx)
		if err != nil {
			return fmt.Errorf("loading monthly invoice stats: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &api_models.DashboardSummary{
		Kpis:               Summarize(contracts),
		AttentionContracts: AttentionList(contracts, s.attentionRatio),
		NfTotalCount:       totals.TotalNfs,
		NfTotalValue:       totals.TotalValue,
		NfByStatus:         make([]api_models.NfStatusCount, 0, len(byStatus)),
		NfMonthly:          make([]api_models.MonthlyNfStat, 0, len(monthly)),
	}
	for _, row := range byStatus {
		summary.NfByStatus = append(summary.NfByStatus, api_models.NfStatusCount{Status: row.Status, Count: row.Count})
	}
	for _, row := range monthly {
		summary.NfMonthly = append(summary.NfMonthly, api_models.MonthlyNfStat{
			Month: row.Month.Format("2006-01"),
			Count: row.Count,
			Value: row.Value,
		})
	}

	return summary, nil
}
