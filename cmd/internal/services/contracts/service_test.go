package contracts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	mockdb "github.com/dalmoeng/custos-go/cmd/internal/db/mock"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/services/apierrors"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

func newServiceWithMock(t *testing.T) (*Service, *mockdb.MockStore) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	return NewService(store, logging.GetLogger()), store
}

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestCreateValidation(t *testing.T) {
	svc, _ := newServiceWithMock(t)
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		params CreateParams
	}{
		{"missing name", CreateParams{Client: "Alfa", Value: 1000, StartDate: start}},
		{"missing client", CreateParams{Name: "Obra", Value: 1000, StartDate: start}},
		{"missing start date", CreateParams{Name: "Obra", Client: "Alfa", Value: 1000}},
		{"zero value without items", CreateParams{Name: "Obra", Client: "Alfa", StartDate: start}},
		{"bad status", CreateParams{Name: "Obra", Client: "Alfa", Value: 1000, StartDate: start, Status: "Inventado"}},
		{"meta above 100", CreateParams{Name: "Obra", Client: "Alfa", Value: 1000, StartDate: start, MetaReducaoPercentual: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.params)
			var vErr *apierrors.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestGetNotFound(t *testing.T) {
	svc, store := newServiceWithMock(t)

	store.EXPECT().GetContract(gomock.Any(), int64(7)).Return(db.Contract{}, sql.ErrNoRows)

	_, err := svc.Get(context.Background(), 7)
	var nfErr *apierrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestImportBudgetRejectsBlockedResults(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	tests := []struct {
		name   string
		result api_models.BudgetImportResult
	}{
		{"structural failure", api_models.BudgetImportResult{Success: false, Errors: []string{"planilha vazia"}}},
		{"validation errors", api_models.BudgetImportResult{Success: true, Errors: []string{"Item 1: Descrição é obrigatória"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ImportBudget(context.Background(), 1, &tt.result)
			var vErr *apierrors.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestUpdateProgressBounds(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	_, err := svc.UpdateProgress(context.Background(), 1, 120)
	var vErr *apierrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.UpdateProgress(context.Background(), 1, -1)
	require.ErrorAs(t, err, &vErr)
}

func TestUpdateValidatesFields(t *testing.T) {
	svc, store := newServiceWithMock(t)
	store.EXPECT().GetContract(gomock.Any(), int64(1)).Return(db.Contract{ID: 1}, nil).AnyTimes()

	badStatus := "Qualquer"
	_, err := svc.Update(context.Background(), 1, UpdateParams{Status: &badStatus})
	var vErr *apierrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	zero := 0.0
	_, err = svc.Update(context.Background(), 1, UpdateParams{Value: &zero})
	require.ErrorAs(t, err, &vErr)
}

func TestListDefaultsPagination(t *testing.T) {
	svc, store := newServiceWithMock(t)

	store.EXPECT().ListContracts(gomock.Any(), db.ListContractsParams{
		Limit:  20,
		Offset: 0,
	}).Return([]db.Contract{{ID: 1, Name: "Obra A"}}, nil)
	store.EXPECT().CountContracts(gomock.Any(), db.CountContractsParams{}).Return(int64(1), nil)

	rows, total, err := svc.List(context.Background(), ListFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
}

func TestGetBudgetMapsRows(t *testing.T) {
	svc, store := newServiceWithMock(t)

	store.EXPECT().GetContract(gomock.Any(), int64(2)).Return(db.Contract{ID: 2}, nil)
	store.EXPECT().ListBudgetItemsByContract(gomock.Any(), int64(2)).Return([]db.BudgetItem{
		{
			ID:          "b1",
			ContractID:  2,
			Position:    0,
			Description: "Cimento CP-II",
			Category:    "Estrutura",
			Quantity:    sql.NullFloat64{Float64: 500, Valid: true},
			Unit:        sql.NullString{String: "sc", Valid: true},
			TotalValue:  35500,
		},
	}, nil)

	items, err := svc.GetBudget(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "b1", item.ID)
	assert.Equal(t, "Cimento CP-II", item.Description)
	require.NotNil(t, item.Quantity)
	assert.InDelta(t, 500.0, *item.Quantity, 0.001)
	assert.Nil(t, item.Hours)
}

func TestCreateSeededValueComesFromItems(t *testing.T) {
	// Value is forced to the item sum even when a different value is passed.
	svc, store := newServiceWithMock(t)
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	items := []api_models.BudgetItem{
		{ID: "b1", Description: "Cimento", Quantity: fptr(500), Unit: sptr("sc"), TotalValue: 35500},
		{ID: "b2", Description: "Areia", Quantity: fptr(35), Unit: sptr("m³"), TotalValue: 4375},
	}

	store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(context.Background(), CreateParams{
		Name:      "Obra Residencial Alfa",
		Client:    "Construtora Alfa",
		Value:     999999,
		StartDate: start,
		Items:     items,
	})
	require.NoError(t, err)
}
