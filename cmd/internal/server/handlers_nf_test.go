package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/testutil"
)

func TestGetNotaFiscal(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	nota := testutil.CreateTestNotaFiscal(1, "12345", "Fornecedor Alfa LTDA", 1, 45000)
	item := testutil.CreateTestNfItem(1, 1, "Cimento CP-II saco 50kg", 45000)
	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(1)).Return(nota, nil)
	store.EXPECT().ListNfItemsByNf(gomock.Any(), int64(1)).Return([]db.NfItem{item}, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/nf/1", testutil.WithAuth(token))

	var response api_models.NotaFiscal
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Equal(t, "12345", response.Number)
	require.Equal(t, "Pendente", response.Status)
	require.Len(t, response.Items, 1)
}

func TestRejectNotaFiscalWithoutReason(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakePostRequest(t, "/api/v1/nf/1/reject", map[string]string{}, testutil.WithAuth(token))

	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "motivo da rejeição é obrigatório")
}

func TestProcessNotaFiscalFromPendente(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	nota := testutil.CreateTestNotaFiscal(1, "12345", "Fornecedor Alfa LTDA", 1, 45000)
	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(1)).Return(nota, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakePostRequest(t, "/api/v1/nf/1/process", nil, testutil.WithAuth(token))

	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "transição de status inválida")
}

func TestValidateNotaFiscal(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	nota := testutil.CreateTestNotaFiscal(1, "12345", "Fornecedor Alfa LTDA", 1, 45000)
	validated := nota
	validated.Status = "Validada"
	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(1)).Return(nota, nil)
	store.EXPECT().UpdateNotaFiscalStatus(gomock.Any(), gomock.Any()).Return(validated, nil)
	store.EXPECT().ListNfItemsByNf(gomock.Any(), int64(1)).Return([]db.NfItem{}, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakePostRequest(t, "/api/v1/nf/1/validate", nil, testutil.WithAuth(token))

	var response api_models.NotaFiscal
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Equal(t, "Validada", response.Status)
}

func TestNfStats(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	store.EXPECT().GetNotaFiscalTotals(gomock.Any()).Return(db.GetNotaFiscalTotalsRow{
		TotalNfs:   3,
		TotalValue: 98000,
	}, nil)
	store.EXPECT().CountNotasFiscaisByStatus(gomock.Any()).Return([]db.CountNotasFiscaisByStatusRow{
		{Status: "Pendente", Count: 2},
		{Status: "Validada", Count: 1},
	}, nil)
	store.EXPECT().ListMonthlyNfStats(gomock.Any()).Return([]db.ListMonthlyNfStatsRow{
		{Month: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Count: 3, Value: 98000},
	}, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/nf/stats", testutil.WithAuth(token))

	var response api_models.NFStats
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.EqualValues(t, 3, response.TotalCount)
	require.Equal(t, 98000.0, response.TotalValue)
	require.Len(t, response.ByStatus, 2)
	require.Equal(t, "2026-08", response.Monthly[0].Month)
}

func TestListNotasFiscaisDefaults(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	nota := testutil.CreateTestNotaFiscal(1, "12345", "Fornecedor Alfa LTDA", 1, 45000)
	store.EXPECT().ListNotasFiscais(gomock.Any(), db.ListNotasFiscaisParams{
		Limit:  20,
		Offset: 0,
	}).Return([]db.NotaFiscal{nota}, nil)
	store.EXPECT().CountNotasFiscais(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	store.EXPECT().ListNfItemsByNf(gomock.Any(), int64(1)).Return([]db.NfItem{}, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/nf", testutil.WithAuth(token))

	var response struct {
		Data  []api_models.NotaFiscal `json:"data"`
		Total int64                   `json:"total"`
	}
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Len(t, response.Data, 1)
	require.EqualValues(t, 1, response.Total)
}
