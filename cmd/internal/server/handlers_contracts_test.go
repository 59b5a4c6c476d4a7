package server

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/testutil"
)

func TestGetContract(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	contract := testutil.CreateTestContract(1, "Obra Residencial Alfa", "Construtora Alfa", 500000)
	store.EXPECT().GetContract(gomock.Any(), int64(1)).Return(contract, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/contracts/1", testutil.WithAuth(token))

	var response ContractResponse
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Equal(t, int64(1), response.ID)
	require.Equal(t, "Obra Residencial Alfa", response.Name)
	require.Equal(t, 500000.0, response.Value)
	require.Nil(t, response.EndDate)
}

func TestGetContractInvalidID(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/contracts/abc", testutil.WithAuth(token))

	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "formato de ID de contrato inválido")
}

func TestGetContractNotFound(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	store.EXPECT().GetContract(gomock.Any(), int64(99)).Return(db.Contract{}, sql.ErrNoRows)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/contracts/99", testutil.WithAuth(token))

	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "não encontrado")
}

func TestListContracts(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	fixtures := testutil.DefaultFixtures()
	store.EXPECT().ListContracts(gomock.Any(), db.ListContractsParams{
		Limit:  20,
		Offset: 0,
	}).Return(fixtures.Contracts, nil)
	store.EXPECT().CountContracts(gomock.Any(), gomock.Any()).Return(int64(2), nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/contracts", testutil.WithAuth(token))

	var response struct {
		Data  []ContractResponse `json:"data"`
		Total int64              `json:"total"`
		Page  int                `json:"page"`
		Limit int                `json:"limit"`
	}
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Len(t, response.Data, 2)
	require.EqualValues(t, 2, response.Total)
	require.Equal(t, 1, response.Page)
	require.Equal(t, 20, response.Limit)
}

func TestUpdateContractProgressMissingBody(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeRequest(t, http.MethodPatch, "/api/v1/contracts/1/progress", map[string]string{}, testutil.WithAuth(token))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateContractProgressOutOfRange(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "engineer")
	body := map[string]float64{"progress": 150}
	w := ts.MakeRequest(t, http.MethodPatch, "/api/v1/contracts/1/progress", body, testutil.WithAuth(token))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContractMissingStartDate(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "engineer")
	body := map[string]interface{}{
		"name":   "Obra Nova",
		"client": "Cliente X",
		"value":  1000.0,
	}
	w := ts.MakePostRequest(t, "/api/v1/contracts", body, testutil.WithAuth(token))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListContractsEchoesClampedPagination(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	store.EXPECT().ListContracts(gomock.Any(), db.ListContractsParams{Limit: 20, Offset: 0}).Return([]db.Contract{}, nil)
	store.EXPECT().CountContracts(gomock.Any(), db.CountContractsParams{}).Return(int64(0), nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/contracts?limit=500", testutil.WithAuth(token))

	var response struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
	}
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Equal(t, 1, response.Page)
	require.Equal(t, 20, response.Limit)
}

func TestListContractNotasFiscais(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	fixtures := testutil.DefaultFixtures()
	store.EXPECT().GetContract(gomock.Any(), int64(1)).Return(fixtures.Contracts[0], nil)
	store.EXPECT().ListContractNotasFiscais(gomock.Any(), sql.NullInt64{Int64: 1, Valid: true}).
		Return([]db.NotaFiscal{fixtures.Notas[0]}, nil)
	store.EXPECT().ListNfItemsByNf(gomock.Any(), int64(1)).Return([]db.NfItem{fixtures.NfItems[0]}, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/contracts/1/nf", testutil.WithAuth(token))

	var response struct {
		Data  []api_models.NotaFiscal `json:"data"`
		Total int                     `json:"total"`
	}
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Equal(t, 1, response.Total)
	require.Len(t, response.Data, 1)
	require.Equal(t, "12345", response.Data[0].Number)
	require.Len(t, response.Data[0].Items, 1)
}

func TestListContractNotasFiscaisUnknownContract(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	store.EXPECT().GetContract(gomock.Any(), int64(99)).Return(db.Contract{}, sql.ErrNoRows)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/contracts/99/nf", testutil.WithAuth(token))

	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "não encontrado")
}

func TestContractKPIs(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	fixtures := testutil.DefaultFixtures()
	store.EXPECT().ListAllContracts(gomock.Any()).Return(fixtures.Contracts, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/contracts/kpis", testutil.WithAuth(token))

	var response struct {
		TotalValue      float64 `json:"totalValue"`
		ActiveContracts int     `json:"activeContracts"`
	}
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Equal(t, 620000.0, response.TotalValue)
	require.Equal(t, 2, response.ActiveContracts)
}
