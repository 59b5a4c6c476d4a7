package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/testutil"
)

func TestNfSuggestions(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	nota := testutil.CreateTestNotaFiscal(1, "12345", "Fornecedor Alfa LTDA", 1, 45000)
	nfItem := testutil.CreateTestNfItem(1, 1, "Cimento CP-II saco 50kg", 45000)
	budgetItem := testutil.CreateTestBudgetItem("itm-001", 1, 0, "Cimento CP-II 50kg", 100000)

	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(1)).Return(nota, nil)
	store.EXPECT().ListNfItemsByNf(gomock.Any(), int64(1)).Return([]db.NfItem{nfItem}, nil)
	store.EXPECT().ListBudgetItemsByContract(gomock.Any(), int64(1)).Return([]db.BudgetItem{budgetItem}, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/nf/1/suggestions", testutil.WithAuth(token))

	var response struct {
		Data  []api_models.NFToBudgetSuggestion `json:"data"`
		Total int                               `json:"total"`
	}
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.NotEmpty(t, response.Data)
	require.Equal(t, "itm-001", response.Data[0].BudgetItemID)
}

func TestNfSuggestionsWithoutContract(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	nota := testutil.CreateTestNotaFiscal(1, "12345", "Fornecedor Alfa LTDA", 0, 45000)
	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(1)).Return(nota, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/nf/1/suggestions", testutil.WithAuth(token))

	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "não está vinculada a nenhum contrato")
}

func TestLinkNfItemMissingBudgetItem(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakePutRequest(t, "/api/v1/nf/1/items/1/link", map[string]string{}, testutil.WithAuth(token))

	require.Equal(t, http.StatusBadRequest, w.Code)
}
