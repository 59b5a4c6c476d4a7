package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	"github.com/dalmoeng/custos-go/cmd/internal/testutil"
)

const budgetCSV = `Descrição;Categoria;Quantidade;Unidade;Valor Unitário;Valor Total
Cimento CP-II 50kg;Material;100;sc;35,50;3550,00
Aço CA-50 10mm;Material;500;kg;8,20;4100,00
`

// makeMultipartRequest uploads a file under the given form field.
func makeMultipartRequest(t *testing.T, ts *testutil.TestServer, path, field, filename string, content []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func TestParseBudgetCSV(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := makeMultipartRequest(t, ts, "/api/v1/budget/parse", "file", "orcamento.csv", []byte(budgetCSV), testutil.WithAuth(token))

	var result api_models.BudgetImportResult
	testutil.AssertResponse(t, w, http.StatusOK, &result)

	require.True(t, result.Success)
	require.Len(t, result.Items, 2)
	require.Equal(t, api_models.ContractTypeMaterial, result.ContractType)
	require.Equal(t, 7650.0, result.TotalValue)
	require.Empty(t, result.Errors)
}

func TestParseBudgetRejectsUnknownExtension(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := makeMultipartRequest(t, ts, "/api/v1/budget/parse", "file", "orcamento.pdf", []byte("%PDF-1.4"), testutil.WithAuth(token))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseBudgetMissingFile(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakePostRequest(t, "/api/v1/budget/parse", nil, testutil.WithAuth(token))

	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "arquivo 'file' não fornecido")
}

func TestGetContractBudget(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	fixtures := testutil.DefaultFixtures()
	store.EXPECT().GetContract(gomock.Any(), int64(1)).Return(fixtures.Contracts[0], nil)
	store.EXPECT().ListBudgetItemsByContract(gomock.Any(), int64(1)).Return(fixtures.Items[:2], nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/contracts/1/budget", testutil.WithAuth(token))

	var response struct {
		Data  []api_models.BudgetItem `json:"data"`
		Total int                     `json:"total"`
	}
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Len(t, response.Data, 2)
	require.Equal(t, "Cimento CP-II 50kg", response.Data[0].Description)
}
