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

func TestDashboardSummary(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	fixtures := testutil.DefaultFixtures()
	store.EXPECT().ListAllContracts(gomock.Any()).Return(fixtures.Contracts, nil)
	store.EXPECT().GetNotaFiscalTotals(gomock.Any()).Return(db.GetNotaFiscalTotalsRow{
		TotalNfs:   2,
		TotalValue: 53000,
	}, nil)
	store.EXPECT().CountNotasFiscaisByStatus(gomock.Any()).Return([]db.CountNotasFiscaisByStatusRow{
		{Status: "Pendente", Count: 2},
	}, nil)
	store.EXPECT().ListMonthlyNfStats(gomock.Any()).Return([]db.ListMonthlyNfStatsRow{}, nil)

	token := signAccessToken(t, cfg, 1, "engineer")
	w := ts.MakeGetRequest(t, "/api/v1/dashboard", testutil.WithAuth(token))

	var response api_models.DashboardSummary
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Equal(t, 620000.0, response.Kpis.TotalValue)
	require.EqualValues(t, 2, response.NfTotalCount)
	require.Equal(t, 53000.0, response.NfTotalValue)
	require.Empty(t, response.AttentionContracts)
}

func TestAdminListUsers(t *testing.T) {
	ts, store, cfg := newTestServer(t)

	fixtures := testutil.DefaultFixtures()
	store.EXPECT().ListUsers(gomock.Any(), db.ListUsersParams{Limit: 50, Offset: 0}).Return(fixtures.Users, nil)

	token := signAccessToken(t, cfg, 1, "admin")
	w := ts.MakeGetRequest(t, "/api/v1/admin/users", testutil.WithAuth(token))

	var response struct {
		Data []UserResponse `json:"data"`
	}
	testutil.AssertResponse(t, w, http.StatusOK, &response)
	require.Len(t, response.Data, 2)
	require.Equal(t, "admin@test.com", response.Data[0].Email)
}

func TestAdminUpdateUserRoleInvalidRole(t *testing.T) {
	ts, _, cfg := newTestServer(t)

	token := signAccessToken(t, cfg, 1, "admin")
	body := map[string]string{"role": "superuser"}
	w := ts.MakeRequest(t, http.MethodPatch, "/api/v1/admin/users/2/role", body, testutil.WithAuth(token))

	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "papel inválido")
}
