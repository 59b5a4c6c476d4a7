package nf

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

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

func pendingNF(id int64) db.NotaFiscal {
	return db.NotaFiscal{
		ID:        id,
		Number:    "123",
		Series:    "1",
		Supplier:  "Fornecedor X",
		Value:     1000,
		IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:    StatusPendente,
	}
}

func TestValidateTransition(t *testing.T) {
	svc, store := newServiceWithMock(t)
	nf := pendingNF(5)
	validated := nf
	validated.Status = StatusValidada

	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(5)).Return(nf, nil)
	store.EXPECT().UpdateNotaFiscalStatus(gomock.Any(), db.UpdateNotaFiscalStatusParams{
		ID:     5,
		Status: StatusValidada,
	}).Return(validated, nil)
	store.EXPECT().ListNfItemsByNf(gomock.Any(), int64(5)).Return([]db.NfItem{}, nil)

	result, err := svc.Validate(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, StatusValidada, result.Status)
}

func TestProcessRequiresValidated(t *testing.T) {
	svc, store := newServiceWithMock(t)

	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(5)).Return(pendingNF(5), nil)

	_, err := svc.Process(context.Background(), 5)
	var vErr *apierrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestRejectRecordsReason(t *testing.T) {
	svc, store := newServiceWithMock(t)
	nf := pendingNF(8)
	rejected := nf
	rejected.Status = StatusRejeitada
	rejected.RejectionReason = sql.NullString{String: "valor divergente do pedido", Valid: true}

	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(8)).Return(nf, nil)
	store.EXPECT().UpdateNotaFiscalStatus(gomock.Any(), db.UpdateNotaFiscalStatusParams{
		ID:              8,
		Status:          StatusRejeitada,
		RejectionReason: sql.NullString{String: "valor divergente do pedido", Valid: true},
	}).Return(rejected, nil)
	store.EXPECT().ListNfItemsByNf(gomock.Any(), int64(8)).Return([]db.NfItem{}, nil)

	result, err := svc.Reject(context.Background(), 8, "valor divergente do pedido")
	require.NoError(t, err)
	assert.Equal(t, StatusRejeitada, result.Status)
}

func TestRejectRequiresReason(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	_, err := svc.Reject(context.Background(), 8, "")
	var vErr *apierrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestTransitionNotFound(t *testing.T) {
	svc, store := newServiceWithMock(t)

	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(99)).Return(db.NotaFiscal{}, sql.ErrNoRows)

	_, err := svc.Validate(context.Background(), 99)
	var nfErr *apierrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestDeleteProcessedBlocked(t *testing.T) {
	svc, store := newServiceWithMock(t)
	nf := pendingNF(3)
	nf.Status = StatusProcessada

	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(3)).Return(nf, nil)

	err := svc.Delete(context.Background(), 3)
	var vErr *apierrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestDeletePending(t *testing.T) {
	svc, store := newServiceWithMock(t)

	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(3)).Return(pendingNF(3), nil)
	store.EXPECT().DeleteNotaFiscal(gomock.Any(), int64(3)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 3))
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newServiceWithMock(t)
	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		params CreateParams
	}{
		{"missing number", CreateParams{Supplier: "X", Value: 100, IssueDate: issue}},
		{"missing supplier", CreateParams{Number: "1", Value: 100, IssueDate: issue}},
		{"zero value", CreateParams{Number: "1", Supplier: "X", IssueDate: issue}},
		{"zero date", CreateParams{Number: "1", Supplier: "X", Value: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.params)
			var vErr *apierrors.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreateDuplicate(t *testing.T) {
	svc, store := newServiceWithMock(t)

	store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: uniqueViolation})

	_, err := svc.Create(context.Background(), CreateParams{
		Number:    "123",
		Series:    "1",
		Supplier:  "Fornecedor X",
		Value:     1000,
		IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	var vErr *apierrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "já cadastrada")
}

func TestUpdateOnlyPending(t *testing.T) {
	svc, store := newServiceWithMock(t)
	nf := pendingNF(4)
	nf.Status = StatusValidada

	store.EXPECT().GetNotaFiscal(gomock.Any(), int64(4)).Return(nf, nil)

	newValue := 2000.0
	_, err := svc.Update(context.Background(), 4, UpdateParams{Value: &newValue})
	var vErr *apierrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestListDefaultsPagination(t *testing.T) {
	svc, store := newServiceWithMock(t)

	store.EXPECT().ListNotasFiscais(gomock.Any(), db.ListNotasFiscaisParams{
		Limit:  20,
		Offset: 0,
	}).Return([]db.NotaFiscal{pendingNF(1)}, nil)
	store.EXPECT().CountNotasFiscais(gomock.Any(), db.CountNotasFiscaisParams{}).Return(int64(1), nil)
	store.EXPECT().ListNfItemsByNf(gomock.Any(), int64(1)).Return([]db.NfItem{}, nil)

	result, total, err := svc.List(context.Background(), ListFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, result, 1)
	assert.Equal(t, "123", result[0].Number)
}
