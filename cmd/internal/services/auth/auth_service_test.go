package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dalmoeng/custos-go/cmd/internal/config"
	mockdb "github.com/dalmoeng/custos-go/cmd/internal/db/mock"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
		},
	}
}

func activeUser(t *testing.T, password string) db.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return db.User{
		ID:           1,
		Email:        "engenheiro@dalmo.eng.br",
		PasswordHash: string(hash),
		Role:         "user",
		IsActive:     true,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewService(nil, testConfig())

	token, err := svc.generateAccessToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "custos-go", claims.Issuer)
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	svc := NewService(nil, testConfig())
	token, err := svc.generateAccessToken(1, "user")
	require.NoError(t, err)

	other := testConfig()
	other.Auth.JWTSecret = "another-secret"
	_, err = NewService(nil, other).ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc := NewService(nil, testConfig())

	_, err := svc.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateRefreshToken(t *testing.T) {
	token, hash, err := generateRefreshToken()
	require.NoError(t, err)

	assert.Len(t, token, 64)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, token, hash)
	assert.Equal(t, hash, hashRefreshToken(token))

	token2, _, err := generateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	svc := NewService(store, testConfig())
	user := activeUser(t, "senha-forte")

	store.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	store.EXPECT().CreateUserSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateUserSessionParams) (db.UserSession, error) {
			assert.Equal(t, user.ID, arg.UserID)
			assert.Len(t, arg.RefreshTokenHash, 64)
			assert.True(t, arg.ExpiresAt.After(time.Now()))
			return db.UserSession{ID: 1, UserID: arg.UserID}, nil
		})

	result, err := svc.Login(context.Background(), "  Engenheiro@dalmo.eng.br ", "senha-forte", "10.0.0.5", "go-test")
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.Len(t, result.RefreshToken, 64)
	assert.Empty(t, result.User.PasswordHash)

	claims, err := svc.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	svc := NewService(store, testConfig())

	store.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(db.User{}, sql.ErrNoRows)

	_, err := svc.Login(context.Background(), "ninguem@dalmo.eng.br", "qualquer", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	svc := NewService(store, testConfig())
	user := activeUser(t, "senha-correta")

	store.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), user.Email, "senha-errada", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	svc := NewService(store, testConfig())
	user := activeUser(t, "senha-forte")
	user.IsActive = false

	store.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), user.Email, "senha-forte", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshUnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	svc := NewService(store, testConfig())

	store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Return(ErrSessionNotFound)

	_, err := svc.Refresh(context.Background(), "deadbeef", "", "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestValidateUserAgentTruncates(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}

	assert.Len(t, validateUserAgent(string(long)), 255)
	assert.Equal(t, "curl/8.0", validateUserAgent("curl/8.0"))
}
