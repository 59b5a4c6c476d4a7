package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dalmoeng/custos-go/cmd/internal/config"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

// dummyPasswordHash keeps the login path constant-time when the email is
// unknown: the bcrypt comparison runs either way.
var dummyPasswordHash []byte

func init() {
	var err error
	dummyPasswordHash, err = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing-protection"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to generate dummy hash: %v", err))
	}
}

// validateUserAgent truncates the User-Agent to a storable length.
func validateUserAgent(ua string) string {
	const maxUserAgentLen = 255
	if len(ua) > maxUserAgentLen {
		return ua[:maxUserAgentLen]
	}
	return ua
}

// JWTClaims is the access token payload.
type JWTClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service handles authentication: login, token refresh and validation.
type Service struct {
	store  db.Store
	config *config.Config
}

func NewService(store db.Store, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
	}
}

// LoginResult carries the tokens of a successful authentication.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         db.User
}

// Login authenticates a user by email and password and opens a refresh
// session. Unknown email, wrong password and inactive account all return
// the same error so accounts cannot be enumerated.
func (s *Service) Login(ctx context.Context, email, password, ipAddress, userAgent string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Dummy comparison so the timing matches the found-user path.
			bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	refreshToken, refreshHash, err := generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	userAgent = validateUserAgent(userAgent)

	_, err = s.store.CreateUserSession(ctx, db.CreateUserSessionParams{
		UserID:           user.ID,
		RefreshTokenHash: refreshHash,
		UserAgent:        sql.NullString{String: userAgent, Valid: userAgent != ""},
		IpAddress:        sql.NullString{String: ipAddress, Valid: ipAddress != ""},
		ExpiresAt:        time.Now().Add(s.config.Auth.RefreshTokenTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.generateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	user.PasswordHash = ""
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshResult carries the rotated tokens.
type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	UserID       int64
	Role         string
}

// Refresh rotates a refresh token: the old session is revoked and a new one
// created in the same transaction, so a token can be used exactly once.
func (s *Service) Refresh(ctx context.Context, refreshToken, ipAddress, userAgent string) (*RefreshResult, error) {
	refreshHash := hashRefreshToken(refreshToken)

	var result RefreshResult

	err := s.store.ExecTx(ctx, func(q *db.Queries) error {
		session, err := q.GetActiveSessionByRefreshHashForUpdate(ctx, refreshHash)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to get session: %w", err)
		}

		if time.Now().After(session.ExpiresAt) {
			return ErrSessionNotFound
		}

		if err := q.RevokeUserSession(ctx, session.ID); err != nil {
			return fmt.Errorf("failed to revoke old session: %w", err)
		}

		newRefreshToken, newRefreshHash, err := generateRefreshToken()
		if err != nil {
			return fmt.Errorf("failed to generate refresh token: %w", err)
		}

		userAgent = validateUserAgent(userAgent)

		_, err = q.CreateUserSession(ctx, db.CreateUserSessionParams{
			UserID:           session.UserID,
			RefreshTokenHash: newRefreshHash,
			UserAgent:        sql.NullString{String: userAgent, Valid: userAgent != ""},
			IpAddress:        sql.NullString{String: ipAddress, Valid: ipAddress != ""},
			ExpiresAt:        time.Now().Add(s.config.Auth.RefreshTokenTTL),
		})
		if err != nil {
			return fmt.Errorf("failed to create new session: %w", err)
		}

		user, err := q.GetUserByID(ctx, session.UserID)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		accessToken, err := s.generateAccessToken(user.ID, user.Role)
		if err != nil {
			return fmt.Errorf("failed to generate access token: %w", err)
		}

		result = RefreshResult{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			UserID:       user.ID,
			Role:         user.Role,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Logout revokes the session behind a refresh token. An unknown token is
// not an error: the session is gone either way.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	refreshHash := hashRefreshToken(refreshToken)

	return s.store.ExecTx(ctx, func(q *db.Queries) error {
		session, err := q.GetActiveSessionByRefreshHashForUpdate(ctx, refreshHash)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to get session: %w", err)
		}
		if err := q.RevokeUserSession(ctx, session.ID); err != nil {
			return fmt.Errorf("failed to revoke session: %w", err)
		}
		return nil
	})
}

// ValidateAccessToken parses and verifies a JWT access token.
func (s *Service) ValidateAccessToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) generateAccessToken(userID int64, role string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "custos-go",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}

// generateRefreshToken returns a random token and its SHA-256 hex hash. The
// hash is what gets persisted.
func generateRefreshToken() (token string, hash string, err error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", "", err
	}

	token = hex.EncodeToString(bytes)
	hash = hashRefreshToken(token)

	return token, hash, nil
}

func hashRefreshToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
