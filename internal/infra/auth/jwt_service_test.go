package auth

import (
	"testing"
	"time"

	"leadhub/config"
	"leadhub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := newTestJWTService(t)

	caller := &entity.Caller{
		UserID:    uuid.New(),
		Role:      entity.RoleVendor,
		VendorIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}

	token, err := svc.IssueAccessToken(caller)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, caller, parsed)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	sign := func(claims accessClaims, secret []byte) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		require.NoError(t, err)

		return token
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{
			name: "wrong secret",
			token: sign(accessClaims{
				Role:             entity.RoleUser.String(),
				RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
			}, []byte("another-secret")),
		},
		{
			name: "expired",
			token: sign(accessClaims{
				Role: entity.RoleUser.String(),
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   userID.String(),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				},
			}, svc.accessSecret),
		},
		{
			name: "unknown role",
			token: sign(accessClaims{
				Role:             "root",
				RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
			}, svc.accessSecret),
		},
		{
			name: "subject is not a uuid",
			token: sign(accessClaims{
				Role:             entity.RoleUser.String(),
				RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
			}, svc.accessSecret),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller, err := svc.ParseAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, caller)
		})
	}
}
