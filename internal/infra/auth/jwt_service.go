package auth

import (
	"time"

	"leadhub/config"
	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultAccessTTL = 24 * time.Hour

// accessClaims is the JWT payload carrying the caller context.
type accessClaims struct {
	Role    string   `json:"role"`
	Vendors []string `json:"vendors,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTTL,
	}, nil
}

// IssueAccessToken signs an HS256 token for the caller. Only tests and
// operator tooling mint tokens here.
func (s *jwtService) IssueAccessToken(caller *entity.Caller) (string, error) {
	vendors := make([]string, 0, len(caller.VendorIDs))
	for _, id := range caller.VendorIDs {
		vendors = append(vendors, id.String())
	}

	now := time.Now()
	claims := accessClaims{
		Role:    caller.Role.String(),
		Vendors: vendors,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}

// ParseAccessToken validates signature and expiry and rebuilds the caller.
func (s *jwtService) ParseAccessToken(tokenString string) (*entity.Caller, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in access token")
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, errors.Errorf("unknown role %q in access token", claims.Role)
	}

	vendorIDs := make([]uuid.UUID, 0, len(claims.Vendors))
	for _, raw := range claims.Vendors {
		vendorID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid vendor id in access token")
		}
		vendorIDs = append(vendorIDs, vendorID)
	}

	return &entity.Caller{
		UserID:    userID,
		Role:      role,
		VendorIDs: vendorIDs,
	}, nil
}
