package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bookstore/internal/entity"
)

var (
	// ErrMissingSecret is fatal at startup: no token can ever be
	// issued or validated without a signing secret.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")
	// ErrInvalidToken is returned for any validation failure, callers
	// never see partial claims.
	ErrInvalidToken = errors.New("invalid token")
)

const defaultTokenTTL = 60 * time.Minute

// Config carries the signing parameters. All fields are read-only
// after construction, so a single TokenService is safe for concurrent
// use.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	Duration time.Duration
}

type TokenService struct {
	cfg Config
	now func() time.Time
}

func NewTokenService(cfg Config) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.Duration <= 0 {
		cfg.Duration = defaultTokenTTL
	}
	return &TokenService{cfg: cfg, now: time.Now}, nil
}

// Issue signs a token for a verified identity: subject is the
// username, jti is a fresh uuid, uid carries the identity id, and the
// role and custom claim sets come from the claims builder.
func (s *TokenService) Issue(u entity.User, custom map[string]string) (string, error) {
	roles, merged := buildClaimSet(u, custom)
	now := s.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ID:        uuid.New().String(),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Duration)),
		},
		Email:  u.Email,
		UID:    u.ID,
		Roles:  roles,
		Custom: merged,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature, issuer, audience and expiry with zero
// clock-skew tolerance. Expiry is exclusive: a token expiring at T is
// already invalid at T. Any failure yields ErrInvalidToken and no
// claims.
func (s *TokenService) Validate(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
