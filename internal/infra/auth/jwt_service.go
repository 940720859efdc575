package auth

import (
	"time"

	"suq/config"
	"suq/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	defaultAccessTokenTTL = 24 * time.Hour
	// Admin sessions are deliberately short-lived.
	defaultAdminTokenTTL = 2 * time.Hour
)

// jwtService signs and validates the bearer tokens carrying session state.
// Customer and admin tokens use separate secrets so neither can stand in
// for the other.
type jwtService struct {
	accessSecret []byte
	adminSecret  []byte
	accessTTL    time.Duration
	adminTTL     time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) service.TokenService {
	accessTTL := defaultAccessTokenTTL
	adminTTL := defaultAdminTokenTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.AdminTokenTTL > 0 {
			adminTTL = cfg.Auth.AdminTokenTTL
		}
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		adminSecret:  []byte(cfg.SecretKey.Admin),
		accessTTL:    accessTTL,
		adminTTL:     adminTTL,
	}
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *jwtService) GenerateCustomerToken(userID string) (string, error) {
	return s.sign(userID, service.RoleCustomer, s.accessSecret, s.accessTTL)
}

func (s *jwtService) GenerateAdminToken(subject string) (string, error) {
	return s.sign(subject, service.RoleAdmin, s.adminSecret, s.adminTTL)
}

func (s *jwtService) ValidateCustomerToken(token string) (*service.TokenClaims, error) {
	return s.validate(token, service.RoleCustomer, s.accessSecret)
}

func (s *jwtService) ValidateAdminToken(token string) (*service.TokenClaims, error) {
	return s.validate(token, service.RoleAdmin, s.adminSecret)
}

func (s *jwtService) sign(subject, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (s *jwtService) validate(tokenString, wantRole string, secret []byte) (*service.TokenClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Role != wantRole {
		return nil, errors.Errorf("unexpected token role %q", claims.Role)
	}

	return &service.TokenClaims{Subject: claims.Subject, Role: claims.Role}, nil
}
