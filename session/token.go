package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobpulse/gateway/config"
)

// TokenService signs and validates the session cookie tokens.
type TokenService struct {
	secretKey   []byte
	expiryHours int
}

// Claims represents the session token claims.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secretKey:   []byte(cfg.SessionSecret),
		expiryHours: cfg.SessionExpiryHours,
	}
}

// GenerateToken generates a signed token wrapping the session ID.
func (s *TokenService) GenerateToken(sessionID string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(s.expiryHours) * time.Hour)

	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "jobpulse-gateway",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken validates a session token and returns its claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}
