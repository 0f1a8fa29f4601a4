package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity attached to a request; Email doubles as the
// audit actor.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Actor returns the audit attribution string for the claims.
func (c *Claims) Actor() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Name
}

// Service validates and issues HMAC-signed JWTs.
type Service struct {
	secret []byte
	issuer string
}

// NewService creates a new auth service
func NewService(secret, issuer string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &Service{secret: []byte(secret), issuer: issuer}, nil
}

// ValidateJWT parses and validates a token string
func (s *Service) ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// IssueJWT creates a signed token for the given identity, used by the seed
// tooling and tests.
func (s *Service) IssueJWT(email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
