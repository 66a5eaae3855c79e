package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of every issued token.
const TokenTTL = time.Hour

// Claims is the claim set carried by issued tokens. Subject holds the username.
type Claims struct {
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
	jwt.RegisteredClaims
}

// Username returns the subject claim.
func (c *Claims) Username() string {
	return c.Subject
}

// TokenManager issues and verifies signed JWTs for authenticated users.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenManager creates a manager with the provided secret, issuer, and audience.
func NewTokenManager(secret, issuer, audience string) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      TokenTTL,
		now:      time.Now,
	}
}

// Generate issues a signed JWT for the given identity and role name.
func (t *TokenManager) Generate(userID int64, username, role string) (string, error) {
	now := t.now()
	claims := Claims{
		Role:   role,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   username,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies signature, issuer, audience and lifetime and returns the claims.
func (t *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (any, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", tok.Method.Alg())
		}
		return t.secret, nil
	},
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, err
	}
	if !tok.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
