// Package auth issues and verifies the signed session tokens returned
// by signup and login. Tokens are HS256 JWTs carrying the user's ID and
// role, valid for a fixed window from issuance. There is no refresh or
// revocation mechanism.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = time.Hour

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token invalid")

// Claims is the identity a verified token asserts.
type Claims struct {
	UserID string
	Role   string
}

// TokenManager signs and verifies session tokens with a server-held
// secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager returns a manager signing with secret. Non-positive
// ttl falls back to DefaultTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding userID and role, expiring ttl from now.
func (m *TokenManager) Issue(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"exp":    time.Now().Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks the signature and expiry of a token and returns the
// claims it asserts. The signing algorithm is pinned to HS256 so a
// token cannot downgrade its own verification.
func (m *TokenManager) Verify(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !tkn.Valid {
		return Claims{}, ErrTokenInvalid
	}

	userID, _ := claims["userId"].(string)
	role, _ := claims["role"].(string)
	return Claims{UserID: userID, Role: role}, nil
}
