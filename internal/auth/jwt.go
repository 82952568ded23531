package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTAuthenticator struct {
	secret string
	aud    string
	iss    string
}

func NewJWTAuthenticator(secret, aud, iss string) *JWTAuthenticator {
	return &JWTAuthenticator{secret, aud, iss}
}

// GenerateToken mints an HS256 token. The claims carry identity for clients
// to inspect; the server never re-verifies them. There is no exp claim: a
// session lives until its marker is deleted on logout.
func (a *JWTAuthenticator) GenerateToken(userID int64, roles []string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"roles": roles,
		"iat":   time.Now().Unix(),
		"nbf":   time.Now().Unix(),
		"iss":   a.iss,
		"aud":   a.aud,
		"jti":   uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
