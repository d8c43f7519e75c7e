package services

import (
	"time"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenDuration is how long an issued bearer token stays valid.
const TokenDuration = 24 * time.Hour

// Identity is the user payload embedded in every token. It is the sole
// source of identity for authorization checks; only the /auth/me endpoint
// re-verifies against the store.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Claims is the full JWT claim set. The user payload lives under the "user"
// key so existing frontend token handling keeps working.
type Claims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

// GenerateToken signs a bearer token for the given user.
func GenerateToken(u *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		User: Identity{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   u.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.C.JWTSecret))
}

// ParseToken verifies signature and expiry and returns the embedded claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.C.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
