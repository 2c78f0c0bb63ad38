package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "tijara-market"

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the session claim-set carried by every authenticated request.
// The token is stateless: the role and active flag reflect the identity at
// issuance time and are not re-read until re-issuance.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"is_active"`
	jwt.RegisteredClaims
}

// Issue signs a session token for the given identity with HS256.
func Issue(userID uint, role, phone string, isActive bool, secret string, expiryMinutes int) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Role:     role,
		Phone:    phone,
		IsActive: isActive,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Resolve verifies signature, signing method and expiry, and returns the
// claims. Any failure yields ErrTokenExpired or ErrTokenInvalid; a token is
// never partially trusted.
func Resolve(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
