package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims describes the authenticated caller as carried in a bearer token.
// Identity storage lives outside this service; the token is the source of
// truth for who is calling and whether they hold staff privileges.
type Claims struct {
	UserID  int64  `json:"uid"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken mints a signed bearer token for the given user.
func IssueToken(secret []byte, userID int64, email string, isStaff bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		Email:   email,
		IsStaff: isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates the signature and expiry of a bearer token and
// returns the caller claims.
func ParseToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
