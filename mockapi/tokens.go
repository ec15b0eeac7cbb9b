package mockapi

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/portfolio-sync/errs"
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// tokenIssuer signs and validates HS256 session tokens.
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func newTokenIssuer(secret string, ttl time.Duration) tokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return tokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t tokenIssuer) Issue(acc account) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: acc.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "portfolio-mock-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate maps parse failures onto the errs token taxonomy.
func (t tokenIssuer) Validate(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return t.secret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, errs.NewExpiredTokenError()
	}
	if err != nil {
		return nil, errs.NewInvalidTokenError()
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Subject != "" {
		return claims, nil
	}
	return nil, errs.NewInvalidTokenError()
}
