package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/portfolio-sync/errs"
	"golang.org/x/oauth2"
)

// sessionTokenSource turns the persisted raw token into an oauth2 token
// on every call, so a login or logout is visible to the next request.
type sessionTokenSource struct {
	reader TokenReader
}

func (s sessionTokenSource) Token() (*oauth2.Token, error) {
	if s.reader == nil {
		return nil, errs.NewMissingTokenError()
	}

	raw, err := s.reader.Token()
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, errs.NewMissingTokenError()
	}

	return &oauth2.Token{
		AccessToken: raw,
		TokenType:   "Bearer",
		Expiry:      TokenExpiry(raw),
	}, nil
}

// TokenExpiry reads the exp claim of a JWT without verifying it. The zero
// time means "no known expiry", including for tokens that are not JWTs.
func TokenExpiry(raw string) time.Time {
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
