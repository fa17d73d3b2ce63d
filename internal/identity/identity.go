// Package identity resolves the acting user from bearer tokens issued by the
// external identity provider. Users are never stored here; the token subject
// is the only thing this service knows about a user.
package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthenticated = errors.New("missing or invalid credentials")

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// UserFromHeader parses an "Authorization: Bearer <jwt>" header and returns
// the token subject. Any parse, signature, or expiry failure collapses to
// ErrUnauthenticated.
func (v *Verifier) UserFromHeader(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrUnauthenticated
	}
	return v.UserFromToken(strings.TrimSpace(parts[1]))
}

func (v *Verifier) UserFromToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthenticated
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrUnauthenticated
	}
	sub, _ := claims.GetSubject()
	if sub == "" {
		// some providers put the id in a user_id claim instead of sub
		sub, _ = claims["user_id"].(string)
	}
	if sub == "" {
		return "", ErrUnauthenticated
	}
	return sub, nil
}

// Sign mints a short-lived token for the given user. Used by local tooling
// and tests; production tokens come from the identity provider.
func (v *Verifier) Sign(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
