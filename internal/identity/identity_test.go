package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	v := NewVerifier("secret")
	tok, err := v.Sign("u-42")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	got, err := v.UserFromToken(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != "u-42" {
		t.Fatalf("subject: want u-42, got %q", got)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tok, err := NewVerifier("secret-a").Sign("u-42")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewVerifier("secret-b").UserFromToken(tok); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	v := NewVerifier("secret")
	claims := jwt.MapClaims{
		"sub": "u-42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.UserFromToken(tok); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
}

func TestUserIDClaimFallback(t *testing.T) {
	v := NewVerifier("secret")
	claims := jwt.MapClaims{
		"user_id": "u-legacy",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := v.UserFromToken(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != "u-legacy" {
		t.Fatalf("want u-legacy, got %q", got)
	}
}

func TestHeaderParsing(t *testing.T) {
	v := NewVerifier("secret")
	tok, err := v.Sign("u-42")
	if err != nil {
		t.Fatal(err)
	}

	if got, err := v.UserFromHeader("Bearer " + tok); err != nil || got != "u-42" {
		t.Fatalf("well-formed header: got %q, %v", got, err)
	}
	// scheme is case-insensitive
	if got, err := v.UserFromHeader("bearer " + tok); err != nil || got != "u-42" {
		t.Fatalf("lowercase scheme: got %q, %v", got, err)
	}

	for _, h := range []string{"", tok, "Basic " + tok, "Bearer", "Bearer not-a-jwt"} {
		if _, err := v.UserFromHeader(h); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("header %q: want ErrUnauthenticated, got %v", h, err)
		}
	}
}
