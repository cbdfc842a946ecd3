package auth

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestHMACStrategyRoundTrip(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	token, err := strategy.IssueToken("6b9f0a3e-5a6f-4ed1-9f6e-2a1f0c9d4b11")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if userID != "6b9f0a3e-5a6f-4ed1-9f6e-2a1f0c9d4b11" {
		t.Fatalf("unexpected user id %q", userID)
	}

	if strategy.Name() != "hmac" {
		t.Fatalf("unexpected strategy name %q", strategy.Name())
	}
}

func TestHMACStrategyRejectsBadUserID(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	if _, err := strategy.IssueToken(""); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error for empty id, got %v", err)
	}
	if _, err := strategy.IssueToken("with:colon"); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error for id with separator, got %v", err)
	}
}

func TestHMACStrategyRejectsTamperedTokens(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	token, err := strategy.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%"},
		{"wrong parts", base64.StdEncoding.EncodeToString([]byte("just-one-part"))},
		{"bad signature", tamperSignature(t, token)},
		{"empty user", signedToken(strategy, "", time.Now().Add(time.Hour))},
		{"bad expiry", signedToken(strategy, "user-1:notanumber", time.Time{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := strategy.ParseToken(tc.token); err != ErrInvalidToken {
				t.Fatalf("expected invalid token error, got %v", err)
			}
		})
	}
}

func TestHMACStrategyRejectsExpiredToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Nanosecond})
	token, err := strategy.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestHMACStrategyRejectsForeignSecret(t *testing.T) {
	issuer := NewHMACStrategy("secret-a", Options{})
	verifier := NewHMACStrategy("secret-b", Options{})

	token, err := issuer.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected cross-secret token rejection, got %v", err)
	}
}

func tamperSignature(t *testing.T, token string) string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	parts := strings.Split(string(raw), ":")
	parts[2] = "forged"
	return base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, ":")))
}

// signedToken builds a token with a valid signature over an arbitrary payload.
func signedToken(s *HMACStrategy, payload string, expires time.Time) string {
	if !expires.IsZero() {
		payload = fmt.Sprintf("%s:%d", payload, expires.Unix())
	}
	sig := s.sign(payload)
	return base64.StdEncoding.EncodeToString([]byte(payload + ":" + sig))
}
