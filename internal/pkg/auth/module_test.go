package auth

import (
	"testing"

	"github.com/quickbite/quickbite/internal/config"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher()
	if _, ok := hasher.(*BcryptHasher); !ok {
		t.Fatalf("unexpected hasher type %T", hasher)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{AuthTokenSecret: "secret"}})
	if _, ok := strategy.(*HMACStrategy); !ok {
		t.Fatalf("unexpected strategy type %T", strategy)
	}

	token, err := strategy.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	userID, err := strategy.ParseToken(token)
	if err != nil || userID != "user-1" {
		t.Fatalf("unexpected parse result %q err=%v", userID, err)
	}
}
