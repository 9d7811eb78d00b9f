package scope_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/log"
	"rental-marketplace/pkg/scope"
)

func TestIssueAndVerify(t *testing.T) {
	m := scope.New("secret", "rental-marketplace")

	token, err := m.Issue(model.Scope{UserID: "u-1", Username: "aishu"}, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	sc, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sc.UserID != "u-1" || sc.Username != "aishu" {
		t.Errorf("unexpected scope: %+v", sc)
	}
}

func TestVerifyRejects(t *testing.T) {
	m := scope.New("secret", "rental-marketplace")

	t.Run("wrong secret", func(t *testing.T) {
		other := scope.New("other", "rental-marketplace")
		token, _ := other.Issue(model.Scope{UserID: "u-1"}, time.Hour)
		if _, err := m.Verify(token); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := scope.New("secret", "someone-else")
		token, _ := other.Issue(model.Scope{UserID: "u-1"}, time.Hour)
		if _, err := m.Verify(token); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		token, _ := m.Issue(model.Scope{UserID: "u-1"}, -time.Minute)
		if _, err := m.Verify(token); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		token, _ := m.Issue(model.Scope{}, time.Hour)
		if _, err := m.Verify(token); !errors.Is(err, scope.ErrMissingSub) {
			t.Errorf("expected ErrMissingSub, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Verify("not-a-token"); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestScopeContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := scope.GetScopeFromContext(ctx); ok {
		t.Fatal("empty context must not carry a scope")
	}

	ctx = scope.SetScopeToContext(ctx, model.Scope{UserID: "u-9"})
	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok || sc.UserID != "u-9" {
		t.Fatalf("scope not round-tripped: %+v %v", sc, ok)
	}
	if v, _ := ctx.Value(log.UserIDKey).(string); v != "u-9" {
		t.Errorf("logger user id = %q", v)
	}
}
