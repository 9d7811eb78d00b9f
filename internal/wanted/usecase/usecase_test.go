package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/wanted"
	"rental-marketplace/internal/wanted/usecase"
	"rental-marketplace/pkg/log"
)

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	sc := model.Scope{UserID: "u-1"}
	march1 := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	feb1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   wanted.CreateInput
		wantErr error
	}{
		{"ok minimal", wanted.CreateInput{Category: "Saree"}, nil},
		{"ok full", wanted.CreateInput{Category: "Saree", BudgetMin: ptr(10.0), BudgetMax: ptr(100.0), NeededFrom: &feb1, NeededUntil: &march1}, nil},
		{"ok equal window", wanted.CreateInput{Category: "Saree", NeededFrom: &feb1, NeededUntil: &feb1}, nil},
		{"missing category", wanted.CreateInput{Category: "   "}, wanted.ErrCategoryRequired},
		{"min above max", wanted.CreateInput{Category: "Saree", BudgetMin: ptr(200.0), BudgetMax: ptr(100.0)}, wanted.ErrInvalidBudget},
		{"negative budget", wanted.CreateInput{Category: "Saree", BudgetMax: ptr(-1.0)}, wanted.ErrNegativeBudget},
		{"window reversed", wanted.CreateInput{Category: "Saree", NeededFrom: &march1, NeededUntil: &feb1}, wanted.ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.New(newMemRepo(), log.NewNop())
			out, err := uc.Create(context.Background(), sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if out.Request.RequesterID != "u-1" || out.Request.Status != model.WantedOpen {
				t.Errorf("unexpected request: %+v", out.Request)
			}
			if out.Request.NeededUntil != nil && out.Request.NeededUntil.Hour() != 0 {
				t.Errorf("window dates must be truncated, got %v", out.Request.NeededUntil)
			}
		})
	}

	t.Run("repository failure", func(t *testing.T) {
		r := newMemRepo()
		r.createErr = errBoom
		uc := usecase.New(r, log.NewNop())
		if _, err := uc.Create(context.Background(), sc, wanted.CreateInput{Category: "Saree"}); !errors.Is(err, errBoom) {
			t.Errorf("expected repository error, got %v", err)
		}
	})
}

func TestListOpenExcludesCaller(t *testing.T) {
	r := newMemRepo()
	uc := usecase.New(r, log.NewNop())
	ctx := context.Background()

	for _, user := range []string{"u-1", "u-2", "u-3"} {
		if _, err := uc.Create(ctx, model.Scope{UserID: user}, wanted.CreateInput{Category: "Gown"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	out, err := uc.ListOpen(ctx, model.Scope{UserID: "u-1"}, wanted.ListOpenInput{})
	if err != nil {
		t.Fatalf("ListOpen: %v", err)
	}
	if len(out.Requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(out.Requests))
	}
	for _, req := range out.Requests {
		if req.RequesterID == "u-1" {
			t.Errorf("caller's own request listed")
		}
	}

	if _, err := uc.ListOpen(ctx, model.Scope{UserID: "u-1"}, wanted.ListOpenInput{Status: "bogus"}); !errors.Is(err, wanted.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}

	mine, err := uc.ListMine(ctx, model.Scope{UserID: "u-2"})
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(mine.Requests) != 1 {
		t.Errorf("expected 1 own request, got %d", len(mine.Requests))
	}
}

func TestUpdateAndCancel(t *testing.T) {
	ctx := context.Background()
	owner := model.Scope{UserID: "u-1"}
	other := model.Scope{UserID: "u-2"}

	setup := func() (*memRepo, wanted.UseCase, string) {
		r := newMemRepo()
		uc := usecase.New(r, log.NewNop())
		out, err := uc.Create(ctx, owner, wanted.CreateInput{Category: "Saree", BudgetMin: ptr(50.0)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return r, uc, out.Request.ID
	}

	t.Run("update keeps unspecified fields", func(t *testing.T) {
		_, uc, id := setup()
		out, err := uc.Update(ctx, owner, wanted.UpdateInput{ID: id, Color: "red"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if out.Request.Category != "Saree" || out.Request.Color != "red" {
			t.Errorf("unexpected request: %+v", out.Request)
		}
	})

	t.Run("update revalidates budget", func(t *testing.T) {
		_, uc, id := setup()
		_, err := uc.Update(ctx, owner, wanted.UpdateInput{ID: id, BudgetMax: ptr(10.0)})
		if !errors.Is(err, wanted.ErrInvalidBudget) {
			t.Errorf("expected ErrInvalidBudget, got %v", err)
		}
	})

	t.Run("update by other user", func(t *testing.T) {
		_, uc, id := setup()
		if _, err := uc.Update(ctx, other, wanted.UpdateInput{ID: id, Color: "red"}); !errors.Is(err, wanted.ErrNotAuthorized) {
			t.Errorf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("update clears optional fields", func(t *testing.T) {
		_, uc, id := setup()
		if _, err := uc.Update(ctx, owner, wanted.UpdateInput{ID: id, Color: "red"}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		out, err := uc.Update(ctx, owner, wanted.UpdateInput{
			ID:    id,
			Color: "blue",
			Clear: []string{wanted.FieldColor, wanted.FieldBudgetMin},
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if out.Request.Color != "" || out.Request.BudgetMin != nil {
			t.Errorf("expected cleared color and budget_min, got %+v", out.Request)
		}
		if out.Request.Category != "Saree" {
			t.Errorf("category = %q", out.Request.Category)
		}
	})

	t.Run("update rejects unknown clear field", func(t *testing.T) {
		_, uc, id := setup()
		_, err := uc.Update(ctx, owner, wanted.UpdateInput{ID: id, Clear: []string{"category"}})
		if !errors.Is(err, wanted.ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("anonymous scope cannot update or cancel", func(t *testing.T) {
		_, uc, id := setup()
		if _, err := uc.Update(ctx, model.Scope{}, wanted.UpdateInput{ID: id, Color: "red"}); !errors.Is(err, wanted.ErrNotAuthorized) {
			t.Errorf("update: expected ErrNotAuthorized, got %v", err)
		}
		if _, err := uc.Cancel(ctx, model.Scope{}, id); !errors.Is(err, wanted.ErrNotAuthorized) {
			t.Errorf("cancel: expected ErrNotAuthorized, got %v", err)
		}
		out, err := uc.Detail(ctx, id)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if out.Request.Status != model.WantedOpen || out.Request.Color != "" {
			t.Errorf("request changed: %+v", out.Request)
		}
	})

	t.Run("cancel then update", func(t *testing.T) {
		_, uc, id := setup()
		out, err := uc.Cancel(ctx, owner, id)
		if err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if out.Request.Status != model.WantedCancelled {
			t.Errorf("status = %q", out.Request.Status)
		}
		if _, err := uc.Cancel(ctx, owner, id); !errors.Is(err, wanted.ErrRequestClosed) {
			t.Errorf("second cancel: expected ErrRequestClosed, got %v", err)
		}
		if _, err := uc.Update(ctx, owner, wanted.UpdateInput{ID: id, Color: "red"}); !errors.Is(err, wanted.ErrRequestClosed) {
			t.Errorf("update after cancel: expected ErrRequestClosed, got %v", err)
		}
	})

	t.Run("detail not found", func(t *testing.T) {
		_, uc, _ := setup()
		if _, err := uc.Detail(ctx, "missing"); !errors.Is(err, wanted.ErrRequestNotFound) {
			t.Errorf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		r, uc, id := setup()
		r.getErr = errBoom
		if _, err := uc.Detail(ctx, id); !errors.Is(err, errBoom) {
			t.Errorf("expected repository error, got %v", err)
		}
	})
}
