package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	sqliteConn "rental-marketplace/config/sqlite"
	"rental-marketplace/internal/model"
	repo "rental-marketplace/internal/wanted/repository"
	"rental-marketplace/migrations"
	"rental-marketplace/pkg/log"
)

func newTestRepo(t *testing.T) (*implRepository, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := sqliteConn.Connect(ctx, filepath.Join(t.TempDir(), "wanted.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.ApplySQLite(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, log.NewNop()).(*implRepository), db
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateAndGetRequest(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	created, err := r.CreateRequest(ctx, repo.CreateRequestOptions{
		RequesterID: "u-1",
		Category:    "Saree",
		Color:       "red",
		BudgetMax:   floatPtr(100),
		NeededFrom:  &from,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Status != model.WantedOpen {
		t.Fatalf("unexpected created request: %+v", created)
	}

	got, err := r.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: created.ID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Category != "Saree" || got.Color != "red" {
		t.Errorf("unexpected attributes: %+v", got)
	}
	if got.BudgetMax == nil || *got.BudgetMax != 100 {
		t.Errorf("budget max not stored: %v", got.BudgetMax)
	}
	if got.BudgetMin != nil {
		t.Errorf("budget min should be unset, got %v", *got.BudgetMin)
	}
	if got.NeededFrom == nil || !got.NeededFrom.Equal(from) {
		t.Errorf("needed from not stored: %v", got.NeededFrom)
	}
	if got.NeededUntil != nil {
		t.Errorf("needed until should be unset")
	}

	missing, err := r.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: "nope"})
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing.ID != "" {
		t.Errorf("expected zero value for missing request")
	}
}

func TestListRequestsFilters(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	for _, requester := range []string{"u-1", "u-2", "u-2"} {
		if _, err := r.CreateRequest(ctx, repo.CreateRequestOptions{RequesterID: requester, Category: "Lehenga"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	tests := []struct {
		name string
		opt  repo.ListRequestsOptions
		want int
	}{
		{"all", repo.ListRequestsOptions{}, 3},
		{"by requester", repo.ListRequestsOptions{RequesterID: "u-2"}, 2},
		{"excluding requester", repo.ListRequestsOptions{ExcludeRequesterID: "u-2", Status: model.WantedOpen}, 1},
		{"fulfilled only", repo.ListRequestsOptions{Status: model.WantedFulfilled}, 0},
		{"limited", repo.ListRequestsOptions{Limit: 2}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ListRequests(ctx, tt.opt)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d requests, want %d", len(got), tt.want)
			}
		})
	}
}

func TestUpdateRequestStatusIsCompareAndSet(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateRequest(ctx, repo.CreateRequestOptions{RequesterID: "u-1", Category: "Gown"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fulfilled, err := r.UpdateRequestStatus(ctx, repo.UpdateRequestStatusOptions{
		ID: created.ID, From: model.WantedOpen, To: model.WantedFulfilled, FulfilledByListing: "l-1",
	})
	if err != nil {
		t.Fatalf("fulfil: %v", err)
	}
	if fulfilled.Status != model.WantedFulfilled || fulfilled.FulfilledByListing != "l-1" {
		t.Fatalf("unexpected request after fulfil: %+v", fulfilled)
	}

	again, err := r.UpdateRequestStatus(ctx, repo.UpdateRequestStatusOptions{
		ID: created.ID, From: model.WantedOpen, To: model.WantedCancelled,
	})
	if err != nil {
		t.Fatalf("second transition: %v", err)
	}
	if again.ID != "" {
		t.Errorf("expected no-op on a request that is no longer open, got %+v", again)
	}

	updated, err := r.UpdateRequest(ctx, repo.UpdateRequestOptions{ID: created.ID, Category: "Saree"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != "" {
		t.Errorf("closed requests must not be updated")
	}
}
