package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	sqliteConn "rental-marketplace/config/sqlite"
	"rental-marketplace/internal/booking"
	repo "rental-marketplace/internal/booking/repository"
	bookingSQLite "rental-marketplace/internal/booking/repository/sqlite"
	"rental-marketplace/internal/booking/usecase"
	"rental-marketplace/internal/model"
	"rental-marketplace/migrations"
	"rental-marketplace/pkg/log"
)

func newSQLiteRepo(t *testing.T) repo.Repository {
	t.Helper()
	ctx := context.Background()
	db, err := sqliteConn.Connect(ctx, filepath.Join(t.TempDir(), "booking.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.ApplySQLite(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	now := time.Now().UnixMilli()
	if _, err := db.Exec(`INSERT INTO listings (id, owner_id, name, price_per_day, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		saree.ID, saree.OwnerID, saree.Name, saree.PricePerDay, now, now); err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	return bookingSQLite.New(db, log.NewNop())
}

func TestConcurrentOverlappingBookings(t *testing.T) {
	r := newSQLiteRepo(t)
	uc := usecase.New(r, lookup, &mockMatcher{}, log.NewNop())

	const renters = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
		other     []error
	)
	start := make(chan struct{})
	for i := 0; i < renters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			sc := model.Scope{UserID: "renter-" + string(rune('a'+i))}
			// every window contains 03-05
			_, err := uc.Create(context.Background(), sc, booking.CreateInput{ListingID: saree.ID, StartDate: day(1 + i%4), EndDate: day(6 + i%3)})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, booking.ErrDateConflict):
				conflicts++
			default:
				other = append(other, err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	if len(other) > 0 {
		t.Fatalf("unexpected errors: %v", other)
	}
	if succeeded != 1 || conflicts != renters-1 {
		t.Fatalf("succeeded=%d conflicts=%d, want 1/%d", succeeded, conflicts, renters-1)
	}

	live, err := r.ListReservations(context.Background(), repo.ListReservationsOptions{ListingID: saree.ID, Statuses: model.LiveReservationStatuses})
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if len(live) != 1 {
		t.Fatalf("live reservations = %d, want 1", len(live))
	}
}

// staleLedger hides existing reservations from the in-transaction check, so
// only the storage guard stands between the engine and a double booking.
type staleLedger struct {
	repo.Repository
}

func (s staleLedger) InListingTx(ctx context.Context, listingID string, fn func(tx repo.ReservationRepository) error) error {
	return s.Repository.InListingTx(ctx, listingID, func(tx repo.ReservationRepository) error {
		return fn(staleTx{tx})
	})
}

type staleTx struct {
	repo.ReservationRepository
}

func (staleTx) ListReservations(ctx context.Context, opt repo.ListReservationsOptions) ([]model.Reservation, error) {
	return nil, nil
}

func TestStorageGuardBecomesDateConflict(t *testing.T) {
	r := newSQLiteRepo(t)
	uc := usecase.New(staleLedger{r}, lookup, &mockMatcher{}, log.NewNop())
	ctx := context.Background()

	first, err := uc.Create(ctx, alice, booking.CreateInput{ListingID: saree.ID, StartDate: day(1), EndDate: day(5)})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err = uc.Create(ctx, bob, booking.CreateInput{ListingID: saree.ID, StartDate: day(4), EndDate: day(8)})
	var conflict *booking.ConflictError
	if !errors.As(err, &conflict) || !errors.Is(err, booking.ErrDateConflict) {
		t.Fatalf("error = %v, want ConflictError", err)
	}
	if conflict.ReservationID != first.Reservation.ID || !conflict.Start.Equal(day(1)) {
		t.Errorf("conflict details = %+v", conflict)
	}

	if _, err := uc.Create(ctx, bob, booking.CreateInput{ListingID: saree.ID, StartDate: day(5), EndDate: day(8)}); err != nil {
		t.Fatalf("adjacent booking rejected by the guard: %v", err)
	}
}
