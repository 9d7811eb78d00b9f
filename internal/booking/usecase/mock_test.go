package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	repo "rental-marketplace/internal/booking/repository"
	"rental-marketplace/internal/catalog"
	"rental-marketplace/internal/matcher"
	"rental-marketplace/internal/model"
)

var errBoom = errors.New("boom")

// memRepo is an in-memory booking repository. InListingTx holds a mutex, so
// it serialises like the real stores.
type memRepo struct {
	mu           sync.Mutex
	reservations map[string]model.Reservation
	owners       map[string]string // listing id -> owner id
	seq          int
	listErr      error
}

func newMemRepo() *memRepo {
	return &memRepo{reservations: map[string]model.Reservation{}, owners: map[string]string{}}
}

func (m *memRepo) InListingTx(ctx context.Context, listingID string, fn func(tx repo.ReservationRepository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owners[listingID]; !ok {
		return repo.ErrListingNotFound
	}
	return fn(m)
}

func (m *memRepo) CreateReservation(ctx context.Context, opt repo.CreateReservationOptions) (model.Reservation, error) {
	m.seq++
	r := model.Reservation{
		ID:              fmt.Sprintf("res-%d", m.seq),
		ListingID:       opt.ListingID,
		RenterID:        opt.RenterID,
		StartDate:       opt.StartDate,
		EndDate:         opt.EndDate,
		TotalDays:       opt.TotalDays,
		TotalPrice:      opt.TotalPrice,
		SecurityDeposit: opt.SecurityDeposit,
		Status:          opt.Status,
	}
	m.reservations[r.ID] = r
	return r, nil
}

func (m *memRepo) GetOneReservation(ctx context.Context, opt repo.GetOneReservationOptions) (model.Reservation, error) {
	return m.reservations[opt.ID], nil
}

func (m *memRepo) ListReservations(ctx context.Context, opt repo.ListReservationsOptions) ([]model.Reservation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Reservation
	for _, r := range m.reservations {
		if opt.ListingID != "" && r.ListingID != opt.ListingID {
			continue
		}
		if opt.RenterID != "" && r.RenterID != opt.RenterID {
			continue
		}
		if opt.OwnerID != "" && m.owners[r.ListingID] != opt.OwnerID {
			continue
		}
		if len(opt.Statuses) > 0 && !r.Status.IsLive() {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if opt.NewestFirst {
			return out[i].ID > out[j].ID
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

func (m *memRepo) UpdateReservationStatus(ctx context.Context, opt repo.UpdateReservationStatusOptions) (model.Reservation, error) {
	r, ok := m.reservations[opt.ID]
	if !ok || r.Status != opt.From {
		return model.Reservation{}, nil
	}
	r.Status = opt.To
	m.reservations[r.ID] = r
	return r, nil
}

type mockLookup struct {
	listings map[string]model.Listing
}

func (m *mockLookup) GetListing(ctx context.Context, id string) (model.Listing, error) {
	l, ok := m.listings[id]
	if !ok {
		return model.Listing{}, catalog.ErrListingNotFound
	}
	return l, nil
}

type mockMatcher struct {
	matcher.UseCase
	mu      sync.Mutex
	retired []string
	err     error
}

func (m *mockMatcher) OnReservationCreated(ctx context.Context, reservation model.Reservation, listing model.Listing) (matcher.RetireOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return matcher.RetireOutput{}, m.err
	}
	m.retired = append(m.retired, reservation.ID)
	return matcher.RetireOutput{Fulfilled: []string{"req-for-" + reservation.RenterID}}, nil
}
