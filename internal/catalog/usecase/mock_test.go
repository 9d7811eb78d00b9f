package usecase_test

import (
	"context"
	"errors"
	"fmt"

	repo "rental-marketplace/internal/catalog/repository"
	"rental-marketplace/internal/matcher"
	"rental-marketplace/internal/model"
	"rental-marketplace/internal/wanted"
)

var errBoom = errors.New("boom")

// memRepo is an in-memory catalog repository.
type memRepo struct {
	listings  map[string]model.Listing
	seq       int
	createErr error
}

func newMemRepo() *memRepo {
	return &memRepo{listings: map[string]model.Listing{}}
}

func (m *memRepo) CreateListing(ctx context.Context, opt repo.CreateListingOptions) (model.Listing, error) {
	if m.createErr != nil {
		return model.Listing{}, m.createErr
	}
	m.seq++
	l := model.Listing{
		ID:              fmt.Sprintf("l-%d", m.seq),
		OwnerID:         opt.OwnerID,
		Name:            opt.Name,
		Description:     opt.Description,
		Category:        opt.Category,
		Size:            opt.Size,
		Color:           opt.Color,
		PricePerDay:     opt.PricePerDay,
		SecurityDeposit: opt.SecurityDeposit,
		IsAvailable:     true,
	}
	m.listings[l.ID] = l
	return l, nil
}

func (m *memRepo) GetOneListing(ctx context.Context, opt repo.GetOneListingOptions) (model.Listing, error) {
	return m.listings[opt.ID], nil
}

func (m *memRepo) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]model.Listing, error) {
	var out []model.Listing
	for i := m.seq; i >= 1; i-- {
		l, ok := m.listings[fmt.Sprintf("l-%d", i)]
		if !ok {
			continue
		}
		if opt.OwnerID != "" && l.OwnerID != opt.OwnerID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *memRepo) UpdateListing(ctx context.Context, opt repo.UpdateListingOptions) (model.Listing, error) {
	l, ok := m.listings[opt.ID]
	if !ok {
		return model.Listing{}, nil
	}
	l.Name, l.Description, l.Category, l.Size, l.Color = opt.Name, opt.Description, opt.Category, opt.Size, opt.Color
	l.PricePerDay, l.SecurityDeposit, l.IsAvailable = opt.PricePerDay, opt.SecurityDeposit, opt.IsAvailable
	m.listings[l.ID] = l
	return l, nil
}

type mockRequests struct {
	wanted.UseCase
	detailFunc func(id string) (wanted.DetailOutput, error)
}

func (m *mockRequests) Detail(ctx context.Context, id string) (wanted.DetailOutput, error) {
	return m.detailFunc(id)
}

type mockMatcher struct {
	matcher.UseCase
	publishFunc func(listing model.Listing, skip []string) ([]model.MatchNotification, error)
	calls       int
}

func (m *mockMatcher) OnListingPublished(ctx context.Context, listing model.Listing, skipRequestIDs ...string) ([]model.MatchNotification, error) {
	m.calls++
	if m.publishFunc == nil {
		return nil, nil
	}
	return m.publishFunc(listing, skipRequestIDs)
}

type mockSink struct {
	sent []model.MatchNotification
	err  error
}

func (m *mockSink) Enqueue(ctx context.Context, n model.MatchNotification) (model.Notification, error) {
	if m.err != nil {
		return model.Notification{}, m.err
	}
	m.sent = append(m.sent, n)
	return model.Notification{ID: "n", RecipientID: n.RecipientID, Kind: n.Kind}, nil
}
