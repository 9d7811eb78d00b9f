package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-marketplace/internal/model"
	repo "rental-marketplace/internal/wanted/repository"
)

// memRepo is an in-memory wanted repository. Non-nil *Err fields force failures.
type memRepo struct {
	requests  map[string]model.WantedRequest
	seq       int
	createErr error
	getErr    error
}

func newMemRepo() *memRepo {
	return &memRepo{requests: map[string]model.WantedRequest{}}
}

func (m *memRepo) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.WantedRequest, error) {
	if m.createErr != nil {
		return model.WantedRequest{}, m.createErr
	}
	m.seq++
	req := model.WantedRequest{
		ID:          fmt.Sprintf("req-%d", m.seq),
		RequesterID: opt.RequesterID,
		Category:    opt.Category,
		Size:        opt.Size,
		Color:       opt.Color,
		Occasion:    opt.Occasion,
		Description: opt.Description,
		BudgetMin:   opt.BudgetMin,
		BudgetMax:   opt.BudgetMax,
		NeededFrom:  opt.NeededFrom,
		NeededUntil: opt.NeededUntil,
		Status:      model.WantedOpen,
		CreatedAt:   time.Now(),
	}
	m.requests[req.ID] = req
	return req, nil
}

func (m *memRepo) GetOneRequest(ctx context.Context, opt repo.GetOneRequestOptions) (model.WantedRequest, error) {
	if m.getErr != nil {
		return model.WantedRequest{}, m.getErr
	}
	return m.requests[opt.ID], nil
}

func (m *memRepo) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.WantedRequest, error) {
	var out []model.WantedRequest
	for i := 1; i <= m.seq; i++ {
		req, ok := m.requests[fmt.Sprintf("req-%d", i)]
		if !ok {
			continue
		}
		if opt.RequesterID != "" && req.RequesterID != opt.RequesterID {
			continue
		}
		if opt.ExcludeRequesterID != "" && req.RequesterID == opt.ExcludeRequesterID {
			continue
		}
		if opt.Status != "" && req.Status != opt.Status {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (m *memRepo) UpdateRequest(ctx context.Context, opt repo.UpdateRequestOptions) (model.WantedRequest, error) {
	req, ok := m.requests[opt.ID]
	if !ok || req.Status != model.WantedOpen {
		return model.WantedRequest{}, nil
	}
	req.Category, req.Size, req.Color = opt.Category, opt.Size, opt.Color
	req.Occasion, req.Description = opt.Occasion, opt.Description
	req.BudgetMin, req.BudgetMax = opt.BudgetMin, opt.BudgetMax
	req.NeededFrom, req.NeededUntil = opt.NeededFrom, opt.NeededUntil
	m.requests[req.ID] = req
	return req, nil
}

func (m *memRepo) UpdateRequestStatus(ctx context.Context, opt repo.UpdateRequestStatusOptions) (model.WantedRequest, error) {
	req, ok := m.requests[opt.ID]
	if !ok || req.Status != opt.From {
		return model.WantedRequest{}, nil
	}
	req.Status = opt.To
	req.FulfilledByListing = opt.FulfilledByListing
	m.requests[req.ID] = req
	return req, nil
}

var errBoom = errors.New("boom")
