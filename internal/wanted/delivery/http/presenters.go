package http

import (
	"time"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/wanted"
	"rental-marketplace/pkg/datemath"
	"rental-marketplace/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Category    string   `json:"category"     binding:"required,max=100"`
	Size        string   `json:"size"         binding:"max=20"`
	Color       string   `json:"color"        binding:"max=50"`
	Occasion    string   `json:"occasion"     binding:"max=100"`
	Description string   `json:"description"  binding:"max=1000"`
	BudgetMin   *float64 `json:"budget_min"   binding:"omitempty,gte=0"`
	BudgetMax   *float64 `json:"budget_max"   binding:"omitempty,gte=0"`
	NeededFrom  string   `json:"needed_from"  binding:"omitempty,isodate"`
	NeededUntil string   `json:"needed_until" binding:"omitempty,isodate"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() wanted.CreateInput {
	return wanted.CreateInput{
		Category:    r.Category,
		Size:        r.Size,
		Color:       r.Color,
		Occasion:    r.Occasion,
		Description: r.Description,
		BudgetMin:   r.BudgetMin,
		BudgetMax:   r.BudgetMax,
		NeededFrom:  parseOptionalDate(r.NeededFrom),
		NeededUntil: parseOptionalDate(r.NeededUntil),
	}
}

// ---

type listOpenReq struct {
	Status string `form:"status" binding:"omitempty,oneof=open fulfilled cancelled"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listOpenReq) validate() error { return nil }

func (r listOpenReq) toInput() wanted.ListOpenInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return wanted.ListOpenInput{
		Status: r.Status,
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID          string   `json:"-"` // populated from URI param
	Category    string   `json:"category"     binding:"omitempty,max=100"`
	Size        string   `json:"size"         binding:"omitempty,max=20"`
	Color       string   `json:"color"        binding:"omitempty,max=50"`
	Occasion    string   `json:"occasion"     binding:"omitempty,max=100"`
	Description string   `json:"description"  binding:"omitempty,max=1000"`
	BudgetMin   *float64 `json:"budget_min"   binding:"omitempty,gte=0"`
	BudgetMax   *float64 `json:"budget_max"   binding:"omitempty,gte=0"`
	NeededFrom  string   `json:"needed_from"  binding:"omitempty,isodate"`
	NeededUntil string   `json:"needed_until" binding:"omitempty,isodate"`
	Clear       []string `json:"clear"        binding:"omitempty,dive,oneof=size color occasion description budget_min budget_max needed_from needed_until"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() wanted.UpdateInput {
	return wanted.UpdateInput{
		ID:          r.ID,
		Category:    r.Category,
		Size:        r.Size,
		Color:       r.Color,
		Occasion:    r.Occasion,
		Description: r.Description,
		BudgetMin:   r.BudgetMin,
		BudgetMax:   r.BudgetMax,
		NeededFrom:  parseOptionalDate(r.NeededFrom),
		NeededUntil: parseOptionalDate(r.NeededUntil),
		Clear:       r.Clear,
	}
}

// parseOptionalDate assumes the value already passed the isodate binding.
func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := datemath.ParseISO(value)
	if err != nil {
		return nil
	}
	return &t
}

// --- Response DTOs ---

type requestResp struct {
	ID                 string         `json:"id"`
	RequesterID        string         `json:"requester_id"`
	Category           string         `json:"category"`
	Size               string         `json:"size,omitempty"`
	Color              string         `json:"color,omitempty"`
	Occasion           string         `json:"occasion,omitempty"`
	Description        string         `json:"description,omitempty"`
	BudgetMin          *float64       `json:"budget_min,omitempty"`
	BudgetMax          *float64       `json:"budget_max,omitempty"`
	NeededFrom         *response.Date `json:"needed_from,omitempty"`
	NeededUntil        *response.Date `json:"needed_until,omitempty"`
	Status             string         `json:"status"`
	FulfilledByListing string         `json:"fulfilled_by_listing,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func newRequestResp(req model.WantedRequest) requestResp {
	return requestResp{
		ID:                 req.ID,
		RequesterID:        req.RequesterID,
		Category:           req.Category,
		Size:               req.Size,
		Color:              req.Color,
		Occasion:           req.Occasion,
		Description:        req.Description,
		BudgetMin:          req.BudgetMin,
		BudgetMax:          req.BudgetMax,
		NeededFrom:         toDate(req.NeededFrom),
		NeededUntil:        toDate(req.NeededUntil),
		Status:             string(req.Status),
		FulfilledByListing: req.FulfilledByListing,
		CreatedAt:          req.CreatedAt,
		UpdatedAt:          req.UpdatedAt,
	}
}

func toDate(t *time.Time) *response.Date {
	if t == nil {
		return nil
	}
	d := response.Date(*t)
	return &d
}

type itemResp struct {
	Request requestResp `json:"request"`
}

func (h *handler) newItemResp(req model.WantedRequest) itemResp {
	return itemResp{Request: newRequestResp(req)}
}

type listResp struct {
	Requests []requestResp `json:"requests"`
	Limit    int           `json:"limit,omitempty"`
	Offset   int           `json:"offset,omitempty"`
}

func (h *handler) newListResp(out wanted.ListOutput) listResp {
	requests := make([]requestResp, len(out.Requests))
	for i, req := range out.Requests {
		requests[i] = newRequestResp(req)
	}
	return listResp{
		Requests: requests,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}
