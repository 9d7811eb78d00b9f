package http

import (
	"time"

	"rental-marketplace/internal/catalog"
	"rental-marketplace/internal/model"
)

// --- Request DTOs ---

type publishReq struct {
	Name            string   `json:"name"             binding:"required,max=200"`
	Description     string   `json:"description"      binding:"max=2000"`
	Category        string   `json:"category"         binding:"max=100"`
	Size            string   `json:"size"             binding:"max=20"`
	Color           string   `json:"color"            binding:"max=50"`
	PricePerDay     float64  `json:"price_per_day"    binding:"required,gt=0"`
	SecurityDeposit *float64 `json:"security_deposit" binding:"omitempty,gte=0"`
}

func (r publishReq) validate() error { return nil }

func (r publishReq) toInput() catalog.PublishInput {
	return catalog.PublishInput{
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		Size:            r.Size,
		Color:           r.Color,
		PricePerDay:     r.PricePerDay,
		SecurityDeposit: r.SecurityDeposit,
	}
}

// ---

type listReq struct {
	OwnerID   string `form:"owner_id"`
	Category  string `form:"category"`
	Available *bool  `form:"available"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() catalog.ListInput {
	return catalog.ListInput{
		OwnerID:   r.OwnerID,
		Category:  r.Category,
		Available: r.Available,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// ---

type updateReq struct {
	ID              string   `json:"-"` // populated from URI param
	Name            string   `json:"name"             binding:"omitempty,max=200"`
	Description     string   `json:"description"      binding:"omitempty,max=2000"`
	Category        string   `json:"category"         binding:"omitempty,max=100"`
	Size            string   `json:"size"             binding:"omitempty,max=20"`
	Color           string   `json:"color"            binding:"omitempty,max=50"`
	PricePerDay     *float64 `json:"price_per_day"    binding:"omitempty,gt=0"`
	SecurityDeposit *float64 `json:"security_deposit" binding:"omitempty,gte=0"`
	IsAvailable     *bool    `json:"is_available"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() catalog.UpdateInput {
	return catalog.UpdateInput{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		Size:            r.Size,
		Color:           r.Color,
		PricePerDay:     r.PricePerDay,
		SecurityDeposit: r.SecurityDeposit,
		IsAvailable:     r.IsAvailable,
	}
}

// --- Response DTOs ---

type listingResp struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category,omitempty"`
	Size            string    `json:"size,omitempty"`
	Color           string    `json:"color,omitempty"`
	PricePerDay     float64   `json:"price_per_day"`
	SecurityDeposit float64   `json:"security_deposit"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newListingResp(l model.Listing) listingResp {
	return listingResp{
		ID:              l.ID,
		OwnerID:         l.OwnerID,
		Name:            l.Name,
		Description:     l.Description,
		Category:        l.Category,
		Size:            l.Size,
		Color:           l.Color,
		PricePerDay:     l.PricePerDay,
		SecurityDeposit: l.SecurityDeposit,
		IsAvailable:     l.IsAvailable,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

type itemResp struct {
	Listing listingResp `json:"listing"`
}

func (h *handler) newItemResp(l model.Listing) itemResp {
	return itemResp{Listing: newListingResp(l)}
}

type notifiedResp struct {
	RecipientID string `json:"recipient_id"`
	Kind        string `json:"kind"`
	RequestID   string `json:"request_id"`
}

type publishResp struct {
	Listing  listingResp    `json:"listing"`
	Notified []notifiedResp `json:"notified"`
}

func (h *handler) newPublishResp(out catalog.PublishOutput) publishResp {
	notified := make([]notifiedResp, len(out.Notifications))
	for i, n := range out.Notifications {
		notified[i] = notifiedResp{
			RecipientID: n.RecipientID,
			Kind:        string(n.Kind),
			RequestID:   n.RequestID,
		}
	}
	return publishResp{
		Listing:  newListingResp(out.Listing),
		Notified: notified,
	}
}

type listResp struct {
	Listings []listingResp `json:"listings"`
	Limit    int           `json:"limit,omitempty"`
	Offset   int           `json:"offset,omitempty"`
}

func (h *handler) newListResp(out catalog.ListOutput) listResp {
	listings := make([]listingResp, len(out.Listings))
	for i, l := range out.Listings {
		listings[i] = newListingResp(l)
	}
	return listResp{
		Listings: listings,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}
