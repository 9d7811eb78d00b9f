package http

import (
	"time"

	"rental-marketplace/internal/booking"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/datemath"
	"rental-marketplace/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ListingID string `json:"listing_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required,isodate"`
	EndDate   string `json:"end_date"   binding:"required,isodate"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		ListingID: r.ListingID,
		StartDate: mustParseDate(r.StartDate),
		EndDate:   mustParseDate(r.EndDate),
	}
}

// ---

// availabilityReq takes ISO dates or relative ones such as "today" or
// "next friday".
type availabilityReq struct {
	ListingID string `form:"-"` // populated from URI param
	StartDate string `form:"start_date" binding:"required,max=32"`
	EndDate   string `form:"end_date"   binding:"required,max=32"`
	Exclude   string `form:"exclude_reservation_id"`

	start, end time.Time
}

func (r availabilityReq) validate() error { return nil }

func (r availabilityReq) toInput() booking.AvailabilityInput {
	return booking.AvailabilityInput{
		ListingID:            r.ListingID,
		StartDate:            r.start,
		EndDate:              r.end,
		ExcludeReservationID: r.Exclude,
	}
}

// ---

type updateStatusReq struct {
	ID     string `json:"-"` // populated from URI param
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) validate() error { return nil }

func (r updateStatusReq) toInput() booking.UpdateStatusInput {
	return booking.UpdateStatusInput{
		ID:     r.ID,
		Status: r.Status,
	}
}

// mustParseDate assumes the value already passed the isodate binding.
func mustParseDate(value string) time.Time {
	t, _ := datemath.ParseISO(value)
	return t
}

// --- Response DTOs ---

type reservationResp struct {
	ID              string        `json:"id"`
	ListingID       string        `json:"listing_id"`
	RenterID        string        `json:"renter_id"`
	StartDate       response.Date `json:"start_date"`
	EndDate         response.Date `json:"end_date"`
	TotalDays       int           `json:"total_days"`
	TotalPrice      float64       `json:"total_price"`
	SecurityDeposit float64       `json:"security_deposit"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

func newReservationResp(r model.Reservation) reservationResp {
	return reservationResp{
		ID:              r.ID,
		ListingID:       r.ListingID,
		RenterID:        r.RenterID,
		StartDate:       response.Date(r.StartDate),
		EndDate:         response.Date(r.EndDate),
		TotalDays:       r.TotalDays,
		TotalPrice:      r.TotalPrice,
		SecurityDeposit: r.SecurityDeposit,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
	}
}

type createResp struct {
	Reservation       reservationResp `json:"reservation"`
	FulfilledRequests []string        `json:"fulfilled_requests"`
}

func (h *handler) newCreateResp(out booking.CreateOutput) createResp {
	fulfilled := out.FulfilledRequests
	if fulfilled == nil {
		fulfilled = []string{}
	}
	return createResp{
		Reservation:       newReservationResp(out.Reservation),
		FulfilledRequests: fulfilled,
	}
}

type availabilityResp struct {
	Available     bool           `json:"available"`
	ConflictStart *response.Date `json:"conflict_start,omitempty"`
	ConflictEnd   *response.Date `json:"conflict_end,omitempty"`
}

func (h *handler) newAvailabilityResp(out booking.AvailabilityOutput) availabilityResp {
	resp := availabilityResp{Available: out.Available}
	if !out.Available {
		start, end := response.Date(out.Conflict.StartDate), response.Date(out.Conflict.EndDate)
		resp.ConflictStart, resp.ConflictEnd = &start, &end
	}
	return resp
}

// calendarEntryResp is the public view of a booked window.
type calendarEntryResp struct {
	ID        string        `json:"id"`
	StartDate response.Date `json:"start_date"`
	EndDate   response.Date `json:"end_date"`
	Status    string        `json:"status"`
}

type calendarResp struct {
	Reservations []calendarEntryResp `json:"reservations"`
}

func (h *handler) newCalendarResp(out booking.ListOutput) calendarResp {
	entries := make([]calendarEntryResp, len(out.Reservations))
	for i, r := range out.Reservations {
		entries[i] = calendarEntryResp{
			ID:        r.ID,
			StartDate: response.Date(r.StartDate),
			EndDate:   response.Date(r.EndDate),
			Status:    string(r.Status),
		}
	}
	return calendarResp{Reservations: entries}
}

type listingSummaryResp struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

type detailResp struct {
	Reservation reservationResp    `json:"reservation"`
	Listing     listingSummaryResp `json:"listing"`
}

func (h *handler) newDetailResp(out booking.DetailOutput) detailResp {
	return detailResp{
		Reservation: newReservationResp(out.Reservation),
		Listing: listingSummaryResp{
			ID:      out.Listing.ID,
			Name:    out.Listing.Name,
			OwnerID: out.Listing.OwnerID,
		},
	}
}

type itemResp struct {
	Reservation reservationResp `json:"reservation"`
}

func (h *handler) newItemResp(r model.Reservation) itemResp {
	return itemResp{Reservation: newReservationResp(r)}
}

type listResp struct {
	Reservations []reservationResp `json:"reservations"`
}

func (h *handler) newListResp(out booking.ListOutput) listResp {
	reservations := make([]reservationResp, len(out.Reservations))
	for i, r := range out.Reservations {
		reservations[i] = newReservationResp(r)
	}
	return listResp{Reservations: reservations}
}
