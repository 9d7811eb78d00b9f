package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/booking"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/datemath"
	"rental-marketplace/pkg/log"
	"rental-marketplace/pkg/response"
	"rental-marketplace/pkg/scope"
	"rental-marketplace/pkg/validation"
)

type mockUseCase struct {
	booking.UseCase
	createFunc       func(sc model.Scope, input booking.CreateInput) (booking.CreateOutput, error)
	availabilityFunc func(input booking.AvailabilityInput) (booking.AvailabilityOutput, error)
	updateStatusFunc func(sc model.Scope, input booking.UpdateStatusInput) (model.Reservation, error)
	listForListing   func(listingID string) (booking.ListOutput, error)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateInput) (booking.CreateOutput, error) {
	return m.createFunc(sc, input)
}

func (m *mockUseCase) CheckAvailability(ctx context.Context, input booking.AvailabilityInput) (booking.AvailabilityOutput, error) {
	return m.availabilityFunc(input)
}

func (m *mockUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input booking.UpdateStatusInput) (model.Reservation, error) {
	return m.updateStatusFunc(sc, input)
}

func (m *mockUseCase) ListForListing(ctx context.Context, listingID string) (booking.ListOutput, error) {
	return m.listForListing(listingID)
}

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func newTestRouter(uc booking.UseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Register()
	dates, _ := datemath.NewParser("UTC")
	h := New(log.NewNop(), uc, dates)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	})
	r.POST("/reservations", h.Create)
	r.PUT("/reservations/:id/status", h.UpdateStatus)
	r.GET("/listings/:id/availability", h.Availability)
	r.GET("/listings/:id/reservations", h.Calendar)
	return r
}

func TestCreateHandler(t *testing.T) {
	var got booking.CreateInput
	uc := &mockUseCase{
		createFunc: func(sc model.Scope, input booking.CreateInput) (booking.CreateOutput, error) {
			got = input
			return booking.CreateOutput{
				Reservation: model.Reservation{
					ID: "r-1", ListingID: input.ListingID, RenterID: sc.UserID,
					StartDate: input.StartDate, EndDate: input.EndDate,
					TotalDays: 3, TotalPrice: 150, Status: model.ReservationPending,
				},
				FulfilledRequests: []string{"w-1"},
			}, nil
		},
	}

	tests := []struct {
		name   string
		user   string
		body   string
		status int
	}{
		{"created", "bob", `{"listing_id":"l-1","start_date":"2024-03-01","end_date":"2024-03-03"}`, http.StatusCreated},
		{"bad date", "bob", `{"listing_id":"l-1","start_date":"03/01/2024","end_date":"2024-03-03"}`, http.StatusBadRequest},
		{"missing listing", "bob", `{"start_date":"2024-03-01","end_date":"2024-03-03"}`, http.StatusBadRequest},
		{"no scope", "", `{"listing_id":"l-1","start_date":"2024-03-01","end_date":"2024-03-03"}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(uc, tt.user)
			req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body.String())
			}
			if tt.status != http.StatusCreated {
				return
			}
			if !got.StartDate.Equal(date("2024-03-01")) || !got.EndDate.Equal(date("2024-03-03")) {
				t.Errorf("dates not parsed: %+v", got)
			}
			var body struct {
				Data struct {
					Reservation struct {
						StartDate  string  `json:"start_date"`
						TotalPrice float64 `json:"total_price"`
						Status     string  `json:"status"`
					} `json:"reservation"`
					FulfilledRequests []string `json:"fulfilled_requests"`
				} `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data.Reservation.StartDate != "2024-03-01" || body.Data.Reservation.TotalPrice != 150 {
				t.Errorf("unexpected reservation: %+v", body.Data.Reservation)
			}
			if body.Data.Reservation.Status != "pending" || len(body.Data.FulfilledRequests) != 1 {
				t.Errorf("unexpected body: %+v", body.Data)
			}
		})
	}
}

func TestCreateHandlerConflictCarriesWindow(t *testing.T) {
	uc := &mockUseCase{
		createFunc: func(sc model.Scope, input booking.CreateInput) (booking.CreateOutput, error) {
			return booking.CreateOutput{}, &booking.ConflictError{
				ReservationID: "r-9",
				Start:         date("2024-03-01"),
				End:           date("2024-03-05"),
			}
		},
	}
	router := newTestRouter(uc, "carol")
	req := httptest.NewRequest(http.MethodPost, "/reservations",
		strings.NewReader(`{"listing_id":"l-1","start_date":"2024-03-04","end_date":"2024-03-08"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body.Message, "2024-03-01 to 2024-03-05") {
		t.Errorf("message = %q", body.Message)
	}
	if body.Errors["conflict_start"] != "2024-03-01" || body.Errors["conflict_end"] != "2024-03-05" || body.Errors["reservation_id"] != "r-9" {
		t.Errorf("details = %+v", body.Errors)
	}
}

func TestCreateHandlerMapsErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"listing missing", booking.ErrListingNotFound, http.StatusNotFound},
		{"own listing", booking.ErrSelfBooking, http.StatusBadRequest},
		{"bad window", booking.ErrInvalidRange, http.StatusBadRequest},
		{"bare conflict", &booking.ConflictError{}, http.StatusConflict},
		{"unexpected", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				createFunc: func(sc model.Scope, input booking.CreateInput) (booking.CreateOutput, error) {
					return booking.CreateOutput{}, tt.err
				},
			}
			router := newTestRouter(uc, "bob")
			req := httptest.NewRequest(http.MethodPost, "/reservations",
				strings.NewReader(`{"listing_id":"l-1","start_date":"2024-03-01","end_date":"2024-03-03"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestAvailabilityHandler(t *testing.T) {
	var got booking.AvailabilityInput
	uc := &mockUseCase{
		availabilityFunc: func(input booking.AvailabilityInput) (booking.AvailabilityOutput, error) {
			got = input
			if input.StartDate.Before(date("2024-03-05")) {
				return booking.AvailabilityOutput{
					Available: false,
					Conflict:  model.Reservation{ID: "r-1", StartDate: date("2024-03-01"), EndDate: date("2024-03-05")},
				}, nil
			}
			return booking.AvailabilityOutput{Available: true}, nil
		},
	}
	router := newTestRouter(uc, "")

	tests := []struct {
		name      string
		query     string
		status    int
		available bool
	}{
		{"busy", "?start_date=2024-03-04&end_date=2024-03-08", http.StatusOK, false},
		{"adjacent is free", "?start_date=2024-03-05&end_date=2024-03-08&exclude_reservation_id=r-2", http.StatusOK, true},
		{"missing end", "?start_date=2024-03-05", http.StatusBadRequest, false},
		{"unparseable start", "?start_date=someday&end_date=2024-03-08", http.StatusBadRequest, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/listings/l-1/availability"+tt.query, nil))
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}
			if got.ListingID != "l-1" {
				t.Errorf("listing id = %q", got.ListingID)
			}
			var body struct {
				Data struct {
					Available     bool    `json:"available"`
					ConflictStart *string `json:"conflict_start"`
				} `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data.Available != tt.available {
				t.Errorf("available = %v, want %v", body.Data.Available, tt.available)
			}
			if !tt.available && (body.Data.ConflictStart == nil || *body.Data.ConflictStart != "2024-03-01") {
				t.Errorf("conflict_start = %v", body.Data.ConflictStart)
			}
		})
	}
	if got.ExcludeReservationID != "r-2" {
		t.Errorf("exclude id = %q, want r-2", got.ExcludeReservationID)
	}
}

func TestAvailabilityHandlerRelativeDates(t *testing.T) {
	var got booking.AvailabilityInput
	uc := &mockUseCase{
		availabilityFunc: func(input booking.AvailabilityInput) (booking.AvailabilityOutput, error) {
			got = input
			return booking.AvailabilityOutput{Available: true}, nil
		},
	}
	router := newTestRouter(uc, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/listings/l-1/availability?start_date=today&end_date=in+3+days", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	if d := got.EndDate.Sub(got.StartDate); d != 72*time.Hour {
		t.Errorf("window = %v, want 72h (start %v end %v)", d, got.StartDate, got.EndDate)
	}
}

func TestCalendarHandler(t *testing.T) {
	uc := &mockUseCase{
		listForListing: func(listingID string) (booking.ListOutput, error) {
			return booking.ListOutput{Reservations: []model.Reservation{
				{ID: "r-1", ListingID: listingID, RenterID: "bob", StartDate: date("2024-03-01"), EndDate: date("2024-03-05"), Status: model.ReservationConfirmed},
			}}, nil
		},
	}
	router := newTestRouter(uc, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/listings/l-1/reservations", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "bob") {
		t.Errorf("calendar leaks renter: %s", w.Body.String())
	}
	var body struct {
		Data calendarResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Reservations) != 1 || body.Data.Reservations[0].Status != "confirmed" {
		t.Errorf("unexpected calendar: %+v", body.Data)
	}
}

func TestUpdateStatusHandlerMapsErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"unknown status", booking.ErrInvalidStatus, http.StatusBadRequest},
		{"not owner", booking.ErrNotAuthorized, http.StatusForbidden},
		{"not found", booking.ErrReservationNotFound, http.StatusNotFound},
		{"bad transition", booking.ErrInvalidTransition, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			uc := &mockUseCase{
				updateStatusFunc: func(sc model.Scope, input booking.UpdateStatusInput) (model.Reservation, error) {
					gotID = input.ID
					if tt.err != nil {
						return model.Reservation{}, tt.err
					}
					return model.Reservation{ID: input.ID, Status: model.ReservationStatus(input.Status)}, nil
				},
			}
			router := newTestRouter(uc, "alice")
			req := httptest.NewRequest(http.MethodPut, "/reservations/r-1/status", strings.NewReader(`{"status":"confirmed"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if gotID != "r-1" {
				t.Errorf("id = %q", gotID)
			}
			if tt.status == http.StatusOK {
				var body response.Resp
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.ErrorCode != 0 {
					t.Errorf("body = %s", w.Body.String())
				}
			}
		})
	}
}
