package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/catalog"
	"rental-marketplace/internal/model"
	"rental-marketplace/pkg/log"
	"rental-marketplace/pkg/scope"
	"rental-marketplace/pkg/validation"
)

type mockUseCase struct {
	catalog.UseCase
	publishFunc           func(sc model.Scope, input catalog.PublishInput) (catalog.PublishOutput, error)
	publishForRequestFunc func(sc model.Scope, input catalog.PublishForRequestInput) (catalog.PublishOutput, error)
	listFunc              func(input catalog.ListInput) (catalog.ListOutput, error)
}

func (m *mockUseCase) Publish(ctx context.Context, sc model.Scope, input catalog.PublishInput) (catalog.PublishOutput, error) {
	return m.publishFunc(sc, input)
}

func (m *mockUseCase) PublishForRequest(ctx context.Context, sc model.Scope, input catalog.PublishForRequestInput) (catalog.PublishOutput, error) {
	return m.publishForRequestFunc(sc, input)
}

func (m *mockUseCase) List(ctx context.Context, input catalog.ListInput) (catalog.ListOutput, error) {
	return m.listFunc(input)
}

func newTestRouter(uc catalog.UseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Register()
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	})
	r.GET("/listings", h.List)
	r.POST("/listings", h.Publish)
	r.POST("/listings/for-request/:request_id", h.PublishForRequest)
	return r
}

func TestPublishHandler(t *testing.T) {
	uc := &mockUseCase{
		publishFunc: func(sc model.Scope, input catalog.PublishInput) (catalog.PublishOutput, error) {
			return catalog.PublishOutput{
				Listing:       model.Listing{ID: "l-1", OwnerID: sc.UserID, Name: input.Name, PricePerDay: input.PricePerDay},
				Notifications: []model.MatchNotification{{RecipientID: "alice", Kind: model.NotificationListingMatch, RequestID: "r-1"}},
			}, nil
		},
	}

	tests := []struct {
		name   string
		user   string
		body   string
		status int
	}{
		{"created", "owner", `{"name":"Elegant Silk Saree","price_per_day":150}`, http.StatusCreated},
		{"missing price", "owner", `{"name":"Saree"}`, http.StatusBadRequest},
		{"negative deposit", "owner", `{"name":"Saree","price_per_day":10,"security_deposit":-5}`, http.StatusBadRequest},
		{"no scope", "", `{"name":"Saree","price_per_day":10}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(uc, tt.user)
			req := httptest.NewRequest(http.MethodPost, "/listings", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body.String())
			}
			if tt.status != http.StatusCreated {
				return
			}
			var body struct {
				Data publishResp `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data.Listing.OwnerID != "owner" || len(body.Data.Notified) != 1 {
				t.Errorf("unexpected body: %+v", body.Data)
			}
		})
	}
}

func TestPublishForRequestHandlerMapsErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusCreated},
		{"request missing", catalog.ErrRequestNotFound, http.StatusNotFound},
		{"own request", catalog.ErrSelfResponseForbidden, http.StatusForbidden},
		{"request closed", catalog.ErrRequestNotOpen, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRequestID string
			uc := &mockUseCase{
				publishForRequestFunc: func(sc model.Scope, input catalog.PublishForRequestInput) (catalog.PublishOutput, error) {
					gotRequestID = input.RequestID
					if tt.err != nil {
						return catalog.PublishOutput{}, tt.err
					}
					return catalog.PublishOutput{Listing: model.Listing{ID: "l-1"}}, nil
				},
			}
			router := newTestRouter(uc, "owner")
			req := httptest.NewRequest(http.MethodPost, "/listings/for-request/r-9", strings.NewReader(`{"name":"Sherwani","price_per_day":99}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if gotRequestID != "r-9" {
				t.Errorf("request id = %q, want r-9", gotRequestID)
			}
		})
	}
}

func TestListHandlerIsPublic(t *testing.T) {
	var captured catalog.ListInput
	uc := &mockUseCase{
		listFunc: func(input catalog.ListInput) (catalog.ListOutput, error) {
			captured = input
			return catalog.ListOutput{Listings: []model.Listing{{ID: "l-1"}}, Limit: 20}, nil
		},
	}
	router := newTestRouter(uc, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/listings?category=Saree&available=true", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if captured.Category != "Saree" || captured.Available == nil || !*captured.Available {
		t.Errorf("filters not bound: %+v", captured)
	}
}
