package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/wanted"
	"rental-marketplace/pkg/log"
	"rental-marketplace/pkg/scope"
	"rental-marketplace/pkg/validation"
)

type mockUseCase struct {
	wanted.UseCase
	createFunc func(sc model.Scope, input wanted.CreateInput) (wanted.CreateOutput, error)
	cancelFunc func(sc model.Scope, id string) (wanted.CancelOutput, error)
	updateFunc func(sc model.Scope, input wanted.UpdateInput) (wanted.UpdateOutput, error)
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input wanted.UpdateInput) (wanted.UpdateOutput, error) {
	return m.updateFunc(sc, input)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input wanted.CreateInput) (wanted.CreateOutput, error) {
	return m.createFunc(sc, input)
}

func (m *mockUseCase) Cancel(ctx context.Context, sc model.Scope, id string) (wanted.CancelOutput, error) {
	return m.cancelFunc(sc, id)
}

func newTestRouter(uc wanted.UseCase, userID string) *gin.Engine {
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
	r.POST("/wanted", h.Create)
	r.PUT("/wanted/:id", h.Update)
	r.POST("/wanted/:id/cancel", h.Cancel)
	return r
}

func TestCreateHandler(t *testing.T) {
	var captured wanted.CreateInput
	uc := &mockUseCase{
		createFunc: func(sc model.Scope, input wanted.CreateInput) (wanted.CreateOutput, error) {
			captured = input
			if input.BudgetMin != nil && input.BudgetMax != nil && *input.BudgetMin > *input.BudgetMax {
				return wanted.CreateOutput{}, wanted.ErrInvalidBudget
			}
			return wanted.CreateOutput{Request: model.WantedRequest{ID: "r-1", RequesterID: sc.UserID, Category: input.Category, Status: model.WantedOpen}}, nil
		},
	}

	tests := []struct {
		name   string
		user   string
		body   string
		status int
	}{
		{"created", "u-1", `{"category":"Saree","needed_from":"2024-03-01"}`, http.StatusCreated},
		{"missing category", "u-1", `{"color":"red"}`, http.StatusBadRequest},
		{"bad date", "u-1", `{"category":"Saree","needed_from":"next week"}`, http.StatusBadRequest},
		{"budget rejected by usecase", "u-1", `{"category":"Saree","budget_min":50,"budget_max":10}`, http.StatusBadRequest},
		{"no scope", "", `{"category":"Saree"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(uc, tt.user)
			req := httptest.NewRequest(http.MethodPost, "/wanted", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body.String())
			}
		})
	}

	if captured.NeededFrom == nil || captured.NeededFrom.Day() != 1 {
		t.Errorf("needed_from not parsed: %v", captured.NeededFrom)
	}
}

func TestCancelHandlerMapsErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"not found", wanted.ErrRequestNotFound, http.StatusNotFound},
		{"not requester", wanted.ErrNotAuthorized, http.StatusForbidden},
		{"closed", wanted.ErrRequestClosed, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				cancelFunc: func(sc model.Scope, id string) (wanted.CancelOutput, error) {
					if tt.err != nil {
						return wanted.CancelOutput{}, tt.err
					}
					return wanted.CancelOutput{Request: model.WantedRequest{ID: id, Status: model.WantedCancelled}}, nil
				},
			}
			router := newTestRouter(uc, "u-1")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wanted/r-1/cancel", nil))

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.err == nil {
				var body struct {
					Data itemResp `json:"data"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if body.Data.Request.Status != "cancelled" {
					t.Errorf("status in body = %q", body.Data.Request.Status)
				}
			}
		})
	}
}

func TestUpdateHandlerClearFields(t *testing.T) {
	var captured wanted.UpdateInput
	uc := &mockUseCase{
		updateFunc: func(sc model.Scope, input wanted.UpdateInput) (wanted.UpdateOutput, error) {
			captured = input
			return wanted.UpdateOutput{Request: model.WantedRequest{ID: input.ID, Category: "Saree", Status: model.WantedOpen}}, nil
		},
	}

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"clears optional fields", `{"clear":["color","budget_max"]}`, http.StatusOK},
		{"category cannot be cleared", `{"clear":["category"]}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured = wanted.UpdateInput{}
			router := newTestRouter(uc, "u-1")
			req := httptest.NewRequest(http.MethodPut, "/wanted/r-1", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body.String())
			}
		})
	}

	router := newTestRouter(uc, "u-1")
	req := httptest.NewRequest(http.MethodPut, "/wanted/r-1", strings.NewReader(`{"clear":["color","budget_max"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if captured.ID != "r-1" || len(captured.Clear) != 2 || captured.Clear[0] != wanted.FieldColor {
		t.Errorf("unexpected input: %+v", captured)
	}
}
