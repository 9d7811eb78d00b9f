package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rental-marketplace/internal/model"
	"rental-marketplace/internal/notification"
	"rental-marketplace/pkg/log"
	"rental-marketplace/pkg/scope"
)

type mockUseCase struct {
	notification.UseCase
	listFunc     func(sc model.Scope, input notification.ListInput) (notification.ListOutput, error)
	markReadFunc func(sc model.Scope, id string) error
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	return m.listFunc(sc, input)
}

func (m *mockUseCase) MarkRead(ctx context.Context, sc model.Scope, id string) error {
	return m.markReadFunc(sc, id)
}

func newTestRouter(uc notification.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u-1"}))
		c.Next()
	})
	r.GET("/notifications", h.List)
	r.POST("/notifications/:id/read", h.MarkRead)
	return r
}

func TestListHandler(t *testing.T) {
	var got notification.ListInput
	uc := &mockUseCase{
		listFunc: func(sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
			got = input
			return notification.ListOutput{
				Notifications: []model.Notification{{ID: "n-1", RecipientID: sc.UserID, Kind: model.NotificationListingMatch}},
				Unread:        1,
			}, nil
		},
	}

	w := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications?unread_only=true", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !got.UnreadOnly || got.Limit != 50 {
		t.Errorf("unexpected input: %+v", got)
	}

	var body struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Unread != 1 || len(body.Data.Notifications) != 1 || body.Data.Notifications[0].Kind != "listing_match" {
		t.Errorf("unexpected body: %+v", body.Data)
	}
}

func TestMarkReadHandler(t *testing.T) {
	uc := &mockUseCase{
		markReadFunc: func(sc model.Scope, id string) error {
			if id == "n-1" {
				return nil
			}
			return notification.ErrNotificationNotFound
		},
	}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/n-1/read", nil))
	if w.Code != http.StatusOK {
		t.Errorf("own notification: status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/n-2/read", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("foreign notification: status = %d", w.Code)
	}
}
