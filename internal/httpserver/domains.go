package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "rental-marketplace/internal/booking/delivery/http"
	bookingUC "rental-marketplace/internal/booking/usecase"
	catalogHTTP "rental-marketplace/internal/catalog/delivery/http"
	catalogUC "rental-marketplace/internal/catalog/usecase"
	"rental-marketplace/internal/matcher"
	"rental-marketplace/internal/middleware"
	notificationHTTP "rental-marketplace/internal/notification/delivery/http"
	notificationUC "rental-marketplace/internal/notification/usecase"
	wantedHTTP "rental-marketplace/internal/wanted/delivery/http"
	wantedUC "rental-marketplace/internal/wanted/usecase"
	"rental-marketplace/pkg/datemath"
)

// setupDomains initializes every domain and registers its routes.
//
// Order follows the dependency graph: the notification sink first, then
// wanted requests and the matcher over them, then the catalog and booking
// which both drive the matcher.
func (srv HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Notifications: /api/v1/notifications
	notifications := notificationUC.New(srv.repos.Notification, srv.publisher, srv.l)
	notificationHTTP.RegisterRoutes(api, notificationHTTP.New(srv.l, notifications), mw)

	// Wanted requests: /api/v1/wanted
	requests := wantedUC.New(srv.repos.Wanted, srv.l)
	wantedHTTP.RegisterRoutes(api, wantedHTTP.New(srv.l, requests), mw)

	match := matcher.New(srv.repos.Wanted, notifications, srv.l)

	// Listings: /api/v1/listings
	listings := catalogUC.New(srv.repos.Catalog, requests, match, notifications, srv.l)
	catalogHTTP.RegisterRoutes(api, catalogHTTP.New(srv.l, listings), mw)

	// Reservations: /api/v1/reservations, /api/v1/listings/:id/{availability,reservations}
	bookings := bookingUC.New(srv.repos.Booking, listings, match, srv.l)
	bookingHTTP.RegisterRoutes(api, bookingHTTP.New(srv.l, bookings, srv.dateParser(ctx)), mw)

	srv.l.Infof(ctx, "Domains registered: notifications, wanted, listings, reservations")
	return nil
}

// dateParser resolves relative dates in the configured timezone, falling
// back to UTC.
func (srv HTTPServer) dateParser(ctx context.Context) *datemath.Parser {
	timezone := srv.timezone
	if timezone == "" {
		timezone = "UTC"
	}
	parser, err := datemath.NewParser(timezone)
	if err != nil {
		srv.l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}
	return parser
}
