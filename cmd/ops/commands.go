package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	redisConn "rental-marketplace/config/redis"
	"rental-marketplace/internal/booking"
	"rental-marketplace/internal/catalog"
	"rental-marketplace/internal/matcher"
	"rental-marketplace/internal/notification"
	notificationRedis "rental-marketplace/internal/notification/delivery/redis"
	"rental-marketplace/pkg/datemath"
)

var errConflictsFound = errors.New("overlapping live reservations found")

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Apply pending migrations for the configured driver",
	Action: func(c *cli.Context) error {
		e, err := bootstrap(c.Context)
		if err != nil {
			return err
		}
		defer e.close(c.Context)

		fmt.Fprintf(c.App.Writer, "schema up to date (%s)\n", e.cfg.Database.Driver)
		return nil
	},
}

var auditCmd = &cli.Command{
	Name:    "audit-conflicts",
	Usage:   "Report pairs of live reservations that overlap on the same listing",
	Aliases: []string{"audit"},
	Action: func(c *cli.Context) error {
		e, err := bootstrap(c.Context)
		if err != nil {
			return err
		}
		defer e.close(c.Context)

		_, _, bookings := e.usecases()
		return runAudit(c.Context, bookings, c.App.Writer)
	},
}

var rematchCmd = &cli.Command{
	Name:  "rematch",
	Usage: "Re-run request matching for a listing and notify new matches",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "listing",
			Required: true,
			Usage:    "specify the listing id",
		},
	},
	Action: func(c *cli.Context) error {
		e, err := bootstrap(c.Context)
		if err != nil {
			return err
		}
		defer e.close(c.Context)

		listings, match, _ := e.usecases()
		return runRematch(c.Context, listings, match, c.String("listing"), c.App.Writer)
	},
}

var tailCmd = &cli.Command{
	Name:  "tail",
	Usage: "Print realtime notifications for a user until interrupted",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "user",
			Required: true,
			Usage:    "specify the recipient user id",
		},
	},
	Action: func(c *cli.Context) error {
		e, err := bootstrap(c.Context)
		if err != nil {
			return err
		}
		defer e.close(c.Context)

		if e.cfg.Redis.Addr == "" {
			return errors.New("redis.addr is not configured")
		}
		client, err := redisConn.Connect(c.Context, redisConn.Options{
			Addr:     e.cfg.Redis.Addr,
			Password: e.cfg.Redis.Password,
			DB:       e.cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()

		w := c.App.Writer
		return notificationRedis.Subscribe(c.Context, client, e.cfg.Redis.Channel, c.String("user"),
			func(ev notification.Event) { printEvent(w, ev) },
			func(err error) { fmt.Fprintln(os.Stderr, err) },
		)
	},
}

// runAudit prints every overlapping pair and fails when any exist.
func runAudit(ctx context.Context, bookings booking.UseCase, w io.Writer) error {
	out, err := bookings.AuditConflicts(ctx)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	fmt.Fprintf(w, "scanned %d live reservations\n", out.Scanned)
	for _, pair := range out.Conflicts {
		fmt.Fprintf(w, "listing %s: %s [%s] overlaps %s [%s]\n",
			pair.ListingID,
			pair.First.ID, datemath.NewRange(pair.First.StartDate, pair.First.EndDate),
			pair.Second.ID, datemath.NewRange(pair.Second.StartDate, pair.Second.EndDate),
		)
	}
	if len(out.Conflicts) > 0 {
		return fmt.Errorf("%w: %d", errConflictsFound, len(out.Conflicts))
	}
	fmt.Fprintln(w, "no conflicts")
	return nil
}

// runRematch re-runs publish mode for one listing.
func runRematch(ctx context.Context, listings catalog.Lookup, match matcher.UseCase, listingID string, w io.Writer) error {
	listing, err := listings.GetListing(ctx, listingID)
	if err != nil {
		return fmt.Errorf("get listing %s: %w", listingID, err)
	}

	sent, err := match.OnListingPublished(ctx, listing)
	if err != nil {
		return fmt.Errorf("rematch %s: %w", listingID, err)
	}

	for _, n := range sent {
		fmt.Fprintf(w, "notified %s about request %s\n", n.RecipientID, n.RequestID)
	}
	fmt.Fprintf(w, "%d requester(s) notified for %q\n", len(sent), listing.Name)
	return nil
}

func printEvent(w io.Writer, ev notification.Event) {
	fmt.Fprintf(w, "[%s] %s: %s\n", ev.Kind, ev.Title, ev.Message)
}
