package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"rental-marketplace/internal/model"
	repo "rental-marketplace/internal/notification/repository"
)

// CreateNotification stores an unread inbox entry.
func (r *implRepository) CreateNotification(ctx context.Context, opt repo.CreateNotificationOptions) (model.Notification, error) {
	now := time.Now().UTC()
	n := model.Notification{
		ID:          uuid.NewString(),
		RecipientID: opt.RecipientID,
		Kind:        opt.Kind,
		Title:       opt.Title,
		Message:     opt.Message,
		ListingID:   opt.ListingID,
		RequestID:   opt.RequestID,
		CreatedAt:   time.UnixMilli(now.UnixMilli()).UTC(),
	}

	const query = `
		INSERT INTO notifications (id, recipient_id, kind, title, message, listing_id, request_id, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.RecipientID, string(n.Kind), n.Title, n.Message, n.ListingID, n.RequestID, now.UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNotification"), err)
		return model.Notification{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// ListNotifications returns a recipient's inbox newest first.
func (r *implRepository) ListNotifications(ctx context.Context, opt repo.ListNotificationsOptions) ([]model.Notification, error) {
	var b strings.Builder
	b.WriteString(`SELECT id, recipient_id, kind, title, message, listing_id, request_id, is_read, created_at
		FROM notifications WHERE recipient_id = ?`)
	args := []any{opt.RecipientID}
	if opt.UnreadOnly {
		b.WriteString(" AND is_read = 0")
	}
	b.WriteString(" ORDER BY created_at DESC, id")
	if opt.Limit > 0 {
		b.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotifications"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var (
			n         model.Notification
			kind      string
			isRead    int
			createdAt int64
		)
		if err := rows.Scan(&n.ID, &n.RecipientID, &kind, &n.Title, &n.Message, &n.ListingID, &n.RequestID, &isRead, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListNotifications"), err)
			return nil, repo.ErrFailedToList
		}
		n.Kind = model.NotificationKind(kind)
		n.IsRead = isRead != 0
		n.CreatedAt = time.UnixMilli(createdAt).UTC()
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListNotifications"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// CountNotifications counts a recipient's inbox entries.
func (r *implRepository) CountNotifications(ctx context.Context, opt repo.CountNotificationsOptions) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = ?`
	if opt.UnreadOnly {
		query += " AND is_read = 0"
	}
	var count int
	if err := r.db.QueryRowContext(ctx, query, opt.RecipientID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountNotifications"), err)
		return 0, repo.ErrFailedToCount
	}
	return count, nil
}

// MarkRead flags one of the recipient's notifications as read.
func (r *implRepository) MarkRead(ctx context.Context, opt repo.MarkReadOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE id = ? AND recipient_id = ?`,
		opt.ID, opt.RecipientID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkRead"), err)
		return false, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("MarkRead"), err)
		return false, repo.ErrFailedToUpdate
	}
	return affected > 0, nil
}

// MarkAllRead flags every unread notification of the recipient.
func (r *implRepository) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE recipient_id = ? AND is_read = 0`,
		recipientID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkAllRead"), err)
		return 0, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("MarkAllRead"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return int(affected), nil
}
