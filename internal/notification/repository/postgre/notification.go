package postgre

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental-marketplace/internal/model"
	repo "rental-marketplace/internal/notification/repository"
)

type notificationRow struct {
	ID          string `gorm:"primaryKey"`
	RecipientID string
	Kind        string
	Title       string
	Message     string
	ListingID   string
	RequestID   string
	IsRead      bool
	CreatedAt   time.Time
}

func (notificationRow) TableName() string { return "notifications" }

func (row notificationRow) toModel() model.Notification {
	return model.Notification{
		ID:          row.ID,
		RecipientID: row.RecipientID,
		Kind:        model.NotificationKind(row.Kind),
		Title:       row.Title,
		Message:     row.Message,
		ListingID:   row.ListingID,
		RequestID:   row.RequestID,
		IsRead:      row.IsRead,
		CreatedAt:   row.CreatedAt.UTC(),
	}
}

func (r *implRepository) CreateNotification(ctx context.Context, opt repo.CreateNotificationOptions) (model.Notification, error) {
	row := notificationRow{
		ID:          uuid.NewString(),
		RecipientID: opt.RecipientID,
		Kind:        string(opt.Kind),
		Title:       opt.Title,
		Message:     opt.Message,
		ListingID:   opt.ListingID,
		RequestID:   opt.RequestID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNotification"), err)
		return model.Notification{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

func (r *implRepository) ListNotifications(ctx context.Context, opt repo.ListNotificationsOptions) ([]model.Notification, error) {
	q := r.recipientScope(ctx, opt.RecipientID, opt.UnreadOnly)
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit).Offset(opt.Offset)
	}

	var rows []notificationRow
	if err := q.Order("created_at DESC, id").Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotifications"), err)
		return nil, repo.ErrFailedToList
	}
	out := make([]model.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *implRepository) CountNotifications(ctx context.Context, opt repo.CountNotificationsOptions) (int, error) {
	var count int64
	if err := r.recipientScope(ctx, opt.RecipientID, opt.UnreadOnly).Count(&count).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountNotifications"), err)
		return 0, repo.ErrFailedToCount
	}
	return int(count), nil
}

func (r *implRepository) MarkRead(ctx context.Context, opt repo.MarkReadOptions) (bool, error) {
	res := r.db.WithContext(ctx).Model(&notificationRow{}).
		Where("id = ? AND recipient_id = ?", opt.ID, opt.RecipientID).
		Update("is_read", true)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkRead"), res.Error)
		return false, repo.ErrFailedToUpdate
	}
	return res.RowsAffected > 0, nil
}

func (r *implRepository) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	res := r.db.WithContext(ctx).Model(&notificationRow{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkAllRead"), res.Error)
		return 0, repo.ErrFailedToUpdate
	}
	return int(res.RowsAffected), nil
}

func (r *implRepository) recipientScope(ctx context.Context, recipientID string, unreadOnly bool) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&notificationRow{}).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	return q
}
