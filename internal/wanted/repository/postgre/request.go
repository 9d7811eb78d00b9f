package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental-marketplace/internal/model"
	repo "rental-marketplace/internal/wanted/repository"
)

// CreateRequest inserts a new open request.
func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.WantedRequest, error) {
	now := time.Now().UTC()
	row := requestRow{
		ID:          uuid.NewString(),
		RequesterID: opt.RequesterID,
		Category:    opt.Category,
		Size:        opt.Size,
		Color:       opt.Color,
		Occasion:    opt.Occasion,
		Description: opt.Description,
		BudgetMin:   opt.BudgetMin,
		BudgetMax:   opt.BudgetMax,
		NeededFrom:  opt.NeededFrom,
		NeededUntil: opt.NeededUntil,
		Status:      string(model.WantedOpen),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.WantedRequest{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneRequest returns a zero value when the request does not exist.
func (r *implRepository) GetOneRequest(ctx context.Context, opt repo.GetOneRequestOptions) (model.WantedRequest, error) {
	var row requestRow
	err := r.db.WithContext(ctx).Where("id = ?", opt.ID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.WantedRequest{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRequest"), err)
		return model.WantedRequest{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListRequests returns requests newest first.
func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.WantedRequest, error) {
	q := r.db.WithContext(ctx).Model(&requestRow{})
	if opt.RequesterID != "" {
		q = q.Where("requester_id = ?", opt.RequesterID)
	}
	if opt.ExcludeRequesterID != "" {
		q = q.Where("requester_id <> ?", opt.ExcludeRequesterID)
	}
	if opt.Status != "" {
		q = q.Where("status = ?", string(opt.Status))
	}
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit).Offset(opt.Offset)
	}

	var rows []requestRow
	if err := q.Order("created_at DESC, id").Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}

	requests := make([]model.WantedRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, row.toModel())
	}
	return requests, nil
}

// UpdateRequest only touches requests that are still open.
func (r *implRepository) UpdateRequest(ctx context.Context, opt repo.UpdateRequestOptions) (model.WantedRequest, error) {
	res := r.db.WithContext(ctx).Model(&requestRow{}).
		Where("id = ? AND status = ?", opt.ID, string(model.WantedOpen)).
		Updates(map[string]any{
			"category":     opt.Category,
			"size":         opt.Size,
			"color":        opt.Color,
			"occasion":     opt.Occasion,
			"description":  opt.Description,
			"budget_min":   opt.BudgetMin,
			"budget_max":   opt.BudgetMax,
			"needed_from":  opt.NeededFrom,
			"needed_until": opt.NeededUntil,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRequest"), res.Error)
		return model.WantedRequest{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.WantedRequest{}, nil
	}
	return r.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: opt.ID})
}

// UpdateRequestStatus is a compare-and-set on the current status.
func (r *implRepository) UpdateRequestStatus(ctx context.Context, opt repo.UpdateRequestStatusOptions) (model.WantedRequest, error) {
	res := r.db.WithContext(ctx).Model(&requestRow{}).
		Where("id = ? AND status = ?", opt.ID, string(opt.From)).
		Updates(map[string]any{
			"status":               string(opt.To),
			"fulfilled_by_listing": opt.FulfilledByListing,
			"updated_at":           time.Now().UTC(),
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRequestStatus"), res.Error)
		return model.WantedRequest{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.WantedRequest{}, nil
	}
	return r.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: opt.ID})
}
