package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rental-marketplace/internal/model"
	repo "rental-marketplace/internal/wanted/repository"
)

const requestColumns = `id, requester_id, category, size, color, occasion, description,
	budget_min, budget_max, needed_from, needed_until, status, fulfilled_by_listing,
	created_at, updated_at`

// CreateRequest inserts a new open request.
func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.WantedRequest, error) {
	now := time.Now().UTC()
	req := model.WantedRequest{
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
		Status:      model.WantedOpen,
		CreatedAt:   now.Truncate(time.Millisecond),
		UpdatedAt:   now.Truncate(time.Millisecond),
	}

	const query = `INSERT INTO wanted_requests (` + requestColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.RequesterID, req.Category, req.Size, req.Color, req.Occasion, req.Description,
		nullFloat(req.BudgetMin), nullFloat(req.BudgetMax), nullDate(req.NeededFrom), nullDate(req.NeededUntil),
		string(req.Status), req.FulfilledByListing, now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.WantedRequest{}, repo.ErrFailedToInsert
	}
	return req, nil
}

// GetOneRequest returns a zero value when the request does not exist.
func (r *implRepository) GetOneRequest(ctx context.Context, opt repo.GetOneRequestOptions) (model.WantedRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM wanted_requests WHERE id = ? LIMIT 1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.WantedRequest{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRequest"), err)
		return model.WantedRequest{}, repo.ErrFailedToGet
	}
	return req, nil
}

// ListRequests returns requests newest first.
func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.WantedRequest, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM wanted_requests %s`, requestColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var requests []model.WantedRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRequests"), err)
			return nil, repo.ErrFailedToList
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	return requests, nil
}

// UpdateRequest only touches requests that are still open.
func (r *implRepository) UpdateRequest(ctx context.Context, opt repo.UpdateRequestOptions) (model.WantedRequest, error) {
	const query = `
		UPDATE wanted_requests
		SET category = ?, size = ?, color = ?, occasion = ?, description = ?,
			budget_min = ?, budget_max = ?, needed_from = ?, needed_until = ?, updated_at = ?
		WHERE id = ? AND status = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Category, opt.Size, opt.Color, opt.Occasion, opt.Description,
		nullFloat(opt.BudgetMin), nullFloat(opt.BudgetMax), nullDate(opt.NeededFrom), nullDate(opt.NeededUntil),
		time.Now().UTC().UnixMilli(), opt.ID, string(model.WantedOpen),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRequest"), err)
		return model.WantedRequest{}, repo.ErrFailedToUpdate
	}
	return r.reloadIfAffected(ctx, res, opt.ID, "UpdateRequest")
}

// UpdateRequestStatus is a compare-and-set on the current status.
func (r *implRepository) UpdateRequestStatus(ctx context.Context, opt repo.UpdateRequestStatusOptions) (model.WantedRequest, error) {
	const query = `
		UPDATE wanted_requests
		SET status = ?, fulfilled_by_listing = ?, updated_at = ?
		WHERE id = ? AND status = ?`

	res, err := r.db.ExecContext(ctx, query,
		string(opt.To), opt.FulfilledByListing, time.Now().UTC().UnixMilli(), opt.ID, string(opt.From),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRequestStatus"), err)
		return model.WantedRequest{}, repo.ErrFailedToUpdate
	}
	return r.reloadIfAffected(ctx, res, opt.ID, "UpdateRequestStatus")
}

func (r *implRepository) reloadIfAffected(ctx context.Context, res sql.Result, id, method string) (model.WantedRequest, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn(method), err)
		return model.WantedRequest{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return model.WantedRequest{}, nil
	}
	return r.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: id})
}
