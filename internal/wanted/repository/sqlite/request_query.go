package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"rental-marketplace/internal/model"
	repo "rental-marketplace/internal/wanted/repository"
	"rental-marketplace/pkg/datemath"
)

// buildListQuery builds the WHERE + ORDER + LIMIT + OFFSET clause for ListRequests.
func (r *implRepository) buildListQuery(opt repo.ListRequestsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if opt.RequesterID != "" {
		conditions = append(conditions, "requester_id = ?")
		args = append(args, opt.RequesterID)
	}
	if opt.ExcludeRequesterID != "" {
		conditions = append(conditions, "requester_id <> ?")
		args = append(args, opt.ExcludeRequesterID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY created_at DESC, id")

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			parts = append(parts, "OFFSET ?")
			args = append(args, opt.Offset)
		}
	}

	return strings.Join(parts, " "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (model.WantedRequest, error) {
	var (
		req                     model.WantedRequest
		status                  string
		budgetMin, budgetMax    sql.NullFloat64
		neededFrom, neededUntil sql.NullString
		createdAt, updatedAt    int64
	)
	err := row.Scan(
		&req.ID, &req.RequesterID, &req.Category, &req.Size, &req.Color, &req.Occasion, &req.Description,
		&budgetMin, &budgetMax, &neededFrom, &neededUntil, &status, &req.FulfilledByListing,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.WantedRequest{}, err
	}

	req.Status = model.WantedStatus(status)
	if budgetMin.Valid {
		v := budgetMin.Float64
		req.BudgetMin = &v
	}
	if budgetMax.Valid {
		v := budgetMax.Float64
		req.BudgetMax = &v
	}
	if req.NeededFrom, err = parseNullDate(neededFrom); err != nil {
		return model.WantedRequest{}, err
	}
	if req.NeededUntil, err = parseNullDate(neededUntil); err != nil {
		return model.WantedRequest{}, err
	}
	req.CreatedAt = time.UnixMilli(createdAt).UTC()
	req.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return req, nil
}

func parseNullDate(value sql.NullString) (*time.Time, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	t, err := datemath.ParseISO(value.String)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", value.String, err)
	}
	return &t, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: datemath.Format(*t), Valid: true}
}
