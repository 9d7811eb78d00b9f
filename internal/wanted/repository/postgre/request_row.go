package postgre

import (
	"time"

	"rental-marketplace/internal/model"
)

type requestRow struct {
	ID                 string `gorm:"primaryKey"`
	RequesterID        string
	Category           string
	Size               string
	Color              string
	Occasion           string
	Description        string
	BudgetMin          *float64
	BudgetMax          *float64
	NeededFrom         *time.Time `gorm:"type:date"`
	NeededUntil        *time.Time `gorm:"type:date"`
	Status             string
	FulfilledByListing string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (requestRow) TableName() string { return "wanted_requests" }

func (row requestRow) toModel() model.WantedRequest {
	return model.WantedRequest{
		ID:                 row.ID,
		RequesterID:        row.RequesterID,
		Category:           row.Category,
		Size:               row.Size,
		Color:              row.Color,
		Occasion:           row.Occasion,
		Description:        row.Description,
		BudgetMin:          row.BudgetMin,
		BudgetMax:          row.BudgetMax,
		NeededFrom:         utcDate(row.NeededFrom),
		NeededUntil:        utcDate(row.NeededUntil),
		Status:             model.WantedStatus(row.Status),
		FulfilledByListing: row.FulfilledByListing,
		CreatedAt:          row.CreatedAt.UTC(),
		UpdatedAt:          row.UpdatedAt.UTC(),
	}
}

func utcDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &v
}
