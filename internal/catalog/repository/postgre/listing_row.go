package postgre

import (
	"time"

	"rental-marketplace/internal/model"
)

type listingRow struct {
	ID              string `gorm:"primaryKey"`
	OwnerID         string
	Name            string
	Description     string
	Category        string
	Size            string
	Color           string
	PricePerDay     float64
	SecurityDeposit float64
	IsAvailable     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (listingRow) TableName() string { return "listings" }

func (row listingRow) toModel() model.Listing {
	return model.Listing{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Name:            row.Name,
		Description:     row.Description,
		Category:        row.Category,
		Size:            row.Size,
		Color:           row.Color,
		PricePerDay:     row.PricePerDay,
		SecurityDeposit: row.SecurityDeposit,
		IsAvailable:     row.IsAvailable,
		CreatedAt:       row.CreatedAt.UTC(),
		UpdatedAt:       row.UpdatedAt.UTC(),
	}
}
