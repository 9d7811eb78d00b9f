package usecase

import (
	"strings"

	"rental-marketplace/internal/catalog"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

func (uc *implUseCase) validate(name string, pricePerDay, deposit float64) error {
	if strings.TrimSpace(name) == "" {
		return catalog.ErrNameRequired
	}
	if pricePerDay <= 0 {
		return catalog.ErrInvalidPrice
	}
	if deposit < 0 {
		return catalog.ErrNegativeDeposit
	}
	return nil
}

// coalesce returns newVal when provided, otherwise the existing value.
func coalesce(newVal, existing string) string {
	if v := strings.TrimSpace(newVal); v != "" {
		return v
	}
	return existing
}

func normalisePage(limit, offset int) (int, int) {
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
