package usecase

import (
	"fmt"
	"strings"
	"time"

	"rental-marketplace/internal/wanted"
	repo "rental-marketplace/internal/wanted/repository"
	"rental-marketplace/pkg/datemath"
)

// validate checks the attributes shared by create and update.
// The budget floor is only ever checked here, never by the matcher.
func (uc *implUseCase) validate(category string, budgetMin, budgetMax *float64, from, until *time.Time) error {
	if strings.TrimSpace(category) == "" {
		return wanted.ErrCategoryRequired
	}
	if (budgetMin != nil && *budgetMin < 0) || (budgetMax != nil && *budgetMax < 0) {
		return wanted.ErrNegativeBudget
	}
	if budgetMin != nil && budgetMax != nil && *budgetMin > *budgetMax {
		return wanted.ErrInvalidBudget
	}
	if from != nil && until != nil && until.Before(*from) {
		return wanted.ErrInvalidWindow
	}
	return nil
}

// coalesce returns newVal when provided, otherwise the existing value.
// applyClears resets the named optional fields on opt.
func applyClears(opt *repo.UpdateRequestOptions, fields []string) error {
	for _, field := range fields {
		switch field {
		case wanted.FieldSize:
			opt.Size = ""
		case wanted.FieldColor:
			opt.Color = ""
		case wanted.FieldOccasion:
			opt.Occasion = ""
		case wanted.FieldDescription:
			opt.Description = ""
		case wanted.FieldBudgetMin:
			opt.BudgetMin = nil
		case wanted.FieldBudgetMax:
			opt.BudgetMax = nil
		case wanted.FieldNeededFrom:
			opt.NeededFrom = nil
		case wanted.FieldNeededUntil:
			opt.NeededUntil = nil
		default:
			return fmt.Errorf("%w: %q", wanted.ErrUnknownField, field)
		}
	}
	return nil
}

func (uc *implUseCase) coalesce(newVal, existing string) string {
	if strings.TrimSpace(newVal) != "" {
		return strings.TrimSpace(newVal)
	}
	return existing
}

func coalesceFloat(newVal, existing *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return existing
}

func coalesceDate(newVal, existing *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return existing
}

func truncatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := datemath.Truncate(*t)
	return &v
}
