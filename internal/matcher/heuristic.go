package matcher

import (
	"strings"

	"golang.org/x/text/cases"

	"rental-marketplace/internal/model"
)

// Matches applies the request/listing heuristic. Every predicate is skipped
// when the request (or, where noted, the listing) leaves the field unset:
//
//  1. category: case-insensitive substring either way against the listing
//     name or the listing category. Always evaluated; categories are required.
//  2. size: when both are set, case-insensitive equality.
//  3. color: when both are set, the request color must be contained in the
//     listing color. One-directional: "red" matches "dark red", not the reverse.
//  4. budget: when a ceiling is set, the daily price must not exceed it.
//     The floor is only validated when the request is created.
//
// The returned Reason is the first failing predicate.
func Matches(req model.WantedRequest, listing model.Listing) (bool, Reason) {
	category := fold(req.Category)
	if category == "" {
		return false, ReasonCategory
	}
	if !containsEither(category, fold(listing.Name)) && !containsEither(category, fold(listing.Category)) {
		return false, ReasonCategory
	}

	if reqSize, listingSize := fold(req.Size), fold(listing.Size); reqSize != "" && listingSize != "" {
		if reqSize != listingSize {
			return false, ReasonSize
		}
	}

	if reqColor, listingColor := fold(req.Color), fold(listing.Color); reqColor != "" && listingColor != "" {
		if !strings.Contains(listingColor, reqColor) {
			return false, ReasonColor
		}
	}

	if req.BudgetMax != nil && listing.PricePerDay > *req.BudgetMax {
		return false, ReasonBudget
	}

	return true, ReasonNone
}

// containsEither reports whether either non-empty string contains the other.
// An empty listing attribute never matches.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(b, a) || strings.Contains(a, b)
}

// fold trims and case-folds s. A Caser is not safe for concurrent use, so
// each call builds its own.
func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}
