package store

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// CanonicalCategories is the category set the dashboard chart knows colors
// for. Seed data and imports are normalized against it.
var CanonicalCategories = []string{
	"Income",
	"Groceries",
	"Food & Drinks",
	"Car & Transportation",
	"Bills & Utilities",
	"Entertainment",
	"Shopping",
	"Health",
	"Transfers",
}

// maxCategoryDistance is the largest edit distance still considered the same
// category. Two covers the common typo and pluralisation cases without
// collapsing distinct categories.
const maxCategoryDistance = 2

// NormalizeCategory maps a free-text category label onto the canonical set.
// Matching is case-insensitive and tolerates small edit distances; labels
// that match nothing come back unchanged so they still show up in the chart
// as their own bucket.
func NormalizeCategory(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	lower := strings.ToLower(label)

	best := ""
	bestDist := maxCategoryDistance + 1
	for _, canon := range CanonicalCategories {
		canonLower := strings.ToLower(canon)
		if lower == canonLower {
			return canon
		}
		if d := levenshtein.ComputeDistance(lower, canonLower); d < bestDist {
			best = canon
			bestDist = d
		}
	}
	if best != "" && bestDist <= maxCategoryDistance {
		return best
	}
	return label
}
