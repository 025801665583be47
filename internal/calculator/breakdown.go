package calculator

import "github.com/mmynk/ecotracker/internal/models"

// CategoryTotal is the all-time quantity logged in one category.
type CategoryTotal struct {
	Category models.Category
	Quantity int
}

// CategoryBreakdown sums the owner's quantities per category across all
// dates. Only categories with at least one entry are returned, in
// models.Categories order.
func CategoryBreakdown(entries []models.Entry, ownerID string) []CategoryTotal {
	totals, seen := categoryTotals(entries, ownerID)

	out := make([]CategoryTotal, 0, len(models.Categories))
	for _, c := range models.Categories {
		if seen[c] {
			out = append(out, CategoryTotal{Category: c, Quantity: totals[c]})
		}
	}
	return out
}

func categoryTotals(entries []models.Entry, ownerID string) (map[models.Category]int, map[models.Category]bool) {
	totals := make(map[models.Category]int, len(models.Categories))
	seen := make(map[models.Category]bool, len(models.Categories))
	for _, e := range entries {
		if e.UserID != ownerID || !e.Category.Valid() {
			continue
		}
		totals[e.Category] += e.Quantity
		seen[e.Category] = true
	}
	return totals, seen
}
