package calculator

import (
	"math"
	"math/big"
	"time"

	"github.com/mmynk/ecotracker/internal/models"
)

// Summary is the headline statistics card.
type Summary struct {
	TotalItems     int
	RecyclablePct  int
	CompostablePct int
	LandfillPct    int
}

// SummaryStats totals the owner's quantities and expresses each category
// as a percentage of the total, rounded half-up independently. The
// percentages may therefore not add up to exactly 100. With no matching
// entries every field is zero.
func SummaryStats(entries []models.Entry, ownerID string) Summary {
	totals, _ := categoryTotals(entries, ownerID)

	total := 0
	for _, q := range totals {
		total += q
	}

	return Summary{
		TotalItems:     total,
		RecyclablePct:  percent(totals[models.Recyclable], total),
		CompostablePct: percent(totals[models.Compostable], total),
		LandfillPct:    percent(totals[models.Landfill], total),
	}
}

// percent returns round(part/total*100) half-up as (200*part+total) /
// (2*total). The products are taken in big.Int so large quantities cannot
// overflow and values like 12.5 are not lost to float error. Zero when
// total <= 0.
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	t := big.NewInt(int64(total))
	n := new(big.Int).Mul(big.NewInt(int64(part)), big.NewInt(200))
	n.Add(n, t)
	n.Quo(n, new(big.Int).Lsh(t, 1))
	return int(n.Int64())
}

// Trend compares the owner's total for the current 7-day window with the
// window before it.
type Trend struct {
	ThisWeek int
	LastWeek int

	// ReductionPct is how much less was logged this week than last week,
	// as a rounded percentage of last week. Negative values are increases.
	// Zero when nothing was logged last week.
	ReductionPct int
}

// WeeklyTrend computes a week-over-week delta for the windows
// [ref-6, ref] and [ref-13, ref-7].
func WeeklyTrend(entries []models.Entry, ownerID string, ref time.Time) Trend {
	this := windowTotal(entries, ownerID, windowDays(ref, 0))
	last := windowTotal(entries, ownerID, windowDays(ref, 1))

	t := Trend{ThisWeek: this, LastWeek: last}
	if last > 0 {
		t.ReductionPct = int(math.Floor(float64(last-this)*100/float64(last) + 0.5))
	}
	return t
}

func windowTotal(entries []models.Entry, ownerID string, days []time.Time) int {
	in := make(map[string]bool, len(days))
	for _, d := range days {
		in[d.Format(models.DateFormat)] = true
	}
	total := 0
	for _, e := range entries {
		if e.UserID == ownerID && in[e.Date] && e.Category.Valid() {
			total += e.Quantity
		}
	}
	return total
}
