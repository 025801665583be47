// Package calculator turns a flat waste log into chart-ready statistics.
// Every function is pure: it filters entries to one owner and recomputes
// its result from scratch.
package calculator

import (
	"time"

	"github.com/mmynk/ecotracker/internal/models"
)

// WindowDays is the length of the rolling window used by WeeklySeries.
const WindowDays = 7

// DayBucket holds one calendar day of the weekly series.
type DayBucket struct {
	Date        string // "2006-01-02"
	Label       string // short weekday, e.g. "Mon"
	Recyclable  int
	Compostable int
	Landfill    int
	Total       int
}

// Quantity returns the bucket's sum for category c.
func (b DayBucket) Quantity(c models.Category) int {
	switch c {
	case models.Recyclable:
		return b.Recyclable
	case models.Compostable:
		return b.Compostable
	case models.Landfill:
		return b.Landfill
	}
	return 0
}

func (b *DayBucket) add(c models.Category, qty int) {
	switch c {
	case models.Recyclable:
		b.Recyclable += qty
	case models.Compostable:
		b.Compostable += qty
	case models.Landfill:
		b.Landfill += qty
	default:
		return
	}
	b.Total += qty
}

// WeeklySeries returns seven buckets, oldest first, covering ref-6 days
// through ref inclusive. Each bucket sums the owner's entries dated exactly
// that day; entries outside the window are ignored.
func WeeklySeries(entries []models.Entry, ownerID string, ref time.Time) []DayBucket {
	days := windowDays(ref, 0)

	buckets := make([]DayBucket, WindowDays)
	index := make(map[string]int, WindowDays)
	for i, day := range days {
		date := day.Format(models.DateFormat)
		buckets[i] = DayBucket{
			Date:  date,
			Label: day.Weekday().String()[:3],
		}
		index[date] = i
	}

	for _, e := range entries {
		if e.UserID != ownerID {
			continue
		}
		if i, ok := index[e.Date]; ok {
			buckets[i].add(e.Category, e.Quantity)
		}
	}

	return buckets
}

// windowDays returns the WindowDays calendar days ending offset weeks
// before ref, oldest first. Dates are built from ref's calendar fields so
// DST transitions never skip or repeat a day.
func windowDays(ref time.Time, weeksBack int) []time.Time {
	y, m, d := ref.Date()
	end := d - weeksBack*WindowDays
	days := make([]time.Time, WindowDays)
	for i := 0; i < WindowDays; i++ {
		days[i] = time.Date(y, m, end-(WindowDays-1-i), 0, 0, 0, 0, time.UTC)
	}
	return days
}
