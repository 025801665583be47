package calculator

import (
	"time"

	"github.com/mmynk/ecotracker/internal/models"
	"github.com/mmynk/ecotracker/internal/wastelog"
)

// Dashboard bundles every derived view the dashboard renders.
type Dashboard struct {
	ReferenceDate string
	Weekly        []DayBucket
	Breakdown     []CategoryTotal
	Summary       Summary
	Trend         Trend
	Recent        []models.Entry
}

// BuildDashboard recomputes all views for ownerID as of ref.
func BuildDashboard(entries []models.Entry, ownerID string, ref time.Time, recentLimit int) Dashboard {
	return Dashboard{
		ReferenceDate: ref.Format(models.DateFormat),
		Weekly:        WeeklySeries(entries, ownerID, ref),
		Breakdown:     CategoryBreakdown(entries, ownerID),
		Summary:       SummaryStats(entries, ownerID),
		Trend:         WeeklyTrend(entries, ownerID, ref),
		Recent:        wastelog.MostRecent(wastelog.FilterByOwner(entries, ownerID), recentLimit),
	}
}
