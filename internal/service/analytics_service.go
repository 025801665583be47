package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/ecotracker/internal/calculator"
	"github.com/mmynk/ecotracker/internal/models"
	"github.com/mmynk/ecotracker/internal/wastelog"
	pb "github.com/mmynk/ecotracker/pkg/proto"
	"github.com/mmynk/ecotracker/pkg/proto/protoconnect"
)

var _ protoconnect.AnalyticsServiceHandler = (*AnalyticsService)(nil)

// AnalyticsService serves the dashboard statistics. Every call reloads the
// whole log and recomputes from scratch.
type AnalyticsService struct {
	log    *wastelog.Log
	logger *slog.Logger
}

// NewAnalyticsService creates an AnalyticsService reading from log.
func NewAnalyticsService(log *wastelog.Log, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{log: log, logger: logger}
}

// GetWeeklySeries returns the caller's last seven days ending at the
// reference date.
func (s *AnalyticsService) GetWeeklySeries(ctx context.Context, req *connect.Request[pb.GetWeeklySeriesRequest]) (*connect.Response[pb.GetWeeklySeriesResponse], error) {
	caller, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	ref, err := s.referenceDate(req.Msg.ReferenceDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.load(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	days := calculator.WeeklySeries(entries, caller.ID, ref)
	return connect.NewResponse(&pb.GetWeeklySeriesResponse{Days: daysToAPI(days)}), nil
}

// GetCategoryBreakdown returns the caller's all-time totals per category.
func (s *AnalyticsService) GetCategoryBreakdown(ctx context.Context, req *connect.Request[pb.GetCategoryBreakdownRequest]) (*connect.Response[pb.GetCategoryBreakdownResponse], error) {
	caller, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.load(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	totals := calculator.CategoryBreakdown(entries, caller.ID)
	return connect.NewResponse(&pb.GetCategoryBreakdownResponse{Categories: breakdownToAPI(totals)}), nil
}

// GetSummary returns the caller's headline statistics.
func (s *AnalyticsService) GetSummary(ctx context.Context, req *connect.Request[pb.GetSummaryRequest]) (*connect.Response[pb.GetSummaryResponse], error) {
	caller, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.load(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	summary := calculator.SummaryStats(entries, caller.ID)
	return connect.NewResponse(&pb.GetSummaryResponse{Summary: summaryToAPI(summary)}), nil
}

// GetDashboard returns every view in one round trip.
func (s *AnalyticsService) GetDashboard(ctx context.Context, req *connect.Request[pb.GetDashboardRequest]) (*connect.Response[pb.GetDashboardResponse], error) {
	caller, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	ref, err := s.referenceDate(req.Msg.ReferenceDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.load(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	d := calculator.BuildDashboard(entries, caller.ID, ref, int(req.Msg.RecentLimit))
	s.logger.Debug("Dashboard computed",
		"user_id", caller.ID,
		"reference_date", d.ReferenceDate,
		"total_items", d.Summary.TotalItems,
	)
	return connect.NewResponse(&pb.GetDashboardResponse{
		ReferenceDate: d.ReferenceDate,
		Days:          daysToAPI(d.Weekly),
		Categories:    breakdownToAPI(d.Breakdown),
		Summary:       summaryToAPI(d.Summary),
		Trend:         trendToAPI(d.Trend),
		Recent:        entriesToAPI(d.Recent),
	}), nil
}

// load fetches the caller's entries. Other owners' entries are dropped here
// so the calculators only ever see one user's data.
func (s *AnalyticsService) load(ctx context.Context, userID string) ([]models.Entry, error) {
	entries, err := s.log.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load entries", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}
	return entries, nil
}

// referenceDate parses a "YYYY-MM-DD" date in the log's time zone. Empty
// means today.
func (s *AnalyticsService) referenceDate(value string) (time.Time, error) {
	if value == "" {
		return s.log.Today(), nil
	}
	t, err := time.ParseInLocation(models.DateFormat, value, s.log.Location())
	if err != nil {
		return time.Time{}, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("referenceDate %q must be YYYY-MM-DD: %w", value, err))
	}
	return t, nil
}
