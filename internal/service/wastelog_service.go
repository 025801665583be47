package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ecotracker/internal/metrics"
	"github.com/mmynk/ecotracker/internal/models"
	"github.com/mmynk/ecotracker/internal/wastelog"
	pb "github.com/mmynk/ecotracker/pkg/proto"
	"github.com/mmynk/ecotracker/pkg/proto/protoconnect"
)

var _ protoconnect.WasteLogServiceHandler = (*WasteLogService)(nil)

// WasteLogService implements the Connect WasteLogService. Every call acts
// on behalf of the profile RequireAuth placed in the context.
type WasteLogService struct {
	log     *wastelog.Log
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewWasteLogService creates a WasteLogService over log. m may be nil.
func NewWasteLogService(log *wastelog.Log, logger *slog.Logger, m *metrics.Metrics) *WasteLogService {
	return &WasteLogService{log: log, logger: logger, metrics: m}
}

// LogItem appends one entry for the caller, dated today.
func (s *WasteLogService) LogItem(ctx context.Context, req *connect.Request[pb.LogItemRequest]) (*connect.Response[pb.LogItemResponse], error) {
	caller, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.log.Append(ctx, caller.ID, models.Category(req.Msg.Category), req.Msg.ItemName, int(req.Msg.Quantity))
	if err != nil {
		s.logger.Warn("LogItem failed", "user_id", caller.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.EntryLogged(string(entry.Category), entry.Quantity)

	s.logger.Info("Entry logged",
		"entry_id", entry.ID,
		"user_id", caller.ID,
		"category", entry.Category,
		"quantity", entry.Quantity,
	)
	return connect.NewResponse(&pb.LogItemResponse{Entry: entryToAPI(*entry)}), nil
}

// ListEntries returns the caller's entries in insertion order.
func (s *WasteLogService) ListEntries(ctx context.Context, req *connect.Request[pb.ListEntriesRequest]) (*connect.Response[pb.ListEntriesResponse], error) {
	caller, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.log.ListByOwner(ctx, caller.ID)
	if err != nil {
		s.logger.Error("ListEntries failed", "user_id", caller.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Debug("Listed entries", "user_id", caller.ID, "count", len(entries))
	return connect.NewResponse(&pb.ListEntriesResponse{Entries: entriesToAPI(entries)}), nil
}

// RecentEntries returns the caller's newest entries.
func (s *WasteLogService) RecentEntries(ctx context.Context, req *connect.Request[pb.RecentEntriesRequest]) (*connect.Response[pb.RecentEntriesResponse], error) {
	caller, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.log.Recent(ctx, caller.ID, int(req.Msg.Limit))
	if err != nil {
		s.logger.Error("RecentEntries failed", "user_id", caller.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.RecentEntriesResponse{Entries: entriesToAPI(entries)}), nil
}
