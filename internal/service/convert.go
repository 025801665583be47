package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/ecotracker/internal/auth"
	"github.com/mmynk/ecotracker/internal/calculator"
	"github.com/mmynk/ecotracker/internal/middleware"
	"github.com/mmynk/ecotracker/internal/models"
	pb "github.com/mmynk/ecotracker/pkg/proto"
)

// toConnectError maps domain errors onto Connect codes. Anything it does not
// recognise is treated as a backend failure.
func toConnectError(err error) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return connect.NewError(connect.CodeUnauthenticated, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// callerProfile returns the profile RequireAuth put in ctx, or an
// Unauthenticated error when there is none.
func callerProfile(ctx context.Context) (*models.Profile, error) {
	p := middleware.ProfileFromContext(ctx)
	if p == nil || p.ID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return p, nil
}

func userToAPI(p *models.Profile) *pb.User {
	if p == nil {
		return nil
	}
	return &pb.User{
		Id:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Community: p.Community,
	}
}

func entryToAPI(e models.Entry) *pb.Entry {
	return &pb.Entry{
		Id:       e.ID,
		Date:     e.Date,
		Category: string(e.Category),
		ItemName: e.ItemName,
		Quantity: int32(e.Quantity),
		UserId:   e.UserID,
	}
}

func entriesToAPI(entries []models.Entry) []*pb.Entry {
	out := make([]*pb.Entry, len(entries))
	for i, e := range entries {
		out[i] = entryToAPI(e)
	}
	return out
}

func daysToAPI(buckets []calculator.DayBucket) []*pb.DayBucket {
	out := make([]*pb.DayBucket, len(buckets))
	for i, b := range buckets {
		out[i] = &pb.DayBucket{
			Date:        b.Date,
			Day:         b.Label,
			Recyclable:  int64(b.Recyclable),
			Compostable: int64(b.Compostable),
			Landfill:    int64(b.Landfill),
			Total:       int64(b.Total),
		}
	}
	return out
}

func breakdownToAPI(totals []calculator.CategoryTotal) []*pb.CategoryTotal {
	out := make([]*pb.CategoryTotal, len(totals))
	for i, c := range totals {
		out[i] = &pb.CategoryTotal{Name: string(c.Category), Value: int64(c.Quantity)}
	}
	return out
}

func summaryToAPI(s calculator.Summary) *pb.Summary {
	return &pb.Summary{
		TotalItems:            int64(s.TotalItems),
		RecyclablePercentage:  int32(s.RecyclablePct),
		CompostablePercentage: int32(s.CompostablePct),
		LandfillPercentage:    int32(s.LandfillPct),
	}
}

func trendToAPI(t calculator.Trend) *pb.Trend {
	return &pb.Trend{
		ThisWeek:        int64(t.ThisWeek),
		LastWeek:        int64(t.LastWeek),
		WeeklyReduction: int32(t.ReductionPct),
	}
}
