package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/ecotracker/internal/auth"
	"github.com/mmynk/ecotracker/internal/metrics"
	"github.com/mmynk/ecotracker/internal/middleware"
	"github.com/mmynk/ecotracker/internal/storage"
	"github.com/mmynk/ecotracker/internal/storage/sqlite"
	"github.com/mmynk/ecotracker/internal/wastelog"
	pb "github.com/mmynk/ecotracker/pkg/proto"
	"github.com/mmynk/ecotracker/pkg/proto/protoconnect"
)

// testNow is a Wednesday.
var testNow = time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type testClients struct {
	auth      protoconnect.AuthServiceClient
	wastelog  protoconnect.WasteLogServiceClient
	analytics protoconnect.AnalyticsServiceClient
	registry  *prometheus.Registry
	clock     *fakeClock
	url       string
}

// setupTestServer creates a test server backed by a temporary SQLite database.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	repo := storage.NewRepository(store, storage.WithCorruptHook(m.CorruptState))

	clock := &fakeClock{now: testNow}
	log := wastelog.New(repo, wastelog.WithClock(clock.Now))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	authPath, authHandler := protoconnect.NewAuthServiceHandler(
		NewAuthService(auth.NewCredentialStore(repo), jwtManager, logger, m),
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)),
	)
	protected := connect.WithInterceptors(middleware.RequireAuth(jwtManager))
	logPath, logHandler := protoconnect.NewWasteLogServiceHandler(NewWasteLogService(log, logger, m), protected)
	analyticsPath, analyticsHandler := protoconnect.NewAnalyticsServiceHandler(NewAnalyticsService(log, logger), protected)

	mux := http.NewServeMux()
	mux.Handle(authPath, authHandler)
	mux.Handle(logPath, logHandler)
	mux.Handle(analyticsPath, analyticsHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testClients{
		auth:      protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		wastelog:  protoconnect.NewWasteLogServiceClient(http.DefaultClient, server.URL),
		analytics: protoconnect.NewAnalyticsServiceClient(http.DefaultClient, server.URL),
		registry:  reg,
		clock:     clock,
		url:       server.URL,
	}
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func signup(t *testing.T, c *testClients, name, email string) string {
	t.Helper()
	resp, err := c.auth.Signup(context.Background(), connect.NewRequest(&pb.SignupRequest{
		Name:     name,
		Email:    email,
		Password: "secret",
	}))
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	return resp.Msg.Token
}

func logItem(t *testing.T, c *testClients, token, category, item string, qty int32) *pb.Entry {
	t.Helper()
	resp, err := c.wastelog.LogItem(context.Background(), withToken(&pb.LogItemRequest{
		Category: category,
		ItemName: item,
		Quantity: qty,
	}, token))
	if err != nil {
		t.Fatalf("LogItem failed: %v", err)
	}
	return resp.Msg.Entry
}

func TestSignup(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	resp, err := c.auth.Signup(ctx, connect.NewRequest(&pb.SignupRequest{
		Name:     "Ann",
		Email:    "a@x.io",
		Password: "p1",
	}))
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if resp.Msg.User.Name != "Ann" || resp.Msg.User.Community != "EcoVille" {
		t.Errorf("unexpected user: %+v", resp.Msg.User)
	}
	if resp.Msg.Token == "" {
		t.Error("expected a token")
	}

	_, err = c.auth.Signup(ctx, connect.NewRequest(&pb.SignupRequest{
		Name:     "Other",
		Email:    "a@x.io",
		Password: "p2",
	}))
	if connect.CodeOf(err) != connect.CodeAlreadyExists {
		t.Errorf("duplicate signup: expected AlreadyExists, got %v", err)
	}

	_, err = c.auth.Signup(ctx, connect.NewRequest(&pb.SignupRequest{Email: "b@x.io"}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("missing fields: expected InvalidArgument, got %v", err)
	}

	expected := `
# HELP ecotracker_signups_total Signup attempts by result.
# TYPE ecotracker_signups_total counter
ecotracker_signups_total{result="ok"} 1
ecotracker_signups_total{result="rejected"} 2
`
	if err := testutil.GatherAndCompare(c.registry, strings.NewReader(expected), "ecotracker_signups_total"); err != nil {
		t.Errorf("unexpected signup metrics: %v", err)
	}
}

func TestLogin(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	signup(t, c, "Ann", "a@x.io")

	resp, err := c.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "a@x.io", Password: "secret"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.User.Email != "a@x.io" || resp.Msg.Token == "" {
		t.Errorf("unexpected login response: %+v", resp.Msg)
	}

	for _, tc := range []struct{ email, password string }{
		{"a@x.io", "wrong"},
		{"nobody@x.io", "secret"},
		{"A@x.io", "secret"},
	} {
		_, err := c.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: tc.email, Password: tc.password}))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("Login(%q, %q): expected Unauthenticated, got %v", tc.email, tc.password, err)
		}
	}
}

func TestRestoreSessionAndLogout(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	resp, err := c.auth.RestoreSession(ctx, connect.NewRequest(&pb.RestoreSessionRequest{}))
	if err != nil {
		t.Fatalf("RestoreSession failed: %v", err)
	}
	if resp.Msg.User != nil {
		t.Errorf("expected no session before signup, got %+v", resp.Msg.User)
	}

	ann := signup(t, c, "Ann", "a@x.io")

	resp, err = c.auth.RestoreSession(ctx, withToken(&pb.RestoreSessionRequest{}, ann))
	if err != nil {
		t.Fatalf("RestoreSession failed: %v", err)
	}
	if resp.Msg.User.GetEmail() != "a@x.io" || resp.Msg.Token == "" {
		t.Errorf("expected restored session, got %+v", resp.Msg)
	}
	if _, err := c.wastelog.ListEntries(ctx, withToken(&pb.ListEntriesRequest{}, resp.Msg.Token)); err != nil {
		t.Errorf("refreshed token rejected: %v", err)
	}

	bob := signup(t, c, "Bob", "b@x.io")

	// Ann no longer holds the session, so there is nothing to refresh and
	// her logout leaves Bob's session alone.
	resp, err = c.auth.RestoreSession(ctx, withToken(&pb.RestoreSessionRequest{}, ann))
	if err != nil {
		t.Fatalf("RestoreSession failed: %v", err)
	}
	if resp.Msg.User != nil || resp.Msg.Token != "" {
		t.Errorf("expected empty response for non-holder, got %+v", resp.Msg)
	}
	if _, err := c.auth.Logout(ctx, withToken(&pb.LogoutRequest{}, ann)); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	resp, err = c.auth.RestoreSession(ctx, withToken(&pb.RestoreSessionRequest{}, bob))
	if err != nil {
		t.Fatalf("RestoreSession failed: %v", err)
	}
	if resp.Msg.User.GetEmail() != "b@x.io" {
		t.Errorf("expected Bob's session to survive, got %+v", resp.Msg)
	}

	if _, err := c.auth.Logout(ctx, withToken(&pb.LogoutRequest{}, bob)); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	// Logging out twice is fine.
	if _, err := c.auth.Logout(ctx, withToken(&pb.LogoutRequest{}, bob)); err != nil {
		t.Fatalf("second Logout failed: %v", err)
	}

	resp, err = c.auth.RestoreSession(ctx, withToken(&pb.RestoreSessionRequest{}, bob))
	if err != nil {
		t.Fatalf("RestoreSession failed: %v", err)
	}
	if resp.Msg.User != nil {
		t.Errorf("expected no session after logout, got %+v", resp.Msg.User)
	}
}

func TestAnonymousCallerCannotTakeOverSession(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	ann := signup(t, c, "Ann", "a@x.io")
	logItem(t, c, ann, "Recyclable", "Secret can", 3)

	resp, err := c.auth.RestoreSession(ctx, connect.NewRequest(&pb.RestoreSessionRequest{}))
	if err != nil {
		t.Fatalf("RestoreSession failed: %v", err)
	}
	if resp.Msg.User != nil || resp.Msg.Token != "" {
		t.Fatalf("anonymous RestoreSession leaked the session: %+v", resp.Msg)
	}

	_, err = c.wastelog.ListEntries(ctx, withToken(&pb.ListEntriesRequest{}, resp.Msg.Token))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("ListEntries with restored token: expected Unauthenticated, got %v", err)
	}

	_, err = c.auth.Logout(ctx, connect.NewRequest(&pb.LogoutRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("anonymous Logout: expected Unauthenticated, got %v", err)
	}
	resp, err = c.auth.RestoreSession(ctx, withToken(&pb.RestoreSessionRequest{}, ann))
	if err != nil {
		t.Fatalf("RestoreSession failed: %v", err)
	}
	if resp.Msg.User.GetEmail() != "a@x.io" {
		t.Errorf("anonymous Logout cleared the session: %+v", resp.Msg)
	}
}

func TestProtectedServicesRequireToken(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	_, err := c.wastelog.LogItem(ctx, connect.NewRequest(&pb.LogItemRequest{Category: "Recyclable", ItemName: "Can", Quantity: 1}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("LogItem without token: expected Unauthenticated, got %v", err)
	}

	_, err = c.analytics.GetSummary(ctx, withToken(&pb.GetSummaryRequest{}, "not-a-jwt"))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("GetSummary with bad token: expected Unauthenticated, got %v", err)
	}
}

func TestLogItem(t *testing.T) {
	c := setupTestServer(t)
	token := signup(t, c, "Ann", "a@x.io")

	entry := logItem(t, c, token, "Recyclable", "Plastic bottle", 2)
	if entry.Date != "2024-03-06" {
		t.Errorf("expected today's date, got %s", entry.Date)
	}
	if entry.Id == "" || entry.UserId == "" {
		t.Errorf("expected id and owner, got %+v", entry)
	}

	_, err := c.wastelog.LogItem(context.Background(), withToken(&pb.LogItemRequest{
		Category: "Hazardous",
		ItemName: "  ",
		Quantity: 0,
	}, token))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected *connect.Error, got %T", err)
	}
	for _, field := range []string{"category", "itemName", "quantity"} {
		if !strings.Contains(connectErr.Message(), field) {
			t.Errorf("error %q does not mention %s", connectErr.Message(), field)
		}
	}

	expected := `
# HELP ecotracker_items_logged_total Item quantities appended, by category.
# TYPE ecotracker_items_logged_total counter
ecotracker_items_logged_total{category="Recyclable"} 2
`
	if err := testutil.GatherAndCompare(c.registry, strings.NewReader(expected), "ecotracker_items_logged_total"); err != nil {
		t.Errorf("unexpected item metrics: %v", err)
	}
}

func TestListAndRecentEntriesAreScopedToCaller(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	ann := signup(t, c, "Ann", "a@x.io")
	bob := signup(t, c, "Bob", "b@x.io")

	logItem(t, c, ann, "Recyclable", "Can", 1)
	logItem(t, c, bob, "Landfill", "Wrapper", 3)
	c.clock.Set(testNow.AddDate(0, 0, 1))
	logItem(t, c, ann, "Compostable", "Peel", 2)

	list, err := c.wastelog.ListEntries(ctx, withToken(&pb.ListEntriesRequest{}, ann))
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(list.Msg.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list.Msg.Entries))
	}
	if list.Msg.Entries[0].ItemName != "Can" || list.Msg.Entries[1].ItemName != "Peel" {
		t.Errorf("expected insertion order, got %+v", list.Msg.Entries)
	}

	recent, err := c.wastelog.RecentEntries(ctx, withToken(&pb.RecentEntriesRequest{Limit: 1}, ann))
	if err != nil {
		t.Fatalf("RecentEntries failed: %v", err)
	}
	if len(recent.Msg.Entries) != 1 || recent.Msg.Entries[0].ItemName != "Peel" {
		t.Errorf("expected newest entry only, got %+v", recent.Msg.Entries)
	}
}

func TestAnalytics(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	token := signup(t, c, "Ann", "a@x.io")
	other := signup(t, c, "Bob", "b@x.io")

	logItem(t, c, token, "Recyclable", "Bottle", 2)
	logItem(t, c, token, "Landfill", "Wrapper", 1)
	logItem(t, c, other, "Compostable", "Peel", 5)

	summary, err := c.analytics.GetSummary(ctx, withToken(&pb.GetSummaryRequest{}, token))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	want := &pb.Summary{TotalItems: 3, RecyclablePercentage: 67, CompostablePercentage: 0, LandfillPercentage: 33}
	if !proto.Equal(summary.Msg.Summary, want) {
		t.Errorf("summary = %v, want %v", summary.Msg.Summary, want)
	}

	breakdown, err := c.analytics.GetCategoryBreakdown(ctx, withToken(&pb.GetCategoryBreakdownRequest{}, token))
	if err != nil {
		t.Fatalf("GetCategoryBreakdown failed: %v", err)
	}
	if len(breakdown.Msg.Categories) != 2 || breakdown.Msg.Categories[0].Name != "Recyclable" || breakdown.Msg.Categories[1].Name != "Landfill" {
		t.Errorf("unexpected breakdown: %+v", breakdown.Msg.Categories)
	}

	weekly, err := c.analytics.GetWeeklySeries(ctx, withToken(&pb.GetWeeklySeriesRequest{}, token))
	if err != nil {
		t.Fatalf("GetWeeklySeries failed: %v", err)
	}
	if len(weekly.Msg.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(weekly.Msg.Days))
	}
	last := weekly.Msg.Days[6]
	if last.Date != "2024-03-06" || last.Day != "Wed" || last.Recyclable != 2 || last.Landfill != 1 || last.Total != 3 {
		t.Errorf("unexpected last bucket: %+v", last)
	}

	// A week later today's entries sit in the previous window.
	weekly, err = c.analytics.GetWeeklySeries(ctx, withToken(&pb.GetWeeklySeriesRequest{ReferenceDate: "2024-03-13"}, token))
	if err != nil {
		t.Fatalf("GetWeeklySeries failed: %v", err)
	}
	for _, d := range weekly.Msg.Days {
		if d.Total != 0 {
			t.Errorf("expected empty week, got %+v", d)
		}
	}

	_, err = c.analytics.GetWeeklySeries(ctx, withToken(&pb.GetWeeklySeriesRequest{ReferenceDate: "06/03/2024"}, token))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("malformed referenceDate: expected InvalidArgument, got %v", err)
	}
}

func TestGetDashboard(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	token := signup(t, c, "Ann", "a@x.io")

	c.clock.Set(testNow.AddDate(0, 0, -7))
	logItem(t, c, token, "Landfill", "Wrapper", 4)
	c.clock.Set(testNow)
	logItem(t, c, token, "Landfill", "Wrapper", 2)

	resp, err := c.analytics.GetDashboard(ctx, withToken(&pb.GetDashboardRequest{RecentLimit: 5}, token))
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	d := resp.Msg
	if d.ReferenceDate != "2024-03-06" {
		t.Errorf("referenceDate = %s", d.ReferenceDate)
	}
	if d.Trend.ThisWeek != 2 || d.Trend.LastWeek != 4 || d.Trend.WeeklyReduction != 50 {
		t.Errorf("unexpected trend: %+v", d.Trend)
	}
	if d.Summary.TotalItems != 6 || d.Summary.LandfillPercentage != 100 {
		t.Errorf("unexpected summary: %+v", d.Summary)
	}
	if len(d.Recent) != 2 || d.Recent[0].Date != "2024-03-06" {
		t.Errorf("unexpected recent entries: %+v", d.Recent)
	}
	if len(d.Days) != 7 || len(d.Categories) != 1 {
		t.Errorf("unexpected days/categories: %d/%d", len(d.Days), len(d.Categories))
	}
}

func TestJSONAndBinaryClientsAgree(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	token := signup(t, c, "Ann", "a@x.io")
	logItem(t, c, token, "Compostable", "Peel", 2)

	jsonClient := protoconnect.NewWasteLogServiceClient(http.DefaultClient, c.url, connect.WithProtoJSON())
	viaJSON, err := jsonClient.ListEntries(ctx, withToken(&pb.ListEntriesRequest{}, token))
	if err != nil {
		t.Fatalf("ListEntries over JSON failed: %v", err)
	}
	viaBinary, err := c.wastelog.ListEntries(ctx, withToken(&pb.ListEntriesRequest{}, token))
	if err != nil {
		t.Fatalf("ListEntries over protobuf failed: %v", err)
	}
	if !proto.Equal(viaJSON.Msg, viaBinary.Msg) {
		t.Errorf("codecs disagree:\n json: %v\n binary: %v", viaJSON.Msg, viaBinary.Msg)
	}
	if len(viaBinary.Msg.Entries) != 1 || viaBinary.Msg.Entries[0].Quantity != 2 {
		t.Errorf("unexpected entries: %v", viaBinary.Msg.Entries)
	}
}
