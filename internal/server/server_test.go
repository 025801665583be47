package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/ecotracker/internal/auth"
	"github.com/mmynk/ecotracker/internal/metrics"
	"github.com/mmynk/ecotracker/internal/middleware"
	"github.com/mmynk/ecotracker/internal/storage"
	"github.com/mmynk/ecotracker/internal/storage/memory"
	"github.com/mmynk/ecotracker/internal/wastelog"
	pb "github.com/mmynk/ecotracker/pkg/proto"
	"github.com/mmynk/ecotracker/pkg/proto/protoconnect"
)

func newTestServer(t *testing.T, mutate func(*Deps)) *httptest.Server {
	t.Helper()

	repo := storage.NewRepository(memory.New())
	deps := Deps{
		Authenticator: auth.NewCredentialStore(repo),
		Log:           wastelog.New(repo),
		JWT:           auth.NewJWTManager("test-secret", time.Hour),
		Limiter:       middleware.NewRateLimiter(100, 100),
		Metrics:       metrics.New(prometheus.NewRegistry()),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if mutate != nil {
		mutate(&deps)
	}

	srv := httptest.NewServer(New(deps).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestHealthzReportsBackendFailure(t *testing.T) {
	srv := newTestServer(t, func(d *Deps) {
		d.Ping = func(context.Context) error { return errors.New("down") }
	})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestEndToEnd(t *testing.T) {
	srv := newTestServer(t, nil)
	ctx := context.Background()

	authClient := protoconnect.NewAuthServiceClient(http.DefaultClient, srv.URL)
	logClient := protoconnect.NewWasteLogServiceClient(http.DefaultClient, srv.URL)
	analyticsClient := protoconnect.NewAnalyticsServiceClient(http.DefaultClient, srv.URL)

	signup, err := authClient.Signup(ctx, connect.NewRequest(&pb.SignupRequest{
		Name: "Ann", Email: "a@x.io", Password: "p1",
	}))
	require.NoError(t, err)
	token := signup.Msg.Token

	logReq := connect.NewRequest(&pb.LogItemRequest{Category: "Compostable", ItemName: "Peel", Quantity: 3})
	logReq.Header().Set("Authorization", "Bearer "+token)
	logResp, err := logClient.LogItem(ctx, logReq)
	require.NoError(t, err)
	assert.NotEmpty(t, logResp.Header().Get(middleware.RequestIDHeader))

	dashReq := connect.NewRequest(&pb.GetDashboardRequest{})
	dashReq.Header().Set("Authorization", "Bearer "+token)
	dash, err := analyticsClient.GetDashboard(ctx, dashReq)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dash.Msg.Summary.TotalItems)
	assert.Equal(t, int32(100), dash.Msg.Summary.CompostablePercentage)
	require.Len(t, dash.Msg.Recent, 1)
	assert.Equal(t, "Peel", dash.Msg.Recent[0].ItemName)

	_, err = analyticsClient.GetSummary(ctx, connect.NewRequest(&pb.GetSummaryRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `ecotracker_rpc_requests_total{code="ok",procedure="/ecotracker.v1.AuthService/Signup"} 1`)
	assert.Contains(t, string(body), `ecotracker_rpc_requests_total{code="unauthenticated",procedure="/ecotracker.v1.AnalyticsService/GetSummary"} 1`)
}

func TestAuthServiceIsRateLimited(t *testing.T) {
	srv := newTestServer(t, func(d *Deps) {
		d.Limiter = middleware.NewRateLimiter(0.001, 2)
	})
	client := protoconnect.NewAuthServiceClient(http.DefaultClient, srv.URL)

	var last error
	for i := 0; i < 3; i++ {
		_, last = client.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{Email: "x", Password: "y"}))
	}
	assert.Equal(t, connect.CodeResourceExhausted, connect.CodeOf(last))
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	srv := newTestServer(t, func(d *Deps) {
		d.Limiter = middleware.NewRateLimiter(0.001, 2)
	})
	client := protoconnect.NewAuthServiceClient(http.DefaultClient, srv.URL)

	var last error
	for i := 0; i < 3; i++ {
		req := connect.NewRequest(&pb.LoginRequest{Email: "x", Password: "y"})
		req.Header().Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
		_, last = client.Login(context.Background(), req)
	}
	assert.Equal(t, connect.CodeResourceExhausted, connect.CodeOf(last))
}

func TestUnknownProcedure(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/ecotracker.v1.AuthService/Nope", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServesProtobufAndJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, tc := range []struct {
		contentType string
		body        string
	}{
		{"application/proto", ""},
		{"application/json", "{}"},
	} {
		resp, err := http.Post(srv.URL+protoconnect.AuthServiceRestoreSessionProcedure, tc.contentType, strings.NewReader(tc.body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, tc.contentType)
		assert.Equal(t, tc.contentType, resp.Header.Get("Content-Type"))
	}

	client := protoconnect.NewAuthServiceClient(http.DefaultClient, srv.URL, connect.WithGRPCWeb())
	_, err := client.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{Email: "nobody@x.io", Password: "p"}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+protoconnect.AuthServiceLoginProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	srv := newTestServer(t, func(d *Deps) { d.StaticDir = dir })

	get := func(path string) string {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		body, _ := io.ReadAll(resp.Body)
		return string(body)
	}

	assert.Contains(t, get("/"), "dashboard")
	assert.Contains(t, get("/app.js"), "console.log")
	assert.Contains(t, get("/history"), "dashboard")

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRunShutsDownOnCancel(t *testing.T) {
	s := New(Deps{
		JWT:    auth.NewJWTManager("test-secret", time.Hour),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
