package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/ecotracker/internal/metrics"
)

// RequestIDHeader carries the correlation id on requests and responses.
const RequestIDHeader = "X-Request-Id"

// callInfo is shared between LoggingInterceptor and the auth interceptors
// it wraps, so the outer log line can name the user resolved further in.
type callInfo struct {
	requestID string
	userID    string
}

func callInfoFrom(ctx context.Context) *callInfo {
	info, _ := ctx.Value(callInfoKey).(*callInfo)
	return info
}

// noteUser records userID on the enclosing call, if it is being logged.
func noteUser(ctx context.Context, userID string) {
	if info := callInfoFrom(ctx); info != nil {
		info.userID = userID
	}
}

// GetRequestID returns the request id assigned by LoggingInterceptor.
func GetRequestID(ctx context.Context) string {
	if info := callInfoFrom(ctx); info != nil {
		return info.requestID
	}
	return ""
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, user ID, request ID, duration, and any error codes/messages,
// and records the call in m when m is non-nil.
// Install it before the auth interceptors so rejected calls are logged too.
func LoggingInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			requestID := req.Header().Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			info := &callInfo{requestID: requestID, userID: GetUserID(ctx)}
			ctx = context.WithValue(ctx, callInfoKey, info)

			resp, err := next(ctx, req)
			userID := info.userID

			elapsed := time.Since(start)
			duration := elapsed.Milliseconds()
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
				var connectErr *connect.Error
				if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal {
					slog.Warn("RPC error",
						"procedure", procedure,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"user_id", userID,
						"request_id", requestID,
						"duration_ms", duration,
					)
				} else {
					slog.Error("RPC error",
						"procedure", procedure,
						"error", err,
						"user_id", userID,
						"request_id", requestID,
						"duration_ms", duration,
					)
				}
			} else {
				resp.Header().Set(RequestIDHeader, requestID)
				slog.Info("RPC ok",
					"procedure", procedure,
					"user_id", userID,
					"request_id", requestID,
					"duration_ms", duration,
				)
			}
			m.RPC(procedure, code, elapsed)

			return resp, err
		}
	}
}
