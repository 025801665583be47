package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/ecotracker/internal/auth"
	"github.com/mmynk/ecotracker/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// profileKey is the context key for the authenticated session profile.
	profileKey contextKey = "profile"
	// callInfoKey is the context key for the per-call logging record.
	callInfoKey contextKey = "call_info"
)

// WithProfile returns a copy of ctx carrying the caller's session profile.
func WithProfile(ctx context.Context, p *models.Profile) context.Context {
	return context.WithValue(ctx, profileKey, p)
}

// ProfileFromContext returns the caller's profile, or nil if the request
// was not authenticated.
func ProfileFromContext(ctx context.Context) *models.Profile {
	p, _ := ctx.Value(profileKey).(*models.Profile)
	return p
}

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	if p := ProfileFromContext(ctx); p != nil {
		return p.ID
	}
	return ""
}

// bearerToken pulls the token out of an "Authorization: Bearer <token>"
// header value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// RequireAuth returns an interceptor that validates JWT tokens and requires authentication.
// The profile carried by the token is added to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			token, err := bearerToken(req.Header().Get("Authorization"))
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			noteUser(ctx, claims.UserID)
			return next(WithProfile(ctx, claims.Profile()), req)
		}
	}
}

// OptionalAuth returns an interceptor that validates JWT tokens if present, but allows
// requests without authentication. The auth service uses it so Logout can log
// the caller when a token is sent.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token, err := bearerToken(req.Header().Get("Authorization")); err == nil {
				// ignore errors - optional auth
				if claims, err := jwtManager.Validate(token); err == nil {
					noteUser(ctx, claims.UserID)
					ctx = WithProfile(ctx, claims.Profile())
				}
			}
			return next(ctx, req)
		}
	}
}
