package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ecotracker/internal/auth"
	"github.com/mmynk/ecotracker/internal/metrics"
	"github.com/mmynk/ecotracker/internal/middleware"
	"github.com/mmynk/ecotracker/internal/models"
	pb "github.com/mmynk/ecotracker/pkg/proto"
	"github.com/mmynk/ecotracker/pkg/proto/protoconnect"
)

var _ protoconnect.AuthServiceHandler = (*AuthService)(nil)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

// NewAuthService creates a new authentication service. m may be nil.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger, m *metrics.Metrics) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
		metrics:       m,
	}
}

// Signup creates a new user account and logs it in.
func (s *AuthService) Signup(ctx context.Context, req *connect.Request[pb.SignupRequest]) (*connect.Response[pb.SignupResponse], error) {
	s.logger.Info("Signup request", "email", req.Msg.Email)

	profile, err := s.authenticator.Signup(ctx, req.Msg.Name, req.Msg.Email, req.Msg.Password, req.Msg.Community)
	if err != nil {
		s.metrics.Signup(authResult(err))
		s.logger.Warn("Signup failed", "email", req.Msg.Email, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.Signup(metrics.ResultOK)

	token, err := s.jwtManager.Generate(profile)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", profile.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User signed up successfully", "user_id", profile.ID, "email", profile.Email)
	return connect.NewResponse(&pb.SignupResponse{
		User:  userToAPI(profile),
		Token: token,
	}), nil
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	profile, err := s.authenticator.Login(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.metrics.Login(authResult(err))
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.Login(metrics.ResultOK)

	token, err := s.jwtManager.Generate(profile)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", profile.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in successfully", "user_id", profile.ID, "email", profile.Email)
	return connect.NewResponse(&pb.LoginResponse{
		User:  userToAPI(profile),
		Token: token,
	}), nil
}

// Logout clears the persisted session when it belongs to the caller.
// Issued tokens stay valid until they expire; the client discards its copy.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[pb.LogoutRequest]) (*connect.Response[pb.LogoutResponse], error) {
	caller, err := callerProfile(ctx)
	if err != nil {
		s.logger.Warn("Logout rejected", "error", err)
		return nil, err
	}
	s.logger.Info("Logout request", "user_id", caller.ID)

	session, err := s.authenticator.RestoreSession(ctx)
	if err != nil {
		s.logger.Error("Failed to load session", "error", err)
		return nil, toConnectError(err)
	}
	if session == nil || session.ID != caller.ID {
		s.logger.Debug("Caller does not hold the session", "user_id", caller.ID)
		return connect.NewResponse(&pb.LogoutResponse{}), nil
	}

	if err := s.authenticator.Logout(ctx); err != nil {
		s.logger.Error("Logout failed", "user_id", caller.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.LogoutResponse{}), nil
}

// RestoreSession refreshes the caller's token when the persisted session
// belongs to the caller. Anonymous callers and callers who do not hold the
// session get an empty response.
func (s *AuthService) RestoreSession(ctx context.Context, req *connect.Request[pb.RestoreSessionRequest]) (*connect.Response[pb.RestoreSessionResponse], error) {
	caller := middleware.ProfileFromContext(ctx)
	if caller == nil || caller.ID == "" {
		s.logger.Debug("RestoreSession without a token")
		return connect.NewResponse(&pb.RestoreSessionResponse{}), nil
	}

	profile, err := s.authenticator.RestoreSession(ctx)
	if err != nil {
		s.logger.Error("RestoreSession failed", "error", err)
		return nil, toConnectError(err)
	}
	if profile == nil || profile.ID != caller.ID {
		s.logger.Debug("No session to restore", "user_id", caller.ID)
		return connect.NewResponse(&pb.RestoreSessionResponse{}), nil
	}

	token, err := s.jwtManager.Generate(profile)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", profile.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Session restored", "user_id", profile.ID)
	return connect.NewResponse(&pb.RestoreSessionResponse{
		User:  userToAPI(profile),
		Token: token,
	}), nil
}

func authResult(err error) string {
	var verr *models.ValidationError
	if errors.Is(err, auth.ErrEmailExists) || errors.Is(err, auth.ErrInvalidCredentials) || errors.As(err, &verr) {
		return metrics.ResultRejected
	}
	return metrics.ResultError
}
