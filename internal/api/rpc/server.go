// Package rpc contains the gRPC token verification server.
//
//go:generate protoc --proto_path=../../.. --go_out=../../.. --go-grpc_out=../../.. --go_opt=module=github.com/hospital-platform/auth-service --go-grpc_opt=module=github.com/hospital-platform/auth-service ../../../proto/auth.proto
package rpc

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hospital-platform/auth-service/internal/auth"
	"github.com/hospital-platform/auth-service/internal/repository"
)

// Server implements AuthService: it turns a raw token string into a
// trust decision for a remote caller. Every internal fault folds into
// the response shape; the handler never returns a transport error.
type Server struct {
	UnimplementedAuthServiceServer
	tokens *auth.TokenManager
	users  repository.UserRepository
	logger *zap.Logger
}

// NewServer creates the verification server.
func NewServer(tokens *auth.TokenManager, users repository.UserRepository, logger *zap.Logger) *Server {
	return &Server{tokens: tokens, users: users, logger: logger}
}

// ValidateTokenAndGetRole verifies the token signature and expiry,
// resolves the subject in the user directory, and maps the stored role
// to its wire representation. A token whose subject no longer resolves
// is reported as invalid even though its signature verifies; dependent
// services key their authorization purely off is_valid and role.
func (s *Server) ValidateTokenAndGetRole(ctx context.Context, req *TokenValidationRequest) (resp *TokenValidationResponse, _ error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic in token validation", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			resp = invalid("error validating token")
		}
	}()

	token := req.GetToken()

	claims, err := s.tokens.ExtractClaims(token)
	if err != nil {
		s.logger.Debug("token parse failed", zap.Error(err))
		return invalid(err.Error()), nil
	}

	if err := s.tokens.Validate(token, claims.Subject); err != nil {
		s.logger.Debug("token validation failed",
			zap.String("username", claims.Subject),
			zap.Error(err),
		)
		return invalid("invalid token"), nil
	}

	user, err := s.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("token subject not found", zap.String("username", claims.Subject))
			return invalid("user not found: " + claims.Subject), nil
		}
		s.logger.Error("user lookup failed", zap.String("username", claims.Subject), zap.Error(err))
		return invalid("user lookup failed"), nil
	}

	return &TokenValidationResponse{
		IsValid: true,
		Role:    wireRole(user.Role),
	}, nil
}

func invalid(message string) *TokenValidationResponse {
	return &TokenValidationResponse{
		IsValid:      false,
		ErrorMessage: message,
	}
}
