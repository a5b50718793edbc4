package grpc

import (
	"context"
	"errors"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/api"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/common"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.AccountResponse, error) {
	account, err := s.accounts.Register(ctx, req.Identifier, req.Secret)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.AccountResponse{Account: toAPIAccount(account)}, nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *api.AuthenticateRequest) (*api.AccountResponse, error) {
	class, err := models.ParseAccountClass(req.Class)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	account, err := s.accounts.Authenticate(ctx, class, req.Identifier, req.Secret)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.AccountResponse{Account: toAPIAccount(account)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func toAPIAccount(a *models.Account) *api.Account {
	return &api.Account{
		ID:         a.ID,
		Class:      a.Class.String(),
		Identifier: a.Identifier,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// toStatus maps service errors to gRPC statuses. Known kinds keep their
// message so the client can restore them with common.ErrorFromMessage;
// anything else is logged and reported as a bare internal error.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrMissingFields):
		return status.Error(codes.InvalidArgument, common.ErrMissingFields.Error())
	case errors.Is(err, common.ErrInvalidIdentifier):
		return status.Error(codes.InvalidArgument, common.ErrInvalidIdentifier.Error())
	case errors.Is(err, common.ErrWeakSecret):
		return status.Error(codes.InvalidArgument, common.ErrWeakSecret.Error())
	case errors.Is(err, common.ErrUnknownAccountClass):
		return status.Error(codes.InvalidArgument, common.ErrUnknownAccountClass.Error())
	case errors.Is(err, common.ErrDuplicateIdentifier):
		return status.Error(codes.AlreadyExists, common.ErrDuplicateIdentifier.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
