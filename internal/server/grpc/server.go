// Package grpc exposes the account service over gRPC, together with the
// standard health service.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/api"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/logging"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AccountService is what the transport needs from the service layer.
type AccountService interface {
	Register(ctx context.Context, identifier, secret string) (*models.Account, error)
	Authenticate(ctx context.Context, class models.AccountClass, identifier, secret string) (*models.Account, error)
}

type GRPCServer struct {
	api.UnimplementedAccountServiceServer
	address        string
	accounts       AccountService
	logger         logging.Logger
	requestTimeout time.Duration
}

// NewGRPCServer builds a server for address. A zero requestTimeout leaves
// call deadlines to the client.
func NewGRPCServer(a string, l logging.Logger, accounts AccountService, requestTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:        a,
		logger:         l.With("module", "grpc_server"),
		accounts:       accounts,
		requestTimeout: requestTimeout,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.loggingInterceptor,
		s.timeoutInterceptor,
	))

	api.RegisterAccountServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	stopped := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			hs.Shutdown()
			srv.GracefulStop()
		case <-stopped:
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	err := srv.Serve(lis)
	close(stopped)
	<-done

	return err
}
