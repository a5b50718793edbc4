// Package server wires configuration, storage, the account service and the
// gRPC transport together and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/cryptox"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/logging"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/config"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/repositories/repomanager"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/services"

	gs "github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	accounts *services.AccountService
}

// NewLogger returns the JSON stdout logger at the configured level.
func NewLogger(c *config.Config) (logging.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewJSONLogger(os.Stdout, level), nil
}

// OpenAccounts opens the configured storage, runs its migrations and builds
// the account service on top. The caller owns the returned manager and
// must Close it.
func OpenAccounts(ctx context.Context, c *config.Config, logger logging.Logger) (repomanager.RepositoryManager, *services.AccountService, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	hasher, err := cryptox.NewSecretHasher(c.Hasher, c.BcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hasher init error: %w", err)
	}

	repos, err := repomanager.NewRepositoryManager(ctx, c)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close(context.Background())
		return nil, nil, fmt.Errorf("db migration error: %w", err)
	}

	svc, err := services.NewAccountService(repos, hasher,
		services.WithSecretStrength(c.EnforceSecretStrength),
		services.WithLogger(logger.With("module", "accounts")),
	)
	if err != nil {
		_ = repos.Close(context.Background())
		return nil, nil, err
	}

	return repos, svc, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := NewLogger(c)
	if err != nil {
		return nil, err
	}

	repos, svc, err := OpenAccounts(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	return &App{config: c, logger: logger, repos: repos, accounts: svc}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves gRPC until ctx is cancelled or a shutdown signal arrives, then
// closes the storage.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageBackend)

	app.initSignalHandler(ctx, cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accounts, app.config.RequestTimeout)
	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, runErr.Error())
	}

	if err := app.repos.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
