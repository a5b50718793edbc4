package client

import (
	"context"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/api"
)

// Client is the account API as seen by the CLI.
type Client interface {
	Close() error
	Register(ctx context.Context, identifier, secret string) (*api.Account, error)
	Authenticate(ctx context.Context, class, identifier, secret string) (*api.Account, error)
	Ping(ctx context.Context) error
}
