package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/client/client"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAccountClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}
