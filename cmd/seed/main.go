// Command seed creates an account of any class directly in the server's
// storage. It reads the same configuration as the server.
//
//	seed -s mongo -class superadmin -id root@example.com
//	echo 'secret' | seed -class admin -id boss@example.com -secret-stdin
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/config"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	opts, err := seed.ParseArgs(os.Args[1:])
	if err != nil {
		return err
	}

	cfg := config.LoadConfig()
	logger, err := server.NewLogger(cfg)
	if err != nil {
		return err
	}

	repos, svc, err := server.OpenAccounts(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repos.Close(context.Background())

	secret, err := seed.ReadSecret(opts.SecretFromStdin, os.Stdin, os.Stderr)
	if err != nil {
		return err
	}

	return seed.Run(ctx, svc, opts, secret, os.Stdout)
}
