package main

import (
	"context"
	"log"
	"os"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/buildinfo"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/client/cli"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
