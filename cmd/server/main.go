package main

import (
	"context"
	"log"
	"os"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/buildinfo"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
