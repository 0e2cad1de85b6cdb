package main

import (
	"context"
	"log"
	"os"

	"github.com/sispat/patrimonio-cli/internal/buildinfo"
	"github.com/sispat/patrimonio-cli/internal/client/cli"
	"github.com/sispat/patrimonio-cli/internal/client/config"
	"github.com/sispat/patrimonio-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
