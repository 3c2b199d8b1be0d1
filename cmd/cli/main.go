package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophbank/internal/buildinfo"
	"github.com/dmitrijs2005/gophbank/internal/cli"
	"github.com/dmitrijs2005/gophbank/internal/config"
	"github.com/dmitrijs2005/gophbank/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	app := cli.NewApp(cfg, logger, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
