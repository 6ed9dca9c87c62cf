package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Xenn-00/signatur-portal/internal/cli"
	"github.com/Xenn-00/signatur-portal/internal/config"
)

func main() {
	config.SetupLogger(os.Getenv("APP_STATE"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(cli.DefaultDeps()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
		stop()
		os.Exit(1)
	}
}
