package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fortuna/lahman/internal/cli"
)

func main() {
	// Cancel in-flight migrations on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
