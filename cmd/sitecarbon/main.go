package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/sitecarbon/internal/cli"
	"github.com/rshade/sitecarbon/pkg/version"
)

func main() {
	if err := run(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}
