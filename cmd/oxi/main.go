package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/swelham/oxi/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !cli.IsReported(err) {
			cli.RenderError(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
