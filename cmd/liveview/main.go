package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/sonnes/liveview/errext"
)

func main() {
	// Optional .env in the working directory, read before flags so it can
	// feed their env sources.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newApp(os.Stdout, os.Stderr).rootCmd().Run(ctx, os.Args)
	if err == nil {
		return
	}
	// The launcher has already printed failures that carry a stack trace.
	if !errext.IsException(err) {
		log.Error(err)
	}
	stop()
	os.Exit(int(errext.ExitCodeOf(err)))
}
