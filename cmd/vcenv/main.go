package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	// Registers the locator for Visual Studio 2017 and later.
	_ "github.com/rmocanu/vcenv/pkg/msvc/vswhere"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
