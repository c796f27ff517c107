// Command cropcast is a terminal client for the cropcast API.
package main

import (
	"context"
	"os"
	"os/signal"

	"cropcast/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
