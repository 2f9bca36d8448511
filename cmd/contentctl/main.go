package main

import (
	"context"
	"os"
	"os/signal"

	"latinaempire/internal/tools/contentctl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := contentctl.NewApp(os.Stdout, os.Stderr).Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
