// Command recfmt serializes records from a delimited file into the chosen
// format and prints them with a summary table.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjaus/recfmt/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
