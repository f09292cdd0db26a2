package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/indaco/depdrift/internal/cli"
	"github.com/indaco/depdrift/internal/config"
	"github.com/indaco/depdrift/internal/logging"
	"github.com/indaco/depdrift/internal/printer"
)

// suggester is implemented by errors that carry a remediation hint.
type suggester interface {
	Suggestion() string
}

func main() {
	if err := runCLI(os.Args); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// runCLI builds the application and runs it with args.
func runCLI(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Default()
	log := logging.New(os.Stderr, false)

	app := cli.New(cfg, log)
	return app.Run(ctx, args)
}

func printError(err error) {
	printer.PrintError(err.Error())

	var s suggester
	if errors.As(err, &s) {
		if hint := s.Suggestion(); hint != "" {
			printer.FprintFaint(os.Stderr, hint)
		}
	}
}
