package cli

import (
	"context"
	"fmt"

	"github.com/indaco/depdrift/internal/commands/check"
	"github.com/indaco/depdrift/internal/commands/deps"
	"github.com/indaco/depdrift/internal/commands/initialize"
	"github.com/indaco/depdrift/internal/config"
	"github.com/indaco/depdrift/internal/printer"
	"github.com/indaco/depdrift/internal/tui"
	"github.com/indaco/depdrift/internal/version"
	"github.com/sirupsen/logrus"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command, configuring all subcommands
// and flags for the depdrift cli. cfg is filled from the configuration file
// before any command runs; log is raised to debug level by --verbose.
func New(cfg *config.Config, log *logrus.Logger) *urfavecli.Command {
	var (
		noColorFlag bool
		verboseFlag bool
	)

	return &urfavecli.Command{
		Name:                  "depdrift",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Audit a Cargo workspace for dependency version drift",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "manifest",
				Aliases:     []string{"m"},
				Usage:       "Path to the workspace root manifest",
				Value:       cfg.Manifest,
				DefaultText: "Cargo.toml",
			},
			&urfavecli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration file",
				Value:   config.DefaultConfigFile,
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
			&urfavecli.BoolFlag{
				Name:        "verbose",
				Usage:       "Print debug diagnostics to stderr",
				Destination: &verboseFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(!tui.ColorEnabled(noColorFlag))
			if verboseFlag {
				log.SetLevel(logrus.DebugLevel)
			}

			loaded, err := config.LoadConfigFn(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			*cfg = *loaded

			log.WithField("config", cmd.String("config")).Debug("configuration loaded")
			return ctx, nil
		},
		Action: check.Action(cfg, log),
		Commands: []*urfavecli.Command{
			check.Run(cfg, log),
			deps.Run(cfg, log),
			initialize.Run(),
		},
	}
}
