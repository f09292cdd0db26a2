// Package common holds the flags and the audit runner shared by the check
// and deps commands.
package common

import (
	"context"
	"fmt"
	"slices"

	"github.com/indaco/depdrift/internal/audit"
	"github.com/indaco/depdrift/internal/config"
	"github.com/indaco/depdrift/internal/core"
	"github.com/indaco/depdrift/internal/report"
	"github.com/indaco/depdrift/internal/tui"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// NewFileSystemFn is swapped in tests to run commands against an in-memory tree.
var NewFileSystemFn = func() core.FileSystem {
	return core.NewOSFileSystem()
}

// AuditFlags returns the flags that shape an audit run.
func AuditFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, table, json",
			Value:   "text",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Usage:   "Number of member manifests read concurrently (0 = one per CPU)",
		},
		&cli.StringSliceFlag{
			Name:  "section",
			Usage: "Dependency table to audit (repeatable): dependencies, dev-dependencies, build-dependencies",
		},
		&cli.StringSliceFlag{
			Name:  "ignore",
			Usage: "Dependency name to leave out of the audit (repeatable)",
		},
	}
}

// ResolveConfig returns a copy of cfg with command-line flags applied on top.
// Only flags explicitly set by the user override configured values.
func ResolveConfig(cmd *cli.Command, cfg *config.Config) (*config.Config, error) {
	resolved := config.Default()
	if cfg != nil {
		c := *cfg
		c.Sections = slices.Clone(cfg.Sections)
		c.Ignore = slices.Clone(cfg.Ignore)
		resolved = &c
	}

	if cmd.IsSet("manifest") {
		resolved.Manifest = cmd.String("manifest")
	}
	if cmd.IsSet("format") {
		resolved.Format = cmd.String("format")
	}
	if cmd.IsSet("jobs") {
		resolved.Jobs = int(cmd.Int("jobs"))
	}
	if cmd.IsSet("section") {
		resolved.Sections = cmd.StringSlice("section")
	}
	if cmd.IsSet("ignore") {
		resolved.Ignore = append(resolved.Ignore, cmd.StringSlice("ignore")...)
	}

	if err := resolved.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return resolved, nil
}

// RunAudit runs an audit for cfg, showing a spinner on interactive text runs.
func RunAudit(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*audit.Result, error) {
	svc := audit.NewService(NewFileSystemFn(), cfg, log)

	showSpinner := tui.IsInteractive() && report.ParseFormat(cfg.Format) == report.FormatText

	var result *audit.Result
	err := tui.WithSpinner(ctx, showSpinner, "Reading workspace manifests...", func(ctx context.Context) error {
		var err error
		result, err = svc.Run(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Verbose reports whether debug diagnostics were requested.
func Verbose(log *logrus.Logger) bool {
	return log != nil && log.IsLevelEnabled(logrus.DebugLevel)
}
