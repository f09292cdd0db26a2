package check

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/depdrift/internal/commands/common"
	"github.com/indaco/depdrift/internal/config"
	"github.com/indaco/depdrift/internal/printer"
	"github.com/indaco/depdrift/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// ErrDriftFound is returned when --fail-on-conflict is set and conflicts exist.
var ErrDriftFound = errors.New("version drift found")

// Run returns the "check" command.
func Run(cfg *config.Config, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:    "check",
		Aliases: []string{"audit"},
		Usage:   "Report dependencies requested with differing versions",
		UsageText: `depdrift check [options]

Reads the workspace root manifest, every member manifest listed in
workspace.members, and prints each dependency whose members request
textually different version strings.`,
		Flags: append(common.AuditFlags(),
			&cli.BoolFlag{
				Name:  "fail-on-conflict",
				Usage: "Exit with a non-zero status when version drift is found",
			},
		),
		Action: Action(cfg, log),
	}
}

// Action returns the check action. The root command reuses it so that
// running depdrift without a command performs a check.
func Action(cfg *config.Config, log *logrus.Logger) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return runCheckCmd(ctx, cmd, cfg, log)
	}
}

func runCheckCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config, log *logrus.Logger) error {
	opts, err := common.ResolveConfig(cmd, cfg)
	if err != nil {
		return err
	}
	if cmd.IsSet("fail-on-conflict") {
		opts.FailOnConflict = cmd.Bool("fail-on-conflict")
	}

	result, err := common.RunAudit(ctx, opts, log)
	if err != nil {
		return err
	}

	formatter := report.NewFormatter(report.ParseFormat(opts.Format))
	if err := formatter.WriteConflicts(os.Stdout, result.Conflicts); err != nil {
		return err
	}

	if common.Verbose(log) {
		printer.FprintFaint(os.Stderr, fmt.Sprintf("Checked %d member(s), %d dependency(ies), %d with version drift",
			len(result.Members), result.Map.Len(), len(result.Conflicts)))
	}

	if opts.FailOnConflict && result.HasConflicts() {
		return fmt.Errorf("%w in %d dependency(ies)", ErrDriftFound, len(result.Conflicts))
	}

	return nil
}
