package deps

import (
	"context"
	"os"

	"github.com/indaco/depdrift/internal/commands/common"
	"github.com/indaco/depdrift/internal/config"
	"github.com/indaco/depdrift/internal/drift"
	"github.com/indaco/depdrift/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Run returns the "deps" command.
func Run(cfg *config.Config, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:    "deps",
		Aliases: []string{"list"},
		Usage:   "List every dependency with its requesters and versions",
		Flags: append(common.AuditFlags(),
			&cli.BoolFlag{
				Name:  "conflicts-only",
				Usage: "Only list dependencies with version drift",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDepsCmd(ctx, cmd, cfg, log)
		},
	}
}

func runDepsCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config, log *logrus.Logger) error {
	opts, err := common.ResolveConfig(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := common.RunAudit(ctx, opts, log)
	if err != nil {
		return err
	}

	summaries := drift.Summarize(result.Map)
	if cmd.Bool("conflicts-only") {
		summaries = conflictedOnly(summaries)
	}

	formatter := report.NewFormatter(report.ParseFormat(opts.Format))
	return formatter.WriteDependencies(os.Stdout, summaries)
}

func conflictedOnly(summaries []drift.Summary) []drift.Summary {
	var out []drift.Summary
	for _, s := range summaries {
		if s.Conflicted {
			out = append(out, s)
		}
	}
	return out
}
