package initialize

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/indaco/depdrift/internal/config"
	"github.com/indaco/depdrift/internal/printer"
	"github.com/indaco/depdrift/internal/workspace"
	"github.com/urfave/cli/v3"
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a .depdrift.yaml configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
			&cli.StringSliceFlag{
				Name:  "section",
				Usage: "Dependency table to audit (repeatable)",
			},
		},
		Action: runInitCmd,
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		path = config.DefaultConfigFile
	}

	cfg := config.Default()
	if cmd.IsSet("manifest") {
		cfg.Manifest = cmd.String("manifest")
	}
	if cmd.IsSet("section") {
		cfg.Sections = cmd.StringSlice("section")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	saver := config.NewConfigSaver(&commentedMarshaler{}, nil)
	if err := saver.SaveTo(cfg, path, cmd.Bool("force")); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s", path))
	return nil
}

// commentedMarshaler renders a config as YAML preceded by a short guide to
// the available keys.
type commentedMarshaler struct{}

func (m *commentedMarshaler) Marshal(v any) ([]byte, error) {
	return GenerateConfigWithComments(v)
}

// GenerateConfigWithComments renders v as YAML with a header describing
// every configuration key.
func GenerateConfigWithComments(v any) ([]byte, error) {
	body, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}

	header := fmt.Sprintf(`# depdrift configuration file
#
# manifest:          workspace root manifest (default %s)
# format:            report format: text, table or json
# jobs:              member manifests read concurrently (0 = one per CPU)
# sections:          dependency tables to audit: %v
# ignore:            dependency names left out of the audit
# fail-on-conflict:  exit non-zero when version drift is found

`, workspace.DefaultManifestName, workspace.KnownSections)

	return append([]byte(header), body...), nil
}
