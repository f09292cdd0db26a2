package initialize

import (
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/indaco/depdrift/internal/config"
	"github.com/indaco/depdrift/internal/printer"
	"github.com/indaco/depdrift/internal/testutils"
	"github.com/urfave/cli/v3"
)

func init() {
	printer.SetNoColor(true)
}

func TestGenerateConfigWithComments(t *testing.T) {
	data, err := GenerateConfigWithComments(config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dataStr := string(data)
	for _, want := range []string{"# depdrift configuration file", "fail-on-conflict", "manifest: Cargo.toml"} {
		if !strings.Contains(dataStr, want) {
			t.Errorf("generated config missing %q:\n%s", want, dataStr)
		}
	}
}

func TestInitCmd(t *testing.T) {
	t.Run("creates config", func(t *testing.T) {
		t.Chdir(t.TempDir())
		appCli := testutils.BuildCLIForTests("Cargo.toml", []*cli.Command{Run()})

		out, err := testutils.RunCLI(t, appCli, []string{"depdrift", "init", "--section", "dependencies", "--section", "dev-dependencies"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Created .depdrift.yaml") {
			t.Errorf("unexpected output %q", out)
		}

		cfg, err := config.LoadConfigFn(config.DefaultConfigFile)
		if err != nil {
			t.Fatalf("generated config does not load: %v", err)
		}
		if !slices.Equal(cfg.Sections, []string{"dependencies", "dev-dependencies"}) {
			t.Errorf("Sections = %v", cfg.Sections)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := os.WriteFile(config.DefaultConfigFile, []byte("format: json\n"), 0600); err != nil {
			t.Fatal(err)
		}
		appCli := testutils.BuildCLIForTests("Cargo.toml", []*cli.Command{Run()})

		_, err := testutils.RunCLI(t, appCli, []string{"depdrift", "init"})
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Fatalf("expected already exists error, got %v", err)
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := os.WriteFile(config.DefaultConfigFile, []byte("format: json\n"), 0600); err != nil {
			t.Fatal(err)
		}
		appCli := testutils.BuildCLIForTests("Cargo.toml", []*cli.Command{Run()})

		if _, err := testutils.RunCLI(t, appCli, []string{"depdrift", "init", "--force"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg, err := config.LoadConfigFn(config.DefaultConfigFile)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Format != "text" {
			t.Errorf("Format = %q, want text", cfg.Format)
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		t.Chdir(t.TempDir())
		appCli := testutils.BuildCLIForTests("Cargo.toml", []*cli.Command{Run()})

		_, err := testutils.RunCLI(t, appCli, []string{"depdrift", "init", "--section", "peer-dependencies"})
		if err == nil {
			t.Fatal("expected error for unknown section")
		}
		if _, statErr := os.Stat(config.DefaultConfigFile); !os.IsNotExist(statErr) {
			t.Error("config file should not be written")
		}
	})
}
