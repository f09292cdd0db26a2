// Package testutils holds helpers shared by command tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// BuildCLIForTests wraps commands in a root command carrying the global
// flags the real CLI defines, with output sent to stdout.
func BuildCLIForTests(manifest string, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name: "depdrift",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Value:   manifest,
			},
			&cli.BoolFlag{
				Name: "verbose",
			},
		},
		Commands: commands,
	}
}

// CaptureStdout runs f and returns everything it wrote to os.Stdout.
func CaptureStdout(f func()) (string, error) {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = io.Copy(&buf, r)
		close(done)
	}()

	f()

	_ = w.Close()
	os.Stdout = old
	<-done

	return buf.String(), nil
}

// RunCLI runs root with args and returns what it wrote to stdout.
func RunCLI(t *testing.T, root *cli.Command, args []string) (string, error) {
	t.Helper()
	var runErr error
	out, err := CaptureStdout(func() {
		runErr = root.Run(context.Background(), args)
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}
	return out, runErr
}

// WriteWorkspace lays files out under a fresh temporary directory and
// returns its path. Keys are slash-separated relative paths.
func WriteWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// CargoFixture is a two-member workspace where "toml" drifts, "serde" is
// requested twice with the same version, and "internal_project" once.
var CargoFixture = map[string]string{
	"Cargo.toml": `[workspace]
members = ["crate1", "crate2"]
`,
	"crate1/Cargo.toml": `[package]
name = "crate1"
version = "0.1.0"

[dependencies]
serde = "1.0"
toml = "0.4"
internal_project = { path = "../internal_project" }
`,
	"crate2/Cargo.toml": `[package]
name = "crate2"
version = "0.1.0"

[dependencies]
serde = { version = "1.0", features = ["derive"] }
toml = { version = "0.5" }
`,
}
