package workspace

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/indaco/depdrift/internal/core"
	"github.com/indaco/depdrift/internal/parser"
)

func newFS(files map[string]string) *core.MockFileSystem {
	fs := core.NewMockFileSystem()
	for path, content := range files {
		fs.SetFile(path, []byte(content))
	}
	return fs
}

/* ------------------------------------------------------------------------- */
/* ROOT MANIFEST                                                             */
/* ------------------------------------------------------------------------- */

func TestLoadWorkspace_Members(t *testing.T) {
	fs := newFS(map[string]string{
		"/ws/Cargo.toml": `[workspace]
members = ["awesome_project", "crates/b"]
`,
	})

	ws, err := NewLoader(fs).LoadWorkspace(context.Background(), "/ws/Cargo.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"awesome_project", "crates/b"}
	if !slices.Equal(ws.Members, want) {
		t.Errorf("Members = %v, want %v", ws.Members, want)
	}
	if ws.Root != "/ws" {
		t.Errorf("Root = %q, want %q", ws.Root, "/ws")
	}
	if ws.ManifestName != "Cargo.toml" {
		t.Errorf("ManifestName = %q, want %q", ws.ManifestName, "Cargo.toml")
	}
	if got := ws.MemberManifestPath("crates/b"); got != "/ws/crates/b/Cargo.toml" {
		t.Errorf("MemberManifestPath() = %q", got)
	}
}

func TestLoadWorkspace_SchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantKey string
	}{
		{
			name: "missing workspace",
			content: `[package]
name = "solo"
`,
			wantKey: "workspace",
		},
		{
			name:    "workspace not a table",
			content: `workspace = "yes"`,
			wantKey: "workspace",
		},
		{
			name: "missing members",
			content: `[workspace]
resolver = "2"
`,
			wantKey: "workspace.members",
		},
		{
			name: "members not an array",
			content: `[workspace]
members = "a"
`,
			wantKey: "workspace.members",
		},
		{
			name: "members with non-string item",
			content: `[workspace]
members = ["a", 1]
`,
			wantKey: "workspace.members",
		},
		{
			name: "empty members",
			content: `[workspace]
members = []
`,
			wantKey: "workspace.members",
		},
		{
			name: "exclude wrong shape",
			content: `[workspace]
members = ["a"]
exclude = true
`,
			wantKey: "workspace.exclude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFS(map[string]string{"/ws/Cargo.toml": tt.content})

			_, err := NewLoader(fs).LoadWorkspace(context.Background(), "/ws/Cargo.toml")

			var se *parser.SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("expected SchemaError, got %T: %v", err, err)
			}
			if se.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", se.Key, tt.wantKey)
			}
		})
	}
}

func TestLoadWorkspace_NotFound(t *testing.T) {
	_, err := NewLoader(core.NewMockFileSystem()).LoadWorkspace(context.Background(), "/ws/Cargo.toml")
	if !parser.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestLoadWorkspace_Malformed(t *testing.T) {
	fs := newFS(map[string]string{"/ws/Cargo.toml": "[workspace"})

	_, err := NewLoader(fs).LoadWorkspace(context.Background(), "/ws/Cargo.toml")

	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
}

/* ------------------------------------------------------------------------- */
/* MEMBER RESOLUTION                                                         */
/* ------------------------------------------------------------------------- */

func TestLoadWorkspace_GlobMembers(t *testing.T) {
	fs := newFS(map[string]string{
		"/ws/Cargo.toml": `[workspace]
members = ["tools/cli", "crates/*"]
exclude = ["crates/legacy"]
`,
		"/ws/tools/cli/Cargo.toml":      "",
		"/ws/crates/zeta/Cargo.toml":    "",
		"/ws/crates/alpha/Cargo.toml":   "",
		"/ws/crates/legacy/Cargo.toml":  "",
		"/ws/crates/docs/README.md":     "",
		"/ws/crates/.hidden/Cargo.toml": "",
	})

	ws, err := NewLoader(fs).LoadWorkspace(context.Background(), "/ws/Cargo.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"tools/cli", "crates/alpha", "crates/zeta"}
	if !slices.Equal(ws.Members, want) {
		t.Errorf("Members = %v, want %v", ws.Members, want)
	}
}

func TestLoadWorkspace_DuplicateAndNormalizedMembers(t *testing.T) {
	fs := newFS(map[string]string{
		"/ws/Cargo.toml": `[workspace]
members = ["./a/", "a", "b"]
`,
	})

	ws, err := NewLoader(fs).LoadWorkspace(context.Background(), "/ws/Cargo.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "b"}
	if !slices.Equal(ws.Members, want) {
		t.Errorf("Members = %v, want %v", ws.Members, want)
	}
}

func TestLoadWorkspace_GlobMatchesNothing(t *testing.T) {
	fs := newFS(map[string]string{
		"/ws/Cargo.toml": `[workspace]
members = ["crates/*"]
`,
	})

	_, err := NewLoader(fs).LoadWorkspace(context.Background(), "/ws/Cargo.toml")
	if !parser.IsSchema(err) {
		t.Fatalf("expected SchemaError, got %T: %v", err, err)
	}
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		member   string
		excludes []string
		want     bool
	}{
		{"crates/a", nil, false},
		{"crates/a", []string{"crates/a"}, true},
		{"crates/a/inner", []string{"crates/a"}, true},
		{"crates/ab", []string{"crates/a"}, false},
		{"crates/old-x", []string{"crates/old-*"}, true},
		{"crates/a", []string{"./crates/a/"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.member, func(t *testing.T) {
			if got := isExcluded(tt.member, tt.excludes); got != tt.want {
				t.Errorf("isExcluded(%q, %v) = %v, want %v", tt.member, tt.excludes, got, tt.want)
			}
		})
	}
}

/* ------------------------------------------------------------------------- */
/* MEMBER MANIFESTS                                                          */
/* ------------------------------------------------------------------------- */

func loadTestWorkspace(t *testing.T, fs core.FileSystem) *Workspace {
	t.Helper()
	ws, err := NewLoader(fs).LoadWorkspace(context.Background(), "/ws/Cargo.toml")
	if err != nil {
		t.Fatalf("LoadWorkspace() unexpected error: %v", err)
	}
	return ws
}

func TestLoadMember(t *testing.T) {
	fs := newFS(map[string]string{
		"/ws/Cargo.toml": `[workspace]
members = ["crate1"]
`,
		"/ws/crate1/Cargo.toml": `[package]
name = "crate1"
version = "0.1.0"

[dependencies]
serde = "1.0"
toml = { version = "0.4", features = ["preserve_order"] }
internal_project = { path = "../internal_project" }

[dev-dependencies]
tempfile = "3"
`,
	})
	ws := loadTestWorkspace(t, fs)

	m, err := NewLoader(fs).LoadMember(context.Background(), ws, "crate1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Path != "crate1" {
		t.Errorf("Path = %q, want %q", m.Path, "crate1")
	}
	if m.Name != "crate1" || m.Version != "0.1.0" {
		t.Errorf("package = %s@%s, want crate1@0.1.0", m.Name, m.Version)
	}
	if len(m.Table("dependencies")) != 3 {
		t.Errorf("len(dependencies) = %d, want 3", len(m.Table("dependencies")))
	}
	if len(m.Table("dev-dependencies")) != 1 {
		t.Errorf("len(dev-dependencies) = %d, want 1", len(m.Table("dev-dependencies")))
	}
	if m.Table("build-dependencies") != nil {
		t.Error("expected no build-dependencies table")
	}
}

func TestLoadMember_NoDependencies(t *testing.T) {
	fs := newFS(map[string]string{
		"/ws/Cargo.toml": `[workspace]
members = ["a"]
`,
		"/ws/a/Cargo.toml": `[package]
name = "a"
version.workspace = true
`,
	})
	ws := loadTestWorkspace(t, fs)

	m, err := NewLoader(fs).LoadMember(context.Background(), ws, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Version != "" {
		t.Errorf("Version = %q, want empty for inherited version", m.Version)
	}
	if m.Table("dependencies") != nil {
		t.Error("expected no dependencies table")
	}
}

func TestLoadMember_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKey  string
		notFound bool
	}{
		{name: "absent manifest", notFound: true},
		{name: "missing package", content: "[dependencies]\nserde = \"1\"\n", wantKey: "package"},
		{name: "package not a table", content: "package = 1\n", wantKey: "package"},
		{name: "missing name", content: "[package]\nversion = \"1.0.0\"\n", wantKey: "package.name"},
		{name: "dependencies not a table", content: "dependencies = 1\n[package]\nname = \"a\"\n", wantKey: "dependencies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := map[string]string{
				"/ws/Cargo.toml": "[workspace]\nmembers = [\"a\"]\n",
			}
			if !tt.notFound {
				files["/ws/a/Cargo.toml"] = tt.content
			}
			fs := newFS(files)
			ws := loadTestWorkspace(t, fs)

			_, err := NewLoader(fs).LoadMember(context.Background(), ws, "a")
			if tt.notFound {
				if !parser.IsNotFound(err) {
					t.Fatalf("expected NotFoundError, got %T: %v", err, err)
				}
				return
			}

			var se *parser.SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("expected SchemaError, got %T: %v", err, err)
			}
			if se.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", se.Key, tt.wantKey)
			}
		})
	}
}
