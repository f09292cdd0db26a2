package report

import (
	"bytes"
	"encoding/json"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/indaco/depdrift/internal/drift"
	"github.com/indaco/depdrift/internal/printer"
)

func TestMain(m *testing.M) {
	printer.SetNoColor(true)
	os.Exit(m.Run())
}

func sampleConflicts() []drift.Conflict {
	return []drift.Conflict{
		{
			Name: "toml",
			Entries: []drift.Entry{
				{Requester: "crate1", Version: "0.4"},
				{Requester: "crate2", Version: "0.5"},
			},
			Versions: []string{"0.4", "0.5"},
		},
	}
}

func sampleSummaries() []drift.Summary {
	return []drift.Summary{
		{
			Name:     "internal_project",
			Entries:  []drift.Entry{{Requester: "crate1", Version: ""}},
			Versions: []string{""},
		},
		{
			Name:       "toml",
			Entries:    []drift.Entry{{Requester: "crate1", Version: "0.4"}, {Requester: "crate2", Version: "0.5"}},
			Versions:   []string{"0.4", "0.5"},
			Conflicted: true,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"table", FormatTable},
		{"", FormatText},
		{"invalid", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

/* ------------------------------------------------------------------------- */
/* CONFLICTS                                                                 */
/* ------------------------------------------------------------------------- */

func TestFormatConflicts_TextLayout(t *testing.T) {
	conflicts := append(sampleConflicts(), drift.Conflict{
		Name: "uuid",
		Entries: []drift.Entry{
			{Requester: "a", Version: "1"},
			{Requester: "b", Version: ""},
		},
		Versions: []string{"", "1"},
	})

	var buf bytes.Buffer
	if err := NewFormatter(FormatText).WriteConflicts(&buf, conflicts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Found duplicate versions for dependency toml\n" +
		"crate1 - 0.4\n" +
		"crate2 - 0.5\n" +
		"\n" +
		"Found duplicate versions for dependency uuid\n" +
		"a - 1\n" +
		"b - \n" +
		"\n"
	if buf.String() != want {
		t.Errorf("text output mismatch\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestFormatConflicts_TextEmpty(t *testing.T) {
	out, err := NewFormatter(FormatText).FormatConflicts(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestFormatConflicts_Table(t *testing.T) {
	out, err := NewFormatter(FormatTable).FormatConflicts(sampleConflicts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"DEPENDENCY", "REQUESTER", "VERSION", "toml", "crate1", "0.4", "crate2", "0.5", "1 dependency(ies) with version drift"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "toml") != 1 {
		t.Errorf("dependency name should appear once per conflict:\n%s", out)
	}

	empty, _ := NewFormatter(FormatTable).FormatConflicts(nil)
	if !strings.Contains(empty, "No version drift found") {
		t.Errorf("unexpected empty table output %q", empty)
	}
}

func TestFormatConflicts_JSON(t *testing.T) {
	out, err := NewFormatter(FormatJSON).FormatConflicts(sampleConflicts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Conflicts []struct {
			Name     string   `json:"name"`
			Versions []string `json:"versions"`
			Entries  []struct {
				Requester string `json:"requester"`
				Version   string `json:"version"`
			} `json:"entries"`
		} `json:"conflicts"`
		Summary struct {
			ConflictCount int  `json:"conflict_count"`
			Consistent    bool `json:"consistent"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if len(decoded.Conflicts) != 1 || decoded.Conflicts[0].Name != "toml" {
		t.Fatalf("unexpected conflicts: %+v", decoded.Conflicts)
	}
	if !slices.Equal(decoded.Conflicts[0].Versions, []string{"0.4", "0.5"}) {
		t.Errorf("versions = %v", decoded.Conflicts[0].Versions)
	}
	if decoded.Conflicts[0].Entries[1].Requester != "crate2" {
		t.Errorf("entries = %+v", decoded.Conflicts[0].Entries)
	}
	if decoded.Summary.ConflictCount != 1 || decoded.Summary.Consistent {
		t.Errorf("summary = %+v", decoded.Summary)
	}
}

func TestFormatConflicts_JSONEmpty(t *testing.T) {
	out, err := NewFormatter(FormatJSON).FormatConflicts(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"conflicts": []`) || !strings.Contains(out, `"consistent": true`) {
		t.Errorf("unexpected JSON: %s", out)
	}
}

/* ------------------------------------------------------------------------- */
/* DEPENDENCIES                                                              */
/* ------------------------------------------------------------------------- */

func TestFormatDependencies_Text(t *testing.T) {
	out, err := NewFormatter(FormatText).FormatDependencies(sampleSummaries())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "internal_project\n" +
		"  crate1 - \"\"\n" +
		"toml (conflict)\n" +
		"  crate1 - 0.4\n" +
		"  crate2 - 0.5\n" +
		"2 dependency(ies), 1 with version drift\n"
	if out != want {
		t.Errorf("text output mismatch\ngot:\n%q\nwant:\n%q", out, want)
	}
}

func TestFormatDependencies_Table(t *testing.T) {
	out, err := NewFormatter(FormatTable).FormatDependencies(sampleSummaries())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"REQUESTS", "STATUS", "internal_project", "0.4, 0.5", "conflict", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDependencies_JSON(t *testing.T) {
	out, err := NewFormatter(FormatJSON).FormatDependencies(sampleSummaries())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Dependencies []struct {
			Name       string   `json:"name"`
			Versions   []string `json:"versions"`
			Conflicted bool     `json:"conflicted"`
		} `json:"dependencies"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Dependencies) != 2 {
		t.Fatalf("expected 2 dependencies, got %d", len(decoded.Dependencies))
	}
	if decoded.Dependencies[0].Conflicted || !decoded.Dependencies[1].Conflicted {
		t.Errorf("unexpected conflict flags: %+v", decoded.Dependencies)
	}
}
