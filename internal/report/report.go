package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/indaco/depdrift/internal/drift"
	"github.com/indaco/depdrift/internal/printer"
)

// Formatter renders conflicts and dependency summaries in one Format.
type Formatter struct {
	format Format
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format Format) *Formatter {
	return &Formatter{format: format}
}

/* ------------------------------------------------------------------------- */
/* CONFLICTS                                                                 */
/* ------------------------------------------------------------------------- */

// FormatConflicts renders the conflicts found by an audit.
func (f *Formatter) FormatConflicts(conflicts []drift.Conflict) (string, error) {
	switch f.format {
	case FormatJSON:
		return f.conflictsJSON(conflicts)
	case FormatTable:
		return f.conflictsTable(conflicts), nil
	default:
		return f.conflictsText(conflicts), nil
	}
}

// WriteConflicts renders conflicts to w.
func (f *Formatter) WriteConflicts(w io.Writer, conflicts []drift.Conflict) error {
	out, err := f.FormatConflicts(conflicts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (f *Formatter) conflictsText(conflicts []drift.Conflict) string {
	var sb strings.Builder
	for _, c := range conflicts {
		fmt.Fprintf(&sb, "Found duplicate versions for dependency %s\n", printer.Dependency(c.Name))
		for _, e := range c.Entries {
			fmt.Fprintf(&sb, "%s - %s\n", e.Requester, e.Version)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (f *Formatter) conflictsTable(conflicts []drift.Conflict) string {
	if len(conflicts) == 0 {
		return printer.Success("No version drift found") + "\n"
	}

	rows := make([][]string, 0, len(conflicts))
	for _, c := range conflicts {
		for i, e := range c.Entries {
			name := ""
			if i == 0 {
				name = c.Name
			}
			rows = append(rows, []string{name, e.Requester, displayVersion(e.Version)})
		}
	}

	t := newTable("DEPENDENCY", "REQUESTER", "VERSION").Rows(rows...)
	return t.String() + "\n" + conflictSummary(conflicts) + "\n"
}

func (f *Formatter) conflictsJSON(conflicts []drift.Conflict) (string, error) {
	type jsonEntry struct {
		Requester string `json:"requester"`
		Version   string `json:"version"`
	}

	type jsonConflict struct {
		Name     string      `json:"name"`
		Versions []string    `json:"versions"`
		Entries  []jsonEntry `json:"entries"`
	}

	output := struct {
		Conflicts []jsonConflict `json:"conflicts"`
		Summary   struct {
			ConflictCount int  `json:"conflict_count"`
			Consistent    bool `json:"consistent"`
		} `json:"summary"`
	}{
		Conflicts: make([]jsonConflict, len(conflicts)),
	}

	for i, c := range conflicts {
		entries := make([]jsonEntry, len(c.Entries))
		for j, e := range c.Entries {
			entries[j] = jsonEntry{Requester: e.Requester, Version: e.Version}
		}
		output.Conflicts[i] = jsonConflict{
			Name:     c.Name,
			Versions: c.Versions,
			Entries:  entries,
		}
	}
	output.Summary.ConflictCount = len(conflicts)
	output.Summary.Consistent = len(conflicts) == 0

	return marshal(output)
}

/* ------------------------------------------------------------------------- */
/* DEPENDENCIES                                                              */
/* ------------------------------------------------------------------------- */

// FormatDependencies renders every aggregated dependency.
func (f *Formatter) FormatDependencies(summaries []drift.Summary) (string, error) {
	switch f.format {
	case FormatJSON:
		return f.dependenciesJSON(summaries)
	case FormatTable:
		return f.dependenciesTable(summaries), nil
	default:
		return f.dependenciesText(summaries), nil
	}
}

// WriteDependencies renders summaries to w.
func (f *Formatter) WriteDependencies(w io.Writer, summaries []drift.Summary) error {
	out, err := f.FormatDependencies(summaries)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (f *Formatter) dependenciesText(summaries []drift.Summary) string {
	var sb strings.Builder
	for _, s := range summaries {
		sb.WriteString(printer.Bold(s.Name))
		if s.Conflicted {
			sb.WriteString(" " + printer.Warning("(conflict)"))
		}
		sb.WriteString("\n")
		for _, e := range s.Entries {
			fmt.Fprintf(&sb, "  %s - %s\n", e.Requester, displayVersion(e.Version))
		}
	}
	sb.WriteString(dependencySummary(summaries))
	sb.WriteString("\n")
	return sb.String()
}

func (f *Formatter) dependenciesTable(summaries []drift.Summary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		status := printer.Success("ok")
		if s.Conflicted {
			status = printer.Warning("conflict")
		}
		versions := make([]string, len(s.Versions))
		for i, v := range s.Versions {
			versions[i] = displayVersion(v)
		}
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(len(s.Entries)),
			strings.Join(versions, ", "),
			status,
		})
	}

	t := newTable("DEPENDENCY", "REQUESTS", "VERSIONS", "STATUS").Rows(rows...)
	return t.String() + "\n" + dependencySummary(summaries) + "\n"
}

func (f *Formatter) dependenciesJSON(summaries []drift.Summary) (string, error) {
	type jsonEntry struct {
		Requester string `json:"requester"`
		Version   string `json:"version"`
	}

	type jsonDependency struct {
		Name       string      `json:"name"`
		Versions   []string    `json:"versions"`
		Conflicted bool        `json:"conflicted"`
		Entries    []jsonEntry `json:"entries"`
	}

	output := struct {
		Dependencies []jsonDependency `json:"dependencies"`
	}{
		Dependencies: make([]jsonDependency, len(summaries)),
	}

	for i, s := range summaries {
		entries := make([]jsonEntry, len(s.Entries))
		for j, e := range s.Entries {
			entries[j] = jsonEntry{Requester: e.Requester, Version: e.Version}
		}
		output.Dependencies[i] = jsonDependency{
			Name:       s.Name,
			Versions:   s.Versions,
			Conflicted: s.Conflicted,
			Entries:    entries,
		}
	}

	return marshal(output)
}

/* ------------------------------------------------------------------------- */
/* HELPERS                                                                   */
/* ------------------------------------------------------------------------- */

func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// displayVersion makes the empty version visible in tabular output.
func displayVersion(v string) string {
	if v == "" {
		return `""`
	}
	return v
}

func conflictSummary(conflicts []drift.Conflict) string {
	return printer.Warning(fmt.Sprintf("%d dependency(ies) with version drift", len(conflicts)))
}

func dependencySummary(summaries []drift.Summary) string {
	conflicted := 0
	for _, s := range summaries {
		if s.Conflicted {
			conflicted++
		}
	}
	summary := fmt.Sprintf("%d dependency(ies)", len(summaries))
	if conflicted > 0 {
		return summary + ", " + printer.Warning(fmt.Sprintf("%d with version drift", conflicted))
	}
	return summary + ", " + printer.Success("no version drift")
}
