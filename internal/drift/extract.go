package drift

import (
	"slices"

	"github.com/indaco/depdrift/internal/workspace"
)

// NormalizeSpec reduces a dependency's declared value to a version string:
// a bare string is returned as is, a table yields its string "version" field,
// and every other shape (git or path tables, arrays, booleans) yields "".
// The empty string still takes part in version comparison.
func NormalizeSpec(spec any) string {
	switch v := spec.(type) {
	case string:
		return v
	case map[string]any:
		if version, ok := v["version"].(string); ok {
			return version
		}
		return ""
	default:
		return ""
	}
}

// ExtractTable turns one dependency table into declarations, sorted by name.
// A nil table yields no declarations.
func ExtractTable(table map[string]any) []Declaration {
	if len(table) == 0 {
		return nil
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	slices.Sort(names)

	decls := make([]Declaration, 0, len(names))
	for _, name := range names {
		decls = append(decls, Declaration{
			Name:    name,
			Version: NormalizeSpec(table[name]),
		})
	}
	return decls
}

// Extract returns the declarations of a member across the given sections, in
// section order. When sections is empty, workspace.DefaultSections is used.
// Absent sections contribute nothing.
func Extract(m *workspace.Member, sections []string) []Declaration {
	if m == nil {
		return nil
	}
	if len(sections) == 0 {
		sections = workspace.DefaultSections
	}

	var decls []Declaration
	for _, section := range sections {
		decls = append(decls, ExtractTable(m.Table(section))...)
	}
	return decls
}

// ExtractMember is Extract wrapped with the member's requester label.
func ExtractMember(m *workspace.Member, sections []string) MemberDeclarations {
	return MemberDeclarations{
		Requester:    m.Path,
		Declarations: Extract(m, sections),
	}
}
