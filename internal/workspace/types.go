package workspace

import "slices"

// DefaultManifestName is the manifest filename looked up in the workspace root
// and in every member directory.
const DefaultManifestName = "Cargo.toml"

// DefaultSections lists the dependency tables audited when none are configured.
var DefaultSections = []string{"dependencies"}

// KnownSections lists the dependency tables a member manifest may declare.
var KnownSections = []string{"dependencies", "dev-dependencies", "build-dependencies"}

// IsKnownSection reports whether name is a supported dependency table.
func IsKnownSection(name string) bool {
	return slices.Contains(KnownSections, name)
}

// Workspace describes the root manifest of a workspace.
type Workspace struct {
	// Root is the directory containing the root manifest.
	Root string

	// ManifestPath is the path of the root manifest.
	ManifestPath string

	// ManifestName is the base filename used for member manifests.
	ManifestName string

	// Members are the member identifiers (slash-separated paths relative to
	// Root), in declaration order with glob entries expanded in place.
	Members []string

	// Exclude lists the paths removed from Members.
	Exclude []string
}

// MemberManifestPath returns the manifest path for a member identifier.
func (w *Workspace) MemberManifestPath(member string) string {
	return joinMember(w.Root, member, w.ManifestName)
}

// Member is the parsed manifest of one workspace member.
type Member struct {
	// Path is the member identifier as listed by the workspace. It is the
	// requester label used in reports.
	Path string

	// ManifestPath is the path of the member's manifest file.
	ManifestPath string

	// Name is the declared package name.
	Name string

	// Version is the declared package version, or empty when it is not a
	// plain string (e.g. inherited from the workspace).
	Version string

	// Tables maps a dependency section name to its raw table. Sections the
	// manifest does not declare are absent.
	Tables map[string]map[string]any
}

// Table returns the dependency table for section, or nil when absent.
func (m *Member) Table(section string) map[string]any {
	if m == nil || m.Tables == nil {
		return nil
	}
	return m.Tables[section]
}
