package drift

// Declaration is one (name, version) pair stated in a member manifest.
type Declaration struct {
	// Name is the dependency name (the key in the dependency table).
	Name string

	// Version is the normalized version request, possibly empty.
	Version string
}

// MemberDeclarations groups the declarations of one workspace member.
type MemberDeclarations struct {
	// Requester is the member identifier used as the label in reports.
	Requester string

	// Declarations are the member's dependency requests.
	Declarations []Declaration
}

// Entry records that a requester declared a dependency with a version.
type Entry struct {
	Requester string
	Version   string
}

// Conflict is a dependency requested with more than one distinct version.
type Conflict struct {
	// Name is the dependency name.
	Name string

	// Entries lists every declaration in aggregation order.
	Entries []Entry

	// Versions holds the distinct version strings, sorted lexicographically.
	Versions []string
}

// Summary describes how one dependency is requested across the workspace.
type Summary struct {
	Name       string
	Entries    []Entry
	Versions   []string
	Conflicted bool
}

// Requesters returns the requester labels of the summary's entries.
func (s Summary) Requesters() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Requester
	}
	return out
}
