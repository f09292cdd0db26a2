package drift

import (
	"slices"
	"strings"
)

// Detect returns one Conflict per dependency requested with more than one
// distinct version string, sorted by dependency name.
func Detect(dm *DependencyMap) []Conflict {
	if dm == nil {
		return nil
	}

	var conflicts []Conflict
	for _, name := range dm.names {
		entries := dm.entries[name]

		// A single request can never disagree with itself.
		if len(entries) < 2 {
			continue
		}

		versions := DistinctVersions(entries)
		if len(versions) <= 1 {
			continue
		}

		conflicts = append(conflicts, Conflict{
			Name:     name,
			Entries:  slices.Clone(entries),
			Versions: versions,
		})
	}

	slices.SortFunc(conflicts, func(a, b Conflict) int {
		return strings.Compare(a.Name, b.Name)
	})

	return conflicts
}

// DistinctVersions returns the versions of entries deduplicated by exact
// string equality and sorted lexicographically.
func DistinctVersions(entries []Entry) []string {
	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		versions = append(versions, e.Version)
	}
	slices.Sort(versions)
	return slices.Compact(versions)
}

// IsConsistent returns true if no dependency in dm is requested with
// differing versions.
func IsConsistent(dm *DependencyMap) bool {
	return len(Detect(dm)) == 0
}

// Summarize describes every dependency in dm, sorted by name.
func Summarize(dm *DependencyMap) []Summary {
	if dm == nil {
		return nil
	}

	summaries := make([]Summary, 0, len(dm.names))
	for _, name := range dm.names {
		entries := dm.entries[name]
		versions := DistinctVersions(entries)
		summaries = append(summaries, Summary{
			Name:       name,
			Entries:    slices.Clone(entries),
			Versions:   versions,
			Conflicted: len(versions) > 1,
		})
	}

	slices.SortFunc(summaries, func(a, b Summary) int {
		return strings.Compare(a.Name, b.Name)
	})

	return summaries
}
