package drift

import "slices"

// DependencyMap maps dependency names to the ordered list of declarations
// requesting them. Names iterate in first-seen order.
type DependencyMap struct {
	names   []string
	entries map[string][]Entry
}

// NewDependencyMap returns an empty DependencyMap.
func NewDependencyMap() *DependencyMap {
	return &DependencyMap{entries: make(map[string][]Entry)}
}

// Add appends an entry for name, creating the list if absent.
func (dm *DependencyMap) Add(name string, e Entry) {
	if _, ok := dm.entries[name]; !ok {
		dm.names = append(dm.names, name)
	}
	dm.entries[name] = append(dm.entries[name], e)
}

// AddMember appends one entry per declaration of md.
func (dm *DependencyMap) AddMember(md MemberDeclarations) {
	for _, d := range md.Declarations {
		dm.Add(d.Name, Entry{Requester: md.Requester, Version: d.Version})
	}
}

// Get returns a copy of the entries recorded for name.
func (dm *DependencyMap) Get(name string) ([]Entry, bool) {
	entries, ok := dm.entries[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(entries), true
}

// Names returns the dependency names in first-seen order.
func (dm *DependencyMap) Names() []string {
	return slices.Clone(dm.names)
}

// Len returns the number of distinct dependency names.
func (dm *DependencyMap) Len() int {
	return len(dm.names)
}

// Aggregate folds the members' declarations into a new DependencyMap.
// Every declaration produces exactly one entry; nothing is deduplicated.
func Aggregate(members []MemberDeclarations) *DependencyMap {
	dm := NewDependencyMap()
	for _, md := range members {
		dm.AddMember(md)
	}
	return dm
}

// Merge concatenates the per-name entry lists of parts, in argument order.
// Nil parts are skipped. The inputs are not modified.
func Merge(parts ...*DependencyMap) *DependencyMap {
	merged := NewDependencyMap()
	for _, part := range parts {
		if part == nil {
			continue
		}
		for _, name := range part.names {
			for _, e := range part.entries[name] {
				merged.Add(name, e)
			}
		}
	}
	return merged
}
