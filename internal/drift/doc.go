// Package drift is the dependency-drift engine. It extracts dependency
// declarations from member manifests, aggregates them into a DependencyMap
// keyed by dependency name, and detects names requested with more than one
// distinct version string.
//
// Versions are compared as literal strings: "1.2" and "1.2.0" are different
// requests, and declarations without a usable version (git or path only, or
// inherited from the workspace) all normalize to the empty string.
package drift
