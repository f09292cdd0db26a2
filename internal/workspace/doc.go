// Package workspace loads a Cargo-style workspace: the root manifest that
// declares the members, and the per-member manifests that declare package
// identity and dependency tables. Member entries containing glob patterns are
// expanded against the directories that hold a manifest.
package workspace
