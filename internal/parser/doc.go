// Package parser reads manifest documents (Cargo.toml and equivalents) into a
// generic key-value Document. TOML, JSON and YAML are supported; the format is
// chosen from the file extension. Failures are reported as typed errors so
// callers can tell a missing file from a malformed one or a schema violation.
package parser
