// Package check implements the check command, which reports every dependency
// requested with more than one distinct version across a workspace.
package check
