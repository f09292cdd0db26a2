// Package report renders audit results as text, tables or JSON.
//
// The text rendering of conflicts keeps a fixed layout that scripts may
// depend on:
//
//	Found duplicate versions for dependency <name>
//	<requester> - <version>
//	...
//	<blank line>
//
// Color, when enabled, only styles the dependency name.
package report
