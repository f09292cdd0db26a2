// Package deps implements the deps command, which lists every dependency
// declared across a workspace together with its requesters.
package deps
