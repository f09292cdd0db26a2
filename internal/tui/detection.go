// Package tui decides how depdrift talks to the terminal: whether colors and
// progress indicators are appropriate, and how to show them.
package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs lists environment variables set by common CI providers.
var ciEnvs = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"CIRCLECI",               // CircleCI
	"TRAVIS",                 // Travis CI
	"JENKINS_HOME",           // Jenkins
	"BUILDKITE",              // Buildkite
	"BITBUCKET_BUILD_NUMBER", // Bitbucket Pipelines
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure Pipelines
}

// isTerminalFn is swapped in tests.
var isTerminalFn = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// IsInteractive reports whether progress indicators may be drawn: stdout
// must be a terminal and no CI environment may be detected.
func IsInteractive() bool {
	return IsTTY() && !IsCI()
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return isTerminalFn(os.Stdout)
}

// IsCI reports whether a known CI environment variable is set.
func IsCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// ColorEnabled decides whether styled output should be produced. Colors are
// off when requested by flag, when NO_COLOR is set, or when stdout is not a
// terminal.
func ColorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTTY()
}
