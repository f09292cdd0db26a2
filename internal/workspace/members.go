package workspace

import (
	"context"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// resolveMembers expands glob entries, drops excluded paths and removes
// duplicates while keeping declaration order. Literal entries are kept even
// when their directory does not exist so that reading them fails loudly.
func (l *Loader) resolveMembers(ctx context.Context, ws *Workspace, entries []string) ([]string, error) {
	seen := make(map[string]bool, len(entries))
	resolved := make([]string, 0, len(entries))

	add := func(member string) {
		if seen[member] || isExcluded(member, ws.Exclude) {
			return
		}
		seen[member] = true
		resolved = append(resolved, member)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry = normalizeMember(entry)
		if !hasMeta(entry) {
			add(entry)
			continue
		}

		matches, err := l.expandGlob(ctx, ws, entry)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			add(m)
		}
	}

	return resolved, nil
}

// expandGlob returns the sorted member directories matching pattern that
// contain a manifest.
func (l *Loader) expandGlob(ctx context.Context, ws *Workspace, pattern string) ([]string, error) {
	candidates := []string{"."}

	for segment := range strings.SplitSeq(pattern, "/") {
		var next []string
		for _, dir := range candidates {
			if !hasMeta(segment) {
				next = append(next, path.Join(dir, segment))
				continue
			}

			entries, err := l.fs.ReadDir(ctx, filepath.Join(ws.Root, filepath.FromSlash(dir)))
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				// Skip directories we can't read
				continue
			}
			for _, entry := range entries {
				name := entry.Name()
				if !entry.IsDir() || shouldSkipDir(name, segment) {
					continue
				}
				if matched, _ := path.Match(segment, name); matched {
					next = append(next, path.Join(dir, name))
				}
			}
		}
		candidates = next
	}

	var members []string
	for _, dir := range candidates {
		if _, err := l.fs.Stat(ctx, joinMember(ws.Root, dir, ws.ManifestName)); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		members = append(members, dir)
	}
	slices.Sort(members)

	return members, nil
}

// isExcluded reports whether member equals, lives below, or matches an
// exclude entry.
func isExcluded(member string, excludes []string) bool {
	for _, ex := range excludes {
		ex = normalizeMember(ex)
		if member == ex || strings.HasPrefix(member, ex+"/") {
			return true
		}
		if matched, _ := path.Match(ex, member); matched {
			return true
		}
	}
	return false
}

// shouldSkipDir hides dot-directories from wildcard segments unless the
// segment itself starts with a dot.
func shouldSkipDir(name, segment string) bool {
	return strings.HasPrefix(name, ".") && !strings.HasPrefix(segment, ".")
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

func normalizeMember(s string) string {
	s = strings.TrimSuffix(filepath.ToSlash(strings.TrimSpace(s)), "/")
	if s == "" {
		return "."
	}
	return path.Clean(s)
}
