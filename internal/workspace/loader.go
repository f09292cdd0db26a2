package workspace

import (
	"context"
	"path"
	"path/filepath"

	"github.com/indaco/depdrift/internal/core"
	"github.com/indaco/depdrift/internal/parser"
)

// Loader reads workspace and member manifests.
type Loader struct {
	fs     core.FileSystem
	reader *parser.Reader
}

// NewLoader creates a Loader backed by fs.
func NewLoader(fs core.FileSystem) *Loader {
	return &Loader{
		fs:     fs,
		reader: parser.NewReader(fs),
	}
}

// LoadWorkspace reads the root manifest at manifestPath and resolves its
// member list. It fails with a parser.SchemaError when the manifest has no
// [workspace] table, no members key, or members of the wrong shape.
func (l *Loader) LoadWorkspace(ctx context.Context, manifestPath string) (*Workspace, error) {
	doc, err := l.reader.Read(ctx, manifestPath)
	if err != nil {
		return nil, err
	}

	wsValue, ok := doc.Lookup("workspace")
	if !ok {
		return nil, &parser.SchemaError{Path: manifestPath, Key: "workspace", Reason: "is missing (not a workspace root?)"}
	}
	wsTable, ok := parser.AsTable(wsValue)
	if !ok {
		return nil, &parser.SchemaError{Path: manifestPath, Key: "workspace", Reason: "must be a table"}
	}

	rawMembers, ok := wsTable["members"]
	if !ok {
		return nil, &parser.SchemaError{Path: manifestPath, Key: "workspace.members", Reason: "is missing"}
	}
	members, ok := stringList(rawMembers)
	if !ok {
		return nil, &parser.SchemaError{Path: manifestPath, Key: "workspace.members", Reason: "must be an array of strings"}
	}

	var exclude []string
	if rawExclude, ok := wsTable["exclude"]; ok {
		exclude, ok = stringList(rawExclude)
		if !ok {
			return nil, &parser.SchemaError{Path: manifestPath, Key: "workspace.exclude", Reason: "must be an array of strings"}
		}
	}

	ws := &Workspace{
		Root:         filepath.Dir(manifestPath),
		ManifestPath: manifestPath,
		ManifestName: filepath.Base(manifestPath),
		Exclude:      exclude,
	}

	resolved, err := l.resolveMembers(ctx, ws, members)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, &parser.SchemaError{Path: manifestPath, Key: "workspace.members", Reason: "must list at least one member"}
	}
	ws.Members = resolved

	return ws, nil
}

// LoadMember reads the manifest of one member of ws.
func (l *Loader) LoadMember(ctx context.Context, ws *Workspace, member string) (*Member, error) {
	manifestPath := ws.MemberManifestPath(member)

	doc, err := l.reader.Read(ctx, manifestPath)
	if err != nil {
		return nil, err
	}

	pkgValue, ok := doc.Lookup("package")
	if !ok {
		return nil, &parser.SchemaError{Path: manifestPath, Key: "package", Reason: "is missing"}
	}
	pkg, ok := parser.AsTable(pkgValue)
	if !ok {
		return nil, &parser.SchemaError{Path: manifestPath, Key: "package", Reason: "must be a table"}
	}
	name, ok := pkg["name"].(string)
	if !ok || name == "" {
		return nil, &parser.SchemaError{Path: manifestPath, Key: "package.name", Reason: "must be a non-empty string"}
	}
	version, _ := pkg["version"].(string)

	m := &Member{
		Path:         member,
		ManifestPath: manifestPath,
		Name:         name,
		Version:      version,
		Tables:       make(map[string]map[string]any),
	}

	for _, section := range KnownSections {
		raw, ok := doc[section]
		if !ok {
			continue
		}
		table, ok := parser.AsTable(raw)
		if !ok {
			return nil, &parser.SchemaError{Path: manifestPath, Key: section, Reason: "must be a table"}
		}
		m.Tables[section] = table
	}

	return m, nil
}

// stringList converts a decoded array into a []string.
func stringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// joinMember builds an OS path from the workspace root, a slash-separated
// member identifier and a filename.
func joinMember(root, member, name string) string {
	return filepath.Join(root, filepath.FromSlash(path.Clean(member)), name)
}
