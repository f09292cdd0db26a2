// Package audit runs a full drift audit over a workspace: it loads the root
// manifest, reads every member concurrently, and folds the declarations into
// a dependency map in member order.
package audit

import (
	"context"
	"fmt"
	"runtime"

	"github.com/indaco/depdrift/internal/config"
	"github.com/indaco/depdrift/internal/core"
	"github.com/indaco/depdrift/internal/drift"
	"github.com/indaco/depdrift/internal/logging"
	"github.com/indaco/depdrift/internal/workspace"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Result holds everything produced by one audit run.
type Result struct {
	// Workspace is the resolved root manifest.
	Workspace *workspace.Workspace

	// Members are the parsed member manifests, in workspace order.
	Members []*workspace.Member

	// Map is the aggregated dependency map after ignore filtering.
	Map *drift.DependencyMap

	// Conflicts are the detected version conflicts, sorted by name.
	Conflicts []drift.Conflict
}

// HasConflicts reports whether any dependency drifted.
func (r *Result) HasConflicts() bool {
	return r != nil && len(r.Conflicts) > 0
}

// Service audits the workspace described by a Config.
type Service struct {
	fs     core.FileSystem
	cfg    *config.Config
	loader *workspace.Loader
	log    *logrus.Logger
}

// NewService creates a Service. A nil log discards diagnostics.
func NewService(fs core.FileSystem, cfg *config.Config, log *logrus.Logger) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Service{
		fs:     fs,
		cfg:    cfg,
		loader: workspace.NewLoader(fs),
		log:    logging.OrDiscard(log),
	}
}

// Run performs the audit. Any manifest error aborts the run and no partial
// result is returned.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	ws, err := s.loader.LoadWorkspace(ctx, s.cfg.Manifest)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"manifest": ws.ManifestPath,
		"members":  len(ws.Members),
	}).Debug("workspace loaded")

	members, decls, err := s.readMembers(ctx, ws)
	if err != nil {
		return nil, err
	}

	dm := drift.Aggregate(decls)
	conflicts := drift.Detect(dm)

	s.log.WithFields(logrus.Fields{
		"dependencies": dm.Len(),
		"conflicts":    len(conflicts),
	}).Debug("audit complete")

	return &Result{
		Workspace: ws,
		Members:   members,
		Map:       dm,
		Conflicts: conflicts,
	}, nil
}

// readMembers loads and extracts every member concurrently. Each worker owns
// one slot of the result slices so the caller sees workspace order.
func (s *Service) readMembers(ctx context.Context, ws *workspace.Workspace) ([]*workspace.Member, []drift.MemberDeclarations, error) {
	members := make([]*workspace.Member, len(ws.Members))
	decls := make([]drift.MemberDeclarations, len(ws.Members))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.jobs())

	for i, path := range ws.Members {
		eg.Go(func() error {
			m, err := s.loader.LoadMember(ctx, ws, path)
			if err != nil {
				return err
			}

			md := drift.ExtractMember(m, s.cfg.Sections)
			md.Declarations = s.filterIgnored(md.Declarations)
			for _, d := range md.Declarations {
				if d.Version == "" {
					s.log.WithFields(logrus.Fields{
						"member":     path,
						"dependency": d.Name,
					}).Debug("no version requested, comparing as empty string")
				}
			}

			s.log.WithFields(logrus.Fields{
				"member":       path,
				"package":      m.Name,
				"dependencies": len(md.Declarations),
			}).Debug("member read")

			members[i] = m
			decls[i] = md
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to read workspace members: %w", err)
	}

	return members, decls, nil
}

func (s *Service) filterIgnored(decls []drift.Declaration) []drift.Declaration {
	if len(s.cfg.Ignore) == 0 {
		return decls
	}
	kept := decls[:0]
	for _, d := range decls {
		if s.cfg.IsIgnored(d.Name) {
			s.log.WithField("dependency", d.Name).Debug("ignored")
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

func (s *Service) jobs() int {
	if s.cfg.Jobs > 0 {
		return s.cfg.Jobs
	}
	return runtime.NumCPU()
}
