package importer

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"iconpack/internal/domain"
	"iconpack/internal/svg"
	"iconpack/internal/svg/colors"
	"iconpack/internal/svg/optimize"
)

// Extension identifies icon files. No other file types are consulted.
const Extension = ".svg"

// Service imports directories of SVG files into collection records.
type Service struct {
	rep domain.Reporter
}

func New(rep domain.Reporter) *Service {
	if rep == nil {
		rep = noopReporter{}
	}
	return &Service{rep: rep}
}

// DefaultOptions returns the options ImportDirectory assumes when callers
// have no opinion: nested directories folded in, 16x16 grid, no prefix.
func DefaultOptions() domain.ImportOptions {
	return domain.ImportOptions{IncludeSubDirs: true, GridWidth: 16, GridHeight: 16}
}

// ImportDirectory turns one directory into one collection record. A missing
// or non-directory source fails immediately with no partial result; every
// per-icon failure is reported and dropped. A directory whose icons are all
// rejected yields an empty (icons: {}) record.
func (s *Service) ImportDirectory(ctx context.Context, source string, opts domain.ImportOptions) (domain.Collection, error) {
	if err := checkDir(source); err != nil {
		return domain.Collection{}, fmt.Errorf("import %s: %w", source, err)
	}
	src, err := s.loadSet(source, opts.IncludeSubDirs)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("import %s: %w", source, err)
	}
	set := domain.NewIconSet(opts.GridWidth, opts.GridHeight)
	if err := s.process(ctx, src, set); err != nil {
		return domain.Collection{}, err
	}
	return set.Export(opts.Prefix), nil
}

// ImportTree walks root and builds one collection per qualifying directory,
// keyed per collectionKey. Directories whose icons are all rejected are
// omitted entirely. Icon sets are independent, so they fan out across
// goroutines; icons within a set stay sequential.
func (s *Service) ImportTree(ctx context.Context, root string, opts domain.ImportOptions) (map[string]domain.Collection, error) {
	if err := checkDir(root); err != nil {
		return nil, fmt.Errorf("import %s: %w", root, err)
	}
	sources := s.partition(root)

	var mu sync.Mutex
	out := make(map[string]domain.Collection)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, source := range sources {
		source := source
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := s.loadSet(source.Dir, false)
			if err != nil {
				s.rep.Report(domain.Diagnostic{
					Severity: domain.SeverityWarn,
					Subject:  source.Dir,
					Reason:   "unreadable directory: " + err.Error(),
				})
				return nil
			}
			set := domain.NewIconSet(opts.GridWidth, opts.GridHeight)
			if err := s.process(gctx, src, set); err != nil {
				return err
			}
			if set.Len() == 0 {
				return nil
			}
			key := collectionKey(opts.Prefix, root, source.Rel)
			col := set.Export(key)
			mu.Lock()
			out[key] = col
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// process runs every loaded file through the pipeline, committing survivors
// into set and reporting rejections. Cancellation stops before the next
// icon; partially processed sets are safe to discard.
func (s *Service) process(ctx context.Context, src *sourceSet, set *domain.IconSet) error {
	for _, f := range src.files {
		if err := ctx.Err(); err != nil {
			return err
		}
		icon, err := buildIcon(f.name, f.data)
		if err != nil {
			s.rep.Report(domain.Diagnostic{
				Severity: domain.SeverityWarn,
				Subject:  f.name,
				Reason:   "icon rejected: " + err.Error(),
			})
			continue
		}
		set.Set(icon)
		set.Touch(f.modTime)
	}
	return nil
}

// buildIcon is the per-icon state machine: Loaded -> Validated ->
// ColorCanonicalized -> Optimized -> CompatRewritten -> Committed. Any
// stage may fail; the caller converts failure into rejection. Rejection is
// deterministic for fixed input, so there is no retry.
func buildIcon(name string, data []byte) (domain.Icon, error) {
	doc, err := svg.Parse(data)
	if err != nil {
		return domain.Icon{}, err
	}
	if err := doc.Normalize(); err != nil {
		return domain.Icon{}, err
	}
	if err := colors.Rewrite(doc.Root()); err != nil {
		return domain.Icon{}, err
	}
	// white-shape removal may have emptied the document
	if err := doc.CheckGeometry(); err != nil {
		return domain.Icon{}, err
	}
	if err := optimize.Apply(doc); err != nil {
		return domain.Icon{}, err
	}
	body, err := doc.Body()
	if err != nil {
		return domain.Icon{}, err
	}
	return domain.Icon{Name: name, Body: body, Width: doc.Width, Height: doc.Height}, nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	return nil
}

type noopReporter struct{}

func (noopReporter) Report(domain.Diagnostic) {}
