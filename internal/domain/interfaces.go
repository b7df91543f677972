package domain

import "context"

// Importer builds collection records from directories of SVG files.
type Importer interface {
	// ImportDirectory turns one directory into one collection. A missing or
	// non-directory source is a hard error; per-icon failures are reported
	// and skipped.
	ImportDirectory(ctx context.Context, source string, opts ImportOptions) (Collection, error)

	// ImportTree walks root and returns one collection per directory that
	// directly contains icon files, keyed by its relative path. Directories
	// whose icons are all rejected are omitted.
	ImportTree(ctx context.Context, root string, opts ImportOptions) (map[string]Collection, error)
}

// CollectionStore persists exported collection records.
type CollectionStore interface {
	Save(path string, c Collection) error
	SaveAll(dir string, cols map[string]Collection) error
	Load(path string) (Collection, bool, error)
}

// Reporter receives pipeline diagnostics. Implementations must be safe for
// concurrent use; imports fan out across icon sets.
type Reporter interface {
	Report(d Diagnostic)
}
