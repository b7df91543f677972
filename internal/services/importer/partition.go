package importer

import (
	"os"
	"path/filepath"
	"strings"

	"iconpack/internal/domain"
)

// Source is one directory that becomes its own collection.
type Source struct {
	Dir string   // filesystem path
	Rel []string // path segments from the scan root; empty for the root itself
}

// partition walks root depth-first with sorted entries and returns every
// directory that directly contains at least one icon file. A directory can
// both qualify and contain further qualifying subdirectories, so traversal
// never stops early. Unreadable directories are reported and skipped
// without aborting sibling branches.
func (s *Service) partition(root string) []Source {
	var out []Source
	var walk func(dir string, rel []string)
	walk = func(dir string, rel []string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			s.rep.Report(domain.Diagnostic{
				Severity: domain.SeverityWarn,
				Subject:  dir,
				Reason:   "unreadable directory: " + err.Error(),
			})
			return
		}
		for _, ent := range entries {
			if !ent.IsDir() && isIconFile(ent.Name()) {
				out = append(out, Source{Dir: dir, Rel: rel})
				break
			}
		}
		for _, ent := range entries {
			if ent.IsDir() {
				child := append(append([]string{}, rel...), ent.Name())
				walk(filepath.Join(dir, ent.Name()), child)
			}
		}
	}
	walk(root, nil)
	return out
}

// collectionKey derives the result-map key for one source directory. The
// root itself has no relative segments; its base name stands in so the key
// is never empty.
func collectionKey(prefix, root string, rel []string) string {
	segs := rel
	if len(segs) == 0 {
		segs = []string{filepath.Base(root)}
	}
	key := strings.Join(segs, "-")
	if prefix != "" {
		key = prefix + "-" + key
	}
	return key
}
