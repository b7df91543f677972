package importer

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"iconpack/internal/domain"
)

// sourceFile is one raw icon file waiting for the pipeline.
type sourceFile struct {
	name    string
	data    []byte
	modTime time.Time
}

type sourceSet struct {
	files []sourceFile
	names map[string]bool
}

// loadSet reads every icon file in dir into a source set keyed by filename
// stem. With flatten, files from nested directories are folded into the
// same flat set; a name already taken shadows later files, which is
// reported. Unreadable files and subdirectories are reported and skipped.
func (s *Service) loadSet(dir string, flatten bool) (*sourceSet, error) {
	set := &sourceSet{names: make(map[string]bool)}
	if !flatten {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, ent := range entries {
			if !ent.IsDir() {
				s.addFile(set, filepath.Join(dir, ent.Name()), ent)
			}
		}
		return set, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.rep.Report(domain.Diagnostic{
				Severity: domain.SeverityWarn,
				Subject:  path,
				Reason:   "unreadable directory: " + err.Error(),
			})
			return nil
		}
		if d.IsDir() {
			return nil
		}
		s.addFile(set, path, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Service) addFile(set *sourceSet, path string, ent fs.DirEntry) {
	if !isIconFile(ent.Name()) {
		return
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if set.names[name] {
		s.rep.Report(domain.Diagnostic{
			Severity: domain.SeverityWarn,
			Subject:  path,
			Reason:   "duplicate icon name " + name + ", file shadowed",
		})
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		s.rep.Report(domain.Diagnostic{
			Severity: domain.SeverityWarn,
			Subject:  path,
			Reason:   "unreadable file: " + err.Error(),
		})
		return
	}
	var mod time.Time
	if info, err := ent.Info(); err == nil {
		mod = info.ModTime()
	}
	set.names[name] = true
	set.files = append(set.files, sourceFile{name: name, data: data, modTime: mod})
}

func isIconFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Extension)
}
