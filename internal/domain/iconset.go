package domain

import (
	"sort"
	"time"
)

// IconSet owns the icons loaded from one directory while they move through
// the pipeline. Names are unique within the set. Aliases are structural
// references to icons (or to other aliases) and are never processed by the
// pipeline themselves.
type IconSet struct {
	gridWidth  float64
	gridHeight float64

	icons   map[string]Icon
	aliases map[string]string
	lastMod time.Time
}

// NewIconSet creates an empty set with the given default grid. Zero
// dimensions fall back to 16.
func NewIconSet(gridWidth, gridHeight float64) *IconSet {
	if gridWidth <= 0 {
		gridWidth = 16
	}
	if gridHeight <= 0 {
		gridHeight = 16
	}
	return &IconSet{
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
		icons:      make(map[string]Icon),
		aliases:    make(map[string]string),
	}
}

// Grid returns the set's default width and height.
func (s *IconSet) Grid() (w, h float64) { return s.gridWidth, s.gridHeight }

// Set inserts or replaces a committed icon.
func (s *IconSet) Set(icon Icon) { s.icons[icon.Name] = icon }

// Get returns the icon stored under name, without alias resolution.
func (s *IconSet) Get(name string) (Icon, bool) {
	icon, ok := s.icons[name]
	return icon, ok
}

// Remove deletes the icon stored under name, if any.
func (s *IconSet) Remove(name string) { delete(s.icons, name) }

// Len reports the number of committed icons, excluding aliases.
func (s *IconSet) Len() int { return len(s.icons) }

// Names returns the committed icon names in sorted order.
func (s *IconSet) Names() []string {
	names := make([]string, 0, len(s.icons))
	for name := range s.icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetAlias records alias as a reference to target. The target does not have
// to exist yet; Resolve reports whether a chain ends at a real icon.
func (s *IconSet) SetAlias(alias, target string) { s.aliases[alias] = target }

// Resolve follows alias chains until an icon is found. It returns false for
// unknown names, dangling aliases and alias cycles.
func (s *IconSet) Resolve(name string) (Icon, bool) {
	seen := make(map[string]bool)
	for {
		if icon, ok := s.icons[name]; ok {
			return icon, true
		}
		target, ok := s.aliases[name]
		if !ok || seen[name] {
			return Icon{}, false
		}
		seen[name] = true
		name = target
	}
}

// Touch advances the set's last-modified time if t is newer.
func (s *IconSet) Touch(t time.Time) {
	if t.After(s.lastMod) {
		s.lastMod = t
	}
}

// LastModified returns the newest source file time seen via Touch.
func (s *IconSet) LastModified() time.Time { return s.lastMod }

// Export consumes the set into an immutable collection record. Icon
// dimensions matching the set grid are dropped so the record stays minimal.
func (s *IconSet) Export(prefix string) Collection {
	icons := make(map[string]IconRecord, len(s.icons))
	for name, icon := range s.icons {
		rec := IconRecord{Body: icon.Body}
		if icon.Width != s.gridWidth {
			rec.Width = icon.Width
		}
		if icon.Height != s.gridHeight {
			rec.Height = icon.Height
		}
		icons[name] = rec
	}
	var lastMod int64
	if !s.lastMod.IsZero() {
		lastMod = s.lastMod.Unix()
	}
	return Collection{Prefix: prefix, Icons: icons, LastModified: lastMod}
}
