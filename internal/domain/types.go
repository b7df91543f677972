package domain

// Icon is the canonicalized form of one icon inside an icon set.
// Width and Height carry the icon's intrinsic dimensions; export omits them
// when they match the owning set's grid.
type Icon struct {
	Name   string
	Body   string
	Width  float64
	Height float64
}

// IconRecord is one icon inside an exported Collection. Width and Height are
// present only when they differ from the set's default grid.
type IconRecord struct {
	Body   string  `json:"body"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Collection is the exported, serializable form of an icon set. The field
// names and optional-field omission are the interchange contract consumed by
// downstream icon tooling; do not rename.
type Collection struct {
	Prefix       string                `json:"prefix"`
	Icons        map[string]IconRecord `json:"icons"`
	LastModified int64                 `json:"lastModified"` // Unix seconds, max source mtime
}

// ImportOptions tunes a single import call.
type ImportOptions struct {
	// IncludeSubDirs folds files from nested directories into one flat
	// collection. Single-collection imports only; default true.
	IncludeSubDirs bool

	// Prefix is the collection prefix (single import) or the namespace
	// prepended to every derived key (tree import). May be empty.
	Prefix string

	// GridWidth and GridHeight define the set's default grid. Zero means 16.
	GridWidth  float64
	GridHeight float64
}

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityInfo Severity = "info"
	SeverityWarn Severity = "warn"
)

// Diagnostic is one structured pipeline warning: a rejected icon, an
// unreadable directory, a shadowed duplicate name. Diagnostics never
// surface to the caller as errors.
type Diagnostic struct {
	Severity Severity
	Subject  string // icon name or directory path
	Reason   string
}
