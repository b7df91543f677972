// Package colors canonicalizes the palette of an icon document so callers
// can recolor it at render time. Classification is a pure function over one
// color value; a tree walker applies it to every color-bearing attribute.
package colors

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Action is the outcome of classifying one color value.
type Action int

const (
	// Keep leaves the value untouched.
	Keep Action = iota
	// Inherit replaces the value with the caller-supplied color placeholder.
	Inherit
	// Remove deletes the shape owning the value.
	Remove
)

// Placeholder is the token meaning "inherit the caller-supplied color".
const Placeholder = "currentColor"

// Classify maps one raw color value to an action.
//
// Values that mean absence of paint (none, transparent) or deferred paint
// (currentColor, inherit, url() references) are kept as-is; exempting them
// before parsing is what makes re-running the pipeline on its own output a
// no-op. Exactly black becomes Inherit, exactly white becomes Remove, and
// every other parseable color is kept byte-identical. An unparseable value
// is an error; the caller rejects the whole icon.
func Classify(raw string) (Action, error) {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case "", "none", "transparent", "currentcolor", "inherit":
		return Keep, nil
	}
	if strings.HasPrefix(strings.ToLower(v), "url(") {
		return Keep, nil
	}

	c, err := csscolorparser.Parse(v)
	if err != nil {
		return Keep, fmt.Errorf("color %q: %w", raw, err)
	}

	// Exact numeric equality, not perceptual distance. Near-black values
	// like #010101 stay untouched.
	switch {
	case c.R == 0 && c.G == 0 && c.B == 0 && c.A == 1:
		return Inherit, nil
	case c.R == 1 && c.G == 1 && c.B == 1 && c.A == 1:
		return Remove, nil
	}
	return Keep, nil
}
