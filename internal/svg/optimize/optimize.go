// Package optimize shrinks an icon document with a generic SVG minifier and
// then re-expands its path data for renderer compatibility.
package optimize

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/tdewolff/minify/v2"
	minsvg "github.com/tdewolff/minify/v2/svg"

	"iconpack/internal/svg"
	"iconpack/internal/svg/pathdata"
)

const mediaType = "image/svg+xml"

var minifier = func() *minify.M {
	m := minify.New()
	m.AddFunc(mediaType, minsvg.Minify)
	return m
}()

// Apply minifies doc's markup (shape merging, precision rounding, default
// attribute removal, group collapsing) and rewrites every path back into
// explicit absolute commands. The document is replaced in place; its
// resolved dimensions are preserved.
func Apply(doc *svg.Document) error {
	markup, err := doc.Markup()
	if err != nil {
		return err
	}
	minified, err := minifier.String(mediaType, markup)
	if err != nil {
		return fmt.Errorf("minify: %w", err)
	}
	opt, err := svg.Parse([]byte(minified))
	if err != nil {
		return fmt.Errorf("reparse minified markup: %w", err)
	}
	if err := expandPaths(opt.Root()); err != nil {
		return err
	}
	opt.Width, opt.Height = doc.Width, doc.Height
	*doc = *opt
	return nil
}

func expandPaths(e *etree.Element) error {
	if a := e.SelectAttr("d"); a != nil && a.Value != "" {
		expanded, err := pathdata.Rewrite(a.Value)
		if err != nil {
			return err
		}
		e.CreateAttr("d", expanded)
	}
	for _, child := range e.ChildElements() {
		if err := expandPaths(child); err != nil {
			return err
		}
	}
	return nil
}
