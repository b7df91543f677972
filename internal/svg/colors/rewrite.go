package colors

import (
	"fmt"

	"github.com/beevik/etree"
)

// colorAttrs are the attributes that carry paint.
var colorAttrs = []string{
	"fill", "stroke", "color", "stop-color", "flood-color", "lighting-color",
}

// Rewrite canonicalizes every color-bearing attribute under root in place:
// black paint becomes the placeholder, white-painted shapes are removed, and
// everything else is preserved. The first unparseable color aborts with an
// error; the document is then unusable and must be discarded.
func Rewrite(root *etree.Element) error {
	var doomed []*etree.Element
	if err := walk(root, &doomed); err != nil {
		return err
	}
	for _, e := range doomed {
		if p := e.Parent(); p != nil {
			p.RemoveChild(e)
		}
	}
	return nil
}

func walk(e *etree.Element, doomed *[]*etree.Element) error {
	for _, name := range colorAttrs {
		a := e.SelectAttr(name)
		if a == nil {
			continue
		}
		action, err := Classify(a.Value)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Tag, err)
		}
		switch action {
		case Inherit:
			e.CreateAttr(name, Placeholder)
		case Remove:
			*doomed = append(*doomed, e)
			return nil // no point classifying the rest of a removed shape
		}
	}
	for _, child := range e.ChildElements() {
		if err := walk(child, doomed); err != nil {
			return err
		}
	}
	return nil
}
