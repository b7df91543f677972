package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

var (
	ErrNotSVG     = errString("root element is not svg")
	ErrNoViewBox  = errString("view box is missing or unparseable")
	ErrNoGeometry = errString("document contains no visible geometry")
)

type errString string

func (e errString) Error() string { return string(e) }

// shapeTags are the elements that contribute visible geometry.
var shapeTags = map[string]bool{
	"path": true, "rect": true, "circle": true, "ellipse": true,
	"line": true, "polyline": true, "polygon": true,
	"use": true, "image": true, "text": true,
}

// editorTags are metadata elements emitted by authoring tools; they carry no
// render semantics.
var editorTags = map[string]bool{
	"metadata": true, "title": true, "desc": true,
}

// Document is one mutable in-memory SVG. Width and Height are the intrinsic
// dimensions resolved from the view box.
type Document struct {
	tree   *etree.Document
	Width  float64
	Height float64
}

// Parse reads data into a document and verifies the root element. It does
// not clean or resolve dimensions; see Normalize.
func Parse(data []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	root := tree.Root()
	if root == nil || root.Tag != "svg" {
		return nil, ErrNotSVG
	}
	return &Document{tree: tree}, nil
}

// Root returns the svg root element.
func (d *Document) Root() *etree.Element { return d.tree.Root() }

// Normalize resolves the document's dimensions and strips presentation
// noise. It fails when no view box can be resolved or when cleanup leaves
// the document without geometry.
func (d *Document) Normalize() error {
	root := d.Root()

	w, h, err := d.resolveViewBox()
	if err != nil {
		return err
	}
	d.Width, d.Height = w, h

	// Dimensions live on the icon entry from here on.
	root.RemoveAttr("width")
	root.RemoveAttr("height")

	stripTokens(d.tree.Child, d.tree)
	cleanElement(root)
	collapseGroups(root)

	if !hasGeometry(root) {
		return ErrNoGeometry
	}
	return nil
}

// CheckGeometry re-runs the empty-document check, used after shape removal.
func (d *Document) CheckGeometry() error {
	if !hasGeometry(d.Root()) {
		return ErrNoGeometry
	}
	return nil
}

// Body serializes the root's child markup, the string embedded into sprites.
func (d *Document) Body() (string, error) {
	var b strings.Builder
	for _, child := range d.Root().ChildElements() {
		sub := etree.NewDocumentWithRoot(child.Copy())
		s, err := sub.WriteToString()
		if err != nil {
			return "", err
		}
		b.WriteString(strings.TrimSpace(s))
	}
	return b.String(), nil
}

// Markup serializes the whole document, root element included.
func (d *Document) Markup() (string, error) {
	s, err := d.tree.WriteToString()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// resolveViewBox returns the intrinsic width and height. A missing viewBox
// falls back to the root width/height attributes, and the equivalent
// viewBox is written back so the attribute survives serialization.
func (d *Document) resolveViewBox() (w, h float64, err error) {
	root := d.Root()
	if vb := root.SelectAttrValue("viewBox", ""); vb != "" {
		parts := strings.FieldsFunc(vb, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
		if len(parts) != 4 {
			return 0, 0, ErrNoViewBox
		}
		nums := make([]float64, 4)
		for i, p := range parts {
			nums[i], err = strconv.ParseFloat(p, 64)
			if err != nil {
				return 0, 0, ErrNoViewBox
			}
		}
		if nums[2] <= 0 || nums[3] <= 0 {
			return 0, 0, ErrNoViewBox
		}
		return nums[2], nums[3], nil
	}

	w = parseLength(root.SelectAttrValue("width", ""))
	h = parseLength(root.SelectAttrValue("height", ""))
	if w <= 0 || h <= 0 {
		return 0, 0, ErrNoViewBox
	}
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", trimFloat(w), trimFloat(h)))
	return w, h, nil
}

// parseLength reads a CSS-ish length, tolerating a px suffix. Returns 0 on
// anything it cannot read.
func parseLength(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// stripTokens removes comments, processing instructions and directives that
// are siblings of the root element (the XML declaration among them).
func stripTokens(children []etree.Token, parent *etree.Document) {
	for _, tok := range append([]etree.Token(nil), children...) {
		switch tok.(type) {
		case *etree.Comment, *etree.ProcInst, *etree.Directive:
			parent.RemoveChild(tok)
		}
	}
}

// cleanElement recursively removes editor noise below e: comment tokens,
// prefixed (inkscape:, sodipodi:) elements and attributes, metadata
// elements, and inlines style declarations into plain attributes.
func cleanElement(e *etree.Element) {
	inlineStyle(e)

	for _, a := range append([]etree.Attr(nil), e.Attr...) {
		switch a.Space {
		case "":
			continue
		case "xlink":
			// keep: use/gradient references need xlink:href
		case "xmlns":
			if a.Key != "xlink" {
				e.RemoveAttr(a.Space + ":" + a.Key)
			}
		default:
			e.RemoveAttr(a.Space + ":" + a.Key)
		}
	}

	for _, tok := range append([]etree.Token(nil), e.Child...) {
		switch t := tok.(type) {
		case *etree.Comment:
			e.RemoveChild(t)
		case *etree.Element:
			if t.Space != "" && t.Space != "svg" || editorTags[t.Tag] {
				e.RemoveChild(t)
				continue
			}
			cleanElement(t)
		}
	}
}

// inlineStyle splits a style attribute into individual presentation
// attributes. Existing attributes win over style declarations.
func inlineStyle(e *etree.Element) {
	style := e.SelectAttrValue("style", "")
	if style == "" {
		return
	}
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" || e.SelectAttr(k) != nil {
			continue
		}
		e.CreateAttr(k, v)
	}
	e.RemoveAttr("style")
}

// collapseGroups hoists the children of attribute-less g elements into their
// parent. Such groups have no visual effect.
func collapseGroups(e *etree.Element) {
	for _, child := range e.ChildElements() {
		collapseGroups(child)
	}
	for _, child := range e.ChildElements() {
		if child.Tag != "g" || child.Space != "" || len(child.Attr) > 0 {
			continue
		}
		idx := child.Index()
		for _, tok := range append([]etree.Token(nil), child.Child...) {
			child.RemoveChild(tok)
			e.InsertChildAt(idx, tok)
			idx++
		}
		e.RemoveChild(child)
	}
}

// hasGeometry reports whether any shape element remains under e.
func hasGeometry(e *etree.Element) bool {
	for _, child := range e.ChildElements() {
		if shapeTags[child.Tag] {
			return true
		}
		if child.Tag == "defs" {
			// referenced content only; does not count as drawn geometry
			continue
		}
		if hasGeometry(child) {
			return true
		}
	}
	return false
}
