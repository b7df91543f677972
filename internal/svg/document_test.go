package svg_test

import (
	"errors"
	"strings"
	"testing"

	"iconpack/internal/svg"
)

func mustParse(t *testing.T, markup string) *svg.Document {
	t.Helper()
	doc, err := svg.Parse([]byte(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestParse_WrongRoot_Fails(t *testing.T) {
	if _, err := svg.Parse([]byte(`<html><body/></html>`)); !errors.Is(err, svg.ErrNotSVG) {
		t.Fatalf("want ErrNotSVG, got %v", err)
	}
}

func TestParse_MalformedXML_Fails(t *testing.T) {
	if _, err := svg.Parse([]byte(`<svg><path d="M0 0`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNormalize_ResolvesViewBox(t *testing.T) {
	doc := mustParse(t, `<svg viewBox="0 0 24 24" width="24" height="24"><path d="M0 0h24"/></svg>`)
	if err := doc.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if doc.Width != 24 || doc.Height != 24 {
		t.Fatalf("dimensions = %vx%v, want 24x24", doc.Width, doc.Height)
	}
	if doc.Root().SelectAttr("width") != nil || doc.Root().SelectAttr("height") != nil {
		t.Fatal("root width/height should be stripped")
	}
}

func TestNormalize_WidthHeightFallback(t *testing.T) {
	doc := mustParse(t, `<svg width="32px" height="32"><path d="M0 0h32"/></svg>`)
	if err := doc.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if doc.Width != 32 || doc.Height != 32 {
		t.Fatalf("dimensions = %vx%v, want 32x32", doc.Width, doc.Height)
	}
	if got := doc.Root().SelectAttrValue("viewBox", ""); got != "0 0 32 32" {
		t.Fatalf("synthesized viewBox = %q", got)
	}
}

func TestNormalize_BadViewBox_Fails(t *testing.T) {
	for _, markup := range []string{
		`<svg viewBox="0 0"><path d="M0 0h8"/></svg>`,
		`<svg viewBox="0 0 x 16"><path d="M0 0h8"/></svg>`,
		`<svg viewBox="0 0 0 16"><path d="M0 0h8"/></svg>`,
		`<svg><path d="M0 0h8"/></svg>`,
	} {
		doc := mustParse(t, markup)
		if err := doc.Normalize(); !errors.Is(err, svg.ErrNoViewBox) {
			t.Fatalf("normalize %q: want ErrNoViewBox, got %v", markup, err)
		}
	}
}

func TestNormalize_NoGeometry_Fails(t *testing.T) {
	doc := mustParse(t, `<svg viewBox="0 0 16 16"><defs><linearGradient id="g"/></defs></svg>`)
	if err := doc.Normalize(); !errors.Is(err, svg.ErrNoGeometry) {
		t.Fatalf("want ErrNoGeometry, got %v", err)
	}
}

func TestNormalize_StripsEditorNoise(t *testing.T) {
	doc := mustParse(t, `<?xml version="1.0" encoding="UTF-8"?>
<!-- exported from an editor -->
<svg viewBox="0 0 16 16" xmlns:sodipodi="http://x" xmlns:inkscape="http://y">
  <sodipodi:namedview pagecolor="#fff"/>
  <metadata>meta</metadata>
  <title>icon</title>
  <g>
    <path inkscape:label="shape" d="M0 0h16"/>
  </g>
</svg>`)
	if err := doc.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	body, err := doc.Body()
	if err != nil {
		t.Fatalf("body: %v", err)
	}
	for _, banned := range []string{"sodipodi", "metadata", "title", "inkscape", "<!--", "<g>"} {
		if strings.Contains(body, banned) {
			t.Fatalf("body still contains %q: %s", banned, body)
		}
	}
	if !strings.Contains(body, `<path d="M0 0h16"/>`) {
		t.Fatalf("path lost from body: %s", body)
	}
}

func TestNormalize_InlinesStyle(t *testing.T) {
	doc := mustParse(t, `<svg viewBox="0 0 16 16"><path style="fill:#000;stroke:red" d="M0 0h6"/></svg>`)
	if err := doc.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	path := doc.Root().SelectElement("path")
	if got := path.SelectAttrValue("fill", ""); got != "#000" {
		t.Fatalf("fill = %q, want #000", got)
	}
	if got := path.SelectAttrValue("stroke", ""); got != "red" {
		t.Fatalf("stroke = %q, want red", got)
	}
	if path.SelectAttr("style") != nil {
		t.Fatal("style attribute should be gone")
	}
}

func TestNormalize_CollapsesWrapperGroups(t *testing.T) {
	doc := mustParse(t, `<svg viewBox="0 0 16 16"><g><g><path d="M0 0h16"/></g></g><g fill="#000"><path d="M0 8h16"/></g></svg>`)
	if err := doc.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	body, err := doc.Body()
	if err != nil {
		t.Fatalf("body: %v", err)
	}
	if strings.Contains(body, "<g>") {
		t.Fatalf("attribute-less groups should collapse: %s", body)
	}
	if !strings.Contains(body, `<g fill="#000">`) {
		t.Fatalf("group with attributes must survive: %s", body)
	}
}

func TestBody_SerializesChildrenOnly(t *testing.T) {
	doc := mustParse(t, `<svg viewBox="0 0 16 16"><path d="M0 0h16"/><circle r="4"/></svg>`)
	if err := doc.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	body, err := doc.Body()
	if err != nil {
		t.Fatalf("body: %v", err)
	}
	if strings.Contains(body, "<svg") {
		t.Fatalf("body must not contain the root element: %s", body)
	}
	if body != `<path d="M0 0h16"/><circle r="4"/>` {
		t.Fatalf("unexpected body: %s", body)
	}
}
