package colors_test

import (
	"testing"

	"github.com/beevik/etree"

	"iconpack/internal/svg/colors"
)

func TestClassify_Actions(t *testing.T) {
	tests := []struct {
		in   string
		want colors.Action
	}{
		// exact black in any syntax inherits the caller color
		{"#000", colors.Inherit},
		{"#000000", colors.Inherit},
		{"black", colors.Inherit},
		{"rgb(0,0,0)", colors.Inherit},
		{"hsl(0,0%,0%)", colors.Inherit},

		// exact white marks the shape for removal
		{"#fff", colors.Remove},
		{"#ffffff", colors.Remove},
		{"white", colors.Remove},
		{"rgb(255,255,255)", colors.Remove},

		// absence-of-paint and deferred values are exempt
		{"none", colors.Keep},
		{"transparent", colors.Keep},
		{"currentColor", colors.Keep},
		{"inherit", colors.Keep},
		{"url(#grad)", colors.Keep},
		{"", colors.Keep},

		// everything else is preserved, including near-black
		{"#010101", colors.Keep},
		{"#e53935", colors.Keep},
		{"rgba(0,0,0,0.5)", colors.Keep},
	}
	for _, tc := range tests {
		got, err := colors.Classify(tc.in)
		if err != nil {
			t.Fatalf("Classify(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Classify(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClassify_Unparseable_Fails(t *testing.T) {
	if _, err := colors.Classify("definitely not a color"); err == nil {
		t.Fatal("expected error for unparseable color")
	}
}

func parseRoot(t *testing.T, markup string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc.Root()
}

func serialize(t *testing.T, root *etree.Element) string {
	t.Helper()
	doc := etree.NewDocumentWithRoot(root.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return s
}

func TestRewrite_BlackInheritsWhiteRemoved(t *testing.T) {
	root := parseRoot(t, `<svg><path fill="#000" d="M0 0h8"/><rect fill="#fff" width="8" height="8"/><circle stroke="#1e88e5" r="4"/></svg>`)

	if err := colors.Rewrite(root); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	path := root.SelectElement("path")
	if got := path.SelectAttrValue("fill", ""); got != colors.Placeholder {
		t.Fatalf("black fill = %q, want %q", got, colors.Placeholder)
	}
	if root.SelectElement("rect") != nil {
		t.Fatal("white rect should be removed")
	}
	circle := root.SelectElement("circle")
	if got := circle.SelectAttrValue("stroke", ""); got != "#1e88e5" {
		t.Fatalf("accent color changed: %q", got)
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	root := parseRoot(t, `<svg><path fill="#000" stroke="none" d="M0 0h8"/><path fill="#e53935" d="M0 8h8"/></svg>`)

	if err := colors.Rewrite(root); err != nil {
		t.Fatalf("first rewrite: %v", err)
	}
	once := serialize(t, root)

	if err := colors.Rewrite(root); err != nil {
		t.Fatalf("second rewrite: %v", err)
	}
	twice := serialize(t, root)

	if once != twice {
		t.Fatalf("rewrite is not idempotent:\n%s\n%s", once, twice)
	}
}

func TestRewrite_UnparseableColor_Fails(t *testing.T) {
	root := parseRoot(t, `<svg><path fill="ne-va-pas" d="M0 0h8"/></svg>`)
	if err := colors.Rewrite(root); err == nil {
		t.Fatal("expected error for unparseable color")
	}
}

func TestRewrite_NestedShapes(t *testing.T) {
	root := parseRoot(t, `<svg><g fill="#000"><path d="M0 0h8"/><rect fill="white" width="8" height="8"/></g></svg>`)

	if err := colors.Rewrite(root); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	g := root.SelectElement("g")
	if got := g.SelectAttrValue("fill", ""); got != colors.Placeholder {
		t.Fatalf("group fill = %q, want %q", got, colors.Placeholder)
	}
	if g.SelectElement("rect") != nil {
		t.Fatal("nested white rect should be removed")
	}
}
