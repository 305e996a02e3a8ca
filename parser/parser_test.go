package parser_test

import (
	"testing"

	"github.com/bms-1984/lisp64/parser"
)

func TestParseAtoms(t *testing.T) {
	cases := []string{
		`42`,
		`-7`,
		`3.14`,
		`"hello"`,
		`#true`,
		`#false`,
		`foo-bar!`,
	}
	p := parser.New()
	for _, src := range cases {
		node, err := p.ParseString(src)
		if err != nil {
			t.Fatalf("ParseString(%q) error: %v", src, err)
		}
		if node == nil {
			t.Fatalf("ParseString(%q) returned nil node", src)
		}
	}
}

func TestParseNestedExpr(t *testing.T) {
	p := parser.New()
	node, err := p.ParseString(`(+ 1 (* 2 3))`)
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	if node == nil || len(node.Children) == 0 {
		t.Fatalf("expected a non-empty root, got %+v", node)
	}
}

func TestParseQExp(t *testing.T) {
	p := parser.New()
	node, err := p.ParseString(`{1 2 3}`)
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	if node == nil {
		t.Fatal("expected a root node")
	}
}

func TestParseComment(t *testing.T) {
	p := parser.New()
	_, err := p.ParseString("; a comment\n(+ 1 2)")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
}
