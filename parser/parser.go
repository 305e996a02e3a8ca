package parser

import (
	"fmt"
	"strings"

	pc "github.com/prataprc/goparsec"
)

// Parser parses Liz source text into a Node tree. Parser itself holds no
// state: the grammar combinators and the shared *pc.AST that Parse
// builds its result with are package-level variables in grammar.go, so
// every Parser uses the same ones.
type Parser struct{}

// New builds a Parser.
func New() *Parser { return &Parser{} }

// Parse scans source completely and returns the root Node of the parse
// tree (tag "root"), or an error if the input does not match the
// grammar of §6.
func (*Parser) Parse(source []byte) (*Node, error) {
	root, scanner := ast.Parsewith(pTop, pc.NewScanner(source))
	if root == nil {
		return nil, fmt.Errorf("liz: parse error near %v", scanner)
	}
	if _, rest := scanner.SkipWS(); !rest.Endof() {
		return nil, fmt.Errorf("liz: parse error at offset %d", rest.GetCursor())
	}
	queryable, ok := root.(pc.Queryable)
	if !ok {
		return nil, fmt.Errorf("liz: unexpected parse result %T", root)
	}
	_ = scanner
	return convert(queryable), nil
}

// ParseString is a convenience wrapper around Parse for string input.
func (p *Parser) ParseString(source string) (*Node, error) {
	return p.Parse([]byte(source))
}

// transparent names the OrdChoice wrapper rules ("expr" picks one of
// string/comment/number/symbol/boolean/sexp/qexp; "number" picks one of
// double/long) that exist only to group alternatives: each match has
// exactly one child, the alternative that actually matched, and the
// reader's tag-substring dispatch wants that alternative's own tag, not
// the wrapper's.
func transparent(name string) bool { return name == "expr" || name == "number" }

func convert(q pc.Queryable) *Node {
	children := q.GetChildren()
	if len(children) == 0 {
		return &Node{Tag: q.GetName(), Contents: q.GetValue()}
	}
	if transparent(q.GetName()) {
		return convert(children[0])
	}
	return &Node{Tag: q.GetName(), Children: convertChildren(children)}
}

// convertChildren flattens the Kleene-wrapper nodes ("sexp-items",
// "qexp-items") that ast.And/ast.Kleene introduce around a repeated
// sub-rule: the wrapper itself carries no meaning for the reader, only
// its own children (the repeated expr matches) do.
func convertChildren(children []pc.Queryable) []*Node {
	var kids []*Node
	for _, c := range children {
		if strings.HasSuffix(c.GetName(), "-items") {
			kids = append(kids, convertChildren(c.GetChildren())...)
			continue
		}
		kids = append(kids, convert(c))
	}
	return kids
}
