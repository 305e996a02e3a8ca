// Package parser turns Liz source text into a tagged parse tree, the
// external concrete-syntax collaborator that spec §1(a) treats as a black
// box: a parser combinator grammar (github.com/prataprc/goparsec) builds
// the productions of §6, and its AST is flattened into the generic Node
// shape the reader package consumes.
package parser

// Node is a single parse-tree node: either a leaf carrying Contents, or
// an interior node carrying an ordered list of Children. Tag always
// carries (as a substring) the grammar rule name that produced it, which
// is what the reader's tag-match dispatch (§4.1) relies on.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// IsLeaf reports whether this node is a leaf (no children).
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }
