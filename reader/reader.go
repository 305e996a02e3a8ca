// Package reader turns a parser.Node parse tree into a value.Value tree,
// per spec §4.1: dispatch is by substring match on the node's tag.
package reader

import (
	"strconv"
	"strings"

	"github.com/bms-1984/lisp64/parser"
	"github.com/bms-1984/lisp64/value"
)

// Read converts a single parse-tree node into a Value, recursively.
func Read(n *parser.Node) value.Value {
	tag := n.Tag
	switch {
	case strings.Contains(tag, "string"):
		return readStr(n)
	case strings.Contains(tag, "double"):
		return readDouble(n)
	case strings.Contains(tag, "long"):
		return readLong(n)
	case strings.Contains(tag, "boolean"):
		return value.NewBool(n.Contents == "#true")
	case strings.Contains(tag, "symbol"):
		return value.NewSym(n.Contents)
	}

	var container value.Value
	switch {
	case tag == "root" || strings.Contains(tag, "sexp"):
		container = value.NewSExp()
	case strings.Contains(tag, "qexp"):
		container = value.NewQExp()
	default:
		container = value.NewSExp()
	}

	for _, child := range n.Children {
		if skipChild(child) {
			continue
		}
		v := Read(child)
		switch c := container.(type) {
		case *value.SExp:
			c.Add(v)
		case *value.QExp:
			c.Add(v)
		}
	}
	return container
}

// skipChild reports whether a child node is punctuation or metadata that
// the reader must not turn into a Value: literal delimiters, and any
// node tagged "regex" or "comment".
func skipChild(n *parser.Node) bool {
	if strings.Contains(n.Tag, "comment") {
		return true
	}
	if strings.Contains(n.Tag, "regex") {
		return true
	}
	switch n.Contents {
	case "(", ")", "{", "}":
		return true
	}
	return false
}

func readLong(n *parser.Node) value.Value {
	x, err := strconv.ParseInt(n.Contents, 10, 64)
	if err != nil {
		return value.NewErr("invalid number")
	}
	return value.NewLong(x)
}

func readDouble(n *parser.Node) value.Value {
	x, err := strconv.ParseFloat(n.Contents, 64)
	if err != nil {
		return value.NewErr("invalid number")
	}
	return value.NewDouble(x)
}

func readStr(n *parser.Node) value.Value {
	raw := n.Contents
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	return value.NewStr(value.Unescape(raw))
}
