package parser

import (
	pc "github.com/prataprc/goparsec"
)

// ast is the shared combinator-tree builder all grammar rules register
// their node names with, the same way its-hmny-nand2tetris/code/pkg/{asm,vm,jack}
// build one package-level *pc.AST per grammar.
var ast = pc.NewAST("lisp64", 256)

// exprRef is a thunk indirection so the mutually-recursive "expr" rule can
// be referenced by sexp/qexp before it is itself built from them — the
// usual trick for left-recursive-free, but self-referential, parser
// combinator grammars.
var exprRef pc.Parser

func exprThunk(s pc.Scanner) (pc.ParsecNode, pc.Scanner) { return exprRef(s) }

var (
	pComment = pc.Token(`;[^\r\n]*`, "comment")
	pString  = pc.Token(`"(\\.|[^"])*"`, "string")
	pBoolean = pc.Token(`#true|#false`, "boolean")
	pDouble  = pc.Token(`-?[0-9]+\.[0-9]+`, "double")
	pLong    = pc.Token(`-?[0-9]+`, "long")
	pNumber  = ast.OrdChoice("number", nil, pDouble, pLong)
	pSymbol  = pc.Token(`[A-Za-z0-9_+\-*/\\=<>!&^%]+`, "symbol")

	pLParen = pc.Atom("(", "(")
	pRParen = pc.Atom(")", ")")
	pLBrace = pc.Atom("{", "{")
	pRBrace = pc.Atom("}", "}")

	pSexp = ast.And("sexp", nil, pLParen, ast.Kleene("sexp-items", nil, pc.Parser(exprThunk)), pRParen)
	pQexp = ast.And("qexp", nil, pLBrace, ast.Kleene("qexp-items", nil, pc.Parser(exprThunk)), pRBrace)

	pExpr = ast.OrdChoice("expr", nil, pString, pComment, pNumber, pSymbol, pBoolean, pSexp, pQexp)

	// pTop is the grammar's entry point: a top-level sequence of expr.
	pTop = ast.Kleene("root", nil, pExpr)
)

func init() { exprRef = pExpr }
