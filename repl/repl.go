// Package repl implements the interactive read-eval-print loop. File
// loading is driven separately by the load builtin, which only prints
// a top-level form's result when it is an Err (see builtins/io.Load).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bms-1984/lisp64/eval"
	"github.com/bms-1984/lisp64/parser"
	"github.com/bms-1984/lisp64/reader"
	"github.com/bms-1984/lisp64/value"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Prompt is the interactive prompt string; REPL renders it with
// promptStyle.
const Prompt = "> "

// Quit is the token that terminates an interactive session when it
// appears anywhere in an input line, per §4.6.
const Quit = ";quit"

// REPL drives an interactive read-eval-print loop over in/out until EOF
// or a line containing Quit is read.
func REPL(env *value.Env, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	p := parser.New()

	for {
		fmt.Fprint(out, promptStyle.Render(Prompt))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.Contains(line, Quit) {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(env, p, line, out)
	}
	if err := scanner.Err(); err != nil {
		slog.Error("repl input", "error", err)
	}
}

func evalLine(env *value.Env, p *parser.Parser, line string, out io.Writer) {
	node, err := p.ParseString(line)
	if err != nil {
		fmt.Fprintln(out, errStyle.Render(fmt.Sprintf("Error: %v", err)))
		return
	}
	top, ok := reader.Read(node).(*value.SExp)
	if !ok {
		return
	}
	for _, form := range top.Cells() {
		printResult(eval.Eval(env, form), out)
	}
}

func printResult(v value.Value, out io.Writer) {
	if value.IsErr(v) {
		fmt.Fprintln(out, errStyle.Render(v.String()))
		return
	}
	fmt.Fprintln(out, resultStyle.Render(v.String()))
}
