// Command liz is the Liz interpreter driver: given file arguments it
// loads and evaluates each one; given none it starts an interactive
// read-eval-print loop.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/bms-1984/lisp64/builtins/io"
	"github.com/bms-1984/lisp64/repl"
	"github.com/bms-1984/lisp64/stdlib"
	"github.com/bms-1984/lisp64/value"
)

var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

// CLI is the top-level command-line interface for liz.
type CLI struct {
	LogLevel string   `default:"info" enum:"debug,info,warn,error" help:"Set log level (${enum})" name:"log-level"`
	Files    []string `arg:"" optional:"" help:"Liz source files to load and evaluate; omit to start a REPL (type ${quitToken} to exit)" name:"file" type:"existingfile"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("liz"),
		kong.Description("A small Lisp dialect interpreter."),
		kong.UsageOnError(),
		kong.Vars{
			"quitToken": repl.Quit,
			"prompt":    repl.Prompt,
		},
	)

	configureLogging(cli.LogLevel)

	env := stdlib.New()

	if len(cli.Files) == 0 {
		fmt.Println(bannerStyle.Render("Liz version 0.0.1"))
		fmt.Println(bannerStyle.Render("Type " + repl.Quit + " to exit"))
		repl.REPL(env, os.Stdin, os.Stdout)
		return
	}

	for _, path := range cli.Files {
		result := io.Load(env, value.NewSExp(value.NewStr(path)))
		if value.IsErr(result) {
			fmt.Println(result.String())
		}
	}
}

func configureLogging(level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
