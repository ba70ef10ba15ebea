package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kievzenit/konsol/internal/ast"
	"github.com/kievzenit/konsol/internal/compiler_errors"
	"github.com/kievzenit/konsol/internal/config"
	"github.com/kievzenit/konsol/internal/evaluator"
	l "github.com/kievzenit/konsol/internal/lexer"
	"github.com/kievzenit/konsol/internal/parser"
	"github.com/sanity-io/litter"
)

const Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("konsol", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: konsol [options] <file>\n       konsol [options] -e <source>\n\nOptions:\n")
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "YAML run configuration")
	dialect := flags.String("dialect", l.ASCII.Name, fmt.Sprintf("keyword dialect %v", l.DialectNames()))
	dumpTokens := flags.Bool("tokens", false, "print the token stream before running")
	dumpAST := flags.Bool("ast", false, "print the AST before running")
	astFormat := flags.String("ast-format", "litter", "AST output format (litter or text)")
	inline := flags.String("e", "", "run source given on the command line")
	version := flags.Bool("version", false, "print version")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "konsol version %s\n", Version)
		return 0
	}

	if *astFormat != "litter" && *astFormat != "text" {
		fmt.Fprintf(stderr, "unknown -ast-format %q\n", *astFormat)
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cfg = loaded
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dialect":
			cfg.Dialect = *dialect
		case "tokens":
			cfg.DumpTokens = *dumpTokens
		case "ast":
			cfg.DumpAST = *dumpAST
		}
	})

	d, err := l.LookupDialect(cfg.Dialect)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	var source []byte
	switch {
	case *inline != "":
		source = []byte(*inline)
	case flags.NArg() == 1:
		source, err = os.ReadFile(flags.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	default:
		flags.Usage()
		return 2
	}

	eh := compiler_errors.NewErrorHandler(stderr)

	tokens, err := l.NewLexer(source, d).Tokenize()
	if err != nil {
		eh.AddError(compiler_errors.FromError(err))
		return eh.Report()
	}
	if cfg.DumpTokens {
		for i := range tokens {
			fmt.Fprintln(stdout, tokens[i].String())
		}
	}

	program, err := parser.ParseProgram(tokens)
	if err != nil {
		eh.AddError(compiler_errors.FromError(err))
		return eh.Report()
	}
	if cfg.DumpAST {
		if *astFormat == "text" {
			fmt.Fprint(stdout, ast.Format(program))
		} else {
			fmt.Fprintln(stdout, litter.Sdump(program))
		}
	}

	if err := evaluator.Evaluate(program, evaluator.NewBindings(), stdout); err != nil {
		eh.AddError(compiler_errors.FromError(err))
		return eh.Report()
	}

	return 0
}
