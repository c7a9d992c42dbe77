package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/peng1999/symrs"
)

func main() {
	log.SetFlags(0)
	var (
		inname         string
		nl, echo, syms bool
		ascii          bool
		depth          int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&syms, "symbols", false, "list interned symbols after printing")
	flag.BoolVar(&ascii, "ascii", false, "do not accept × and ÷ as operators")
	flag.IntVar(&depth, "depth", 0, "maximum nesting depth (0 for no limit)")
	flag.Parse()
	if depth < 0 {
		log.Fatalf("depth (%d) must not be negative", depth)
	}

	opts := []symrs.ParseOption{symrs.MaxDepth(depth)}
	if ascii {
		opts = append(opts, symrs.DisableAltOperators())
	}
	tab := symrs.NewTable()

	if inname == "" && flag.NArg() == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		repl(tab, opts, echo)
		return
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		b, err := io.ReadAll(f)
		if err != nil {
			log.Fatal(errors.Wrap(err, "reading input"))
		}
		if nl {
			for _, line := range strings.Split(string(b), "\n") {
				if strings.TrimSpace(line) != "" {
					srcs = append(srcs, line)
				}
			}
		} else {
			srcs = append(srcs, string(b))
		}
	}
	srcs = append(srcs, flag.Args()...)

	var p []symrs.Expr
	for _, src := range srcs {
		a, err := parseAll(tab, src, opts)
		if err != nil {
			log.Fatal(err)
		}
		p = append(p, a...)
	}

	for _, a := range p {
		show(a, echo)
	}
	if syms {
		for _, name := range tab.Names() {
			fmt.Println(name)
		}
	}
}

// parseAll parses consecutive expressions from src until only whitespace is
// left.
func parseAll(tab *symrs.Table, src string, opts []symrs.ParseOption) ([]symrs.Expr, error) {
	var r []symrs.Expr
	rest := strings.TrimSpace(src)
	for rest != "" {
		a, more, err := symrs.Parse(tab, rest, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", rest)
		}
		r = append(r, a)
		rest = more
	}
	return r, nil
}

func show(a symrs.Expr, echo bool) {
	if echo {
		fmt.Printf("%+v : ", a)
	}
	fmt.Println(a)
}

func repl(tab *symrs.Table, opts []symrs.ParseOption, echo bool) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, err := symrs.ParseString(tab, line, opts...)
		if err != nil {
			fmt.Printf("symrs: %v\n", err)
			continue
		}
		show(a, echo)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", inname)
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
