package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/you-not-fish/mini/internal/emit"
	"github.com/you-not-fish/mini/internal/project"
	"github.com/you-not-fish/mini/internal/syntax"
)

// errDiagnostics is returned by commands that printed diagnostics.
var errDiagnostics = cli.Exit("", 1)

// tokensAction prints one token per line: offset, kind and text.
func tokensAction(c *cli.Context) error {
	d := newDriver(c)
	u, err := d.load(c.Args().First())
	if err != nil {
		return fail(c, err)
	}
	s, err := syntax.NewScanner(bytes.NewReader(u.src))
	if err != nil {
		return fail(c, tracerr.Wrap(err))
	}

	fmt.Fprintf(d.stdout, "%-8s %-12s %s\n", "OFFSET", "TOKEN", "TEXT")
	for ; ; s.Next() {
		fmt.Fprintf(d.stdout, "%-8s %-12s %s\n", s.Pos(), s.Token(), formatLiteral(s.Text()))
		if s.Token() == syntax.EOF {
			break
		}
	}
	return nil
}

// formatLiteral quotes token text for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// parseAction prints the syntax tree of a file.
func parseAction(c *cli.Context) error {
	d := newDriver(c)
	u, err := d.load(c.Args().First())
	if err != nil {
		return fail(c, err)
	}
	if err := d.parse(u); err != nil {
		return fail(c, err)
	}

	switch format := c.String("format"); format {
	case "text":
		syntax.Fprint(d.stdout, u.mod)
	case "json":
		if err := syntax.FprintJSON(d.stdout, u.mod); err != nil {
			return fail(c, tracerr.Wrap(err))
		}
	case "repr":
		fmt.Fprintln(d.stdout, repr.String(u.mod, repr.Indent("  "), repr.OmitEmpty(true)))
	default:
		return cli.Exit(fmt.Sprintf("minic: unknown format %q", format), 2)
	}

	if d.report(u) > 0 {
		return errDiagnostics
	}
	return nil
}

// checkAction runs the whole pipeline except emission.
func checkAction(c *cli.Context) error {
	d := newDriver(c)
	u, err := d.compile(c.Args().First())
	if err != nil {
		return fail(c, err)
	}

	if c.Bool("types") {
		for i, t := range u.types {
			name := "-"
			if t != nil {
				name = t.String()
			}
			fmt.Fprintf(d.stdout, "%d: %s\n", i+1, name)
		}
	}

	if d.report(u) > 0 {
		return errDiagnostics
	}
	return nil
}

// emitAction checks a file and prints the emitted text. The text is printed
// even when there are diagnostics.
func emitAction(c *cli.Context) error {
	d := newDriver(c)
	u, err := d.compile(c.Args().First())
	if err != nil {
		return fail(c, err)
	}

	conf := emit.Config{TypeArguments: c.Bool("type-args")}
	var out string
	d.phase("emit", func() {
		out = conf.Emit(u.mod.Stmts)
	})
	fmt.Fprintln(d.stdout, out)

	if d.report(u) > 0 {
		return errDiagnostics
	}
	return nil
}

// initAction writes a new manifest.
func initAction(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return cli.Exit("minic: no project name provided", 2)
	}
	path := filepath.Join(c.String("dir"), project.FileName)
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return cli.Exit(fmt.Sprintf("minic: %s already exists", path), 1)
	}

	m := project.New(name)
	if err := project.Save(m, path); err != nil {
		return fail(c, err)
	}
	fmt.Fprintf(c.App.Writer, "wrote %s\n", m.Path)
	return nil
}

// buildAction checks every source named by the manifest and writes the
// emitted text of each file into the output directory.
func buildAction(c *cli.Context) error {
	m, err := project.Load(c.String("manifest"))
	if err != nil {
		return fail(c, err)
	}
	files, err := m.Files()
	if err != nil {
		return fail(c, err)
	}

	d := newDriver(c)
	if d.maxErrors == 0 {
		d.maxErrors = m.MaxErrors
	}
	conf := emit.Config{TypeArguments: m.Emit.TypeArguments || c.Bool("type-args")}

	failed := 0
	for _, file := range files {
		u, err := d.compile(file)
		if err != nil {
			return fail(c, err)
		}
		if d.report(u) > 0 {
			failed++
			continue
		}

		out := m.OutputPath(file)
		if out == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fail(c, tracerr.Wrap(err))
		}
		if err := os.WriteFile(out, []byte(conf.Emit(u.mod.Stmts)+"\n"), 0o644); err != nil {
			return fail(c, tracerr.Wrap(err))
		}
	}

	fmt.Fprintf(c.App.Writer, "%s: %d files, %d with errors\n", m.Name, len(files), failed)
	if failed > 0 {
		return errDiagnostics
	}
	return nil
}
