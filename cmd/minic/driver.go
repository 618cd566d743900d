package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/you-not-fish/mini/internal/binder"
	"github.com/you-not-fish/mini/internal/checker"
	"github.com/you-not-fish/mini/internal/diag"
	"github.com/you-not-fish/mini/internal/syntax"
	"github.com/you-not-fish/mini/internal/types"
)

// driver runs pipeline phases for one command invocation.
type driver struct {
	stdout    io.Writer
	stderr    io.Writer
	trace     bool
	maxErrors int
}

func newDriver(c *cli.Context) *driver {
	return &driver{
		stdout:    c.App.Writer,
		stderr:    c.App.ErrWriter,
		trace:     c.Bool("trace"),
		maxErrors: c.Int("max-errors"),
	}
}

// unit is one source file moving through the pipeline.
type unit struct {
	filename string
	src      []byte
	lines    *syntax.LineTable
	diags    *diag.List

	mod      *syntax.Module
	bindings *binder.Bindings
	types    []*types.Type
	info     *checker.Info
}

// phase runs fn and, with --trace, reports how long it took.
func (d *driver) phase(name string, fn func()) {
	start := time.Now()
	fn()
	if d.trace {
		fmt.Fprintf(d.stderr, "trace: %-6s %v\n", name, time.Since(start))
	}
}

// load reads filename into a new unit.
func (d *driver) load(filename string) (*unit, error) {
	if filename == "" {
		return nil, tracerr.New("no input file")
	}
	var (
		src []byte
		err error
	)
	d.phase("read", func() {
		src, err = os.ReadFile(filename)
	})
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return &unit{
		filename: filename,
		src:      src,
		lines:    syntax.NewLineTable(filename, src),
		diags:    &diag.List{Max: d.maxErrors},
	}, nil
}

// parse builds the syntax tree of u.
func (d *driver) parse(u *unit) error {
	var err error
	d.phase("parse", func() {
		var s *syntax.Scanner
		s, err = syntax.NewScanner(bytes.NewReader(u.src))
		if err != nil {
			return
		}
		p := syntax.NewParser(s, u.diags.Handler(diag.Syntax))
		p.SetErrorLimit(d.maxErrors)
		u.mod = p.Parse()
	})
	return tracerr.Wrap(err)
}

// check binds and type-checks u. u must have been parsed.
func (d *driver) check(u *unit) {
	d.phase("bind", func() {
		u.bindings = binder.Bind(u.mod, u.diags.Handler(diag.Bind))
	})
	d.phase("check", func() {
		u.info = &checker.Info{}
		conf := &checker.Config{Error: u.diags.Handler(diag.Check)}
		u.types, _ = checker.Check(u.mod, u.bindings, conf, u.info)
	})
}

// compile loads, parses and checks filename.
func (d *driver) compile(filename string) (*unit, error) {
	u, err := d.load(filename)
	if err != nil {
		return nil, err
	}
	if err := d.parse(u); err != nil {
		return nil, err
	}
	d.check(u)
	return u, nil
}

// report prints the diagnostics of u to stderr, sorted by position, and
// returns their count.
func (d *driver) report(u *unit) int {
	u.diags.Sort()
	u.diags.Fprint(d.stderr, u.lines)
	return u.diags.Len() + u.diags.Dropped()
}
