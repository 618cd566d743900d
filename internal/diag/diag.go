// Package diag collects the diagnostics of one compilation and renders them
// with file:line:col positions.
package diag

import (
	"fmt"
	"io"
	"sort"

	"github.com/you-not-fish/mini/internal/syntax"
)

// Stage is the pipeline stage that reported a diagnostic.
type Stage int

const (
	Syntax Stage = iota
	Bind
	Check
)

var stageNames = [...]string{
	Syntax: "syntax",
	Bind:   "bind",
	Check:  "check",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Stage Stage
	Pos   syntax.Pos
	Msg   string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Msg)
}

// List is an ordered collection of diagnostics. The zero List is ready to
// use. Once Max diagnostics have been collected further ones are counted
// but dropped.
type List struct {
	Max int // 0 means no limit

	diags   []*Diagnostic
	dropped int
}

// Add appends a diagnostic.
func (l *List) Add(stage Stage, pos syntax.Pos, msg string) {
	if l.Max > 0 && len(l.diags) >= l.Max {
		l.dropped++
		return
	}
	l.diags = append(l.diags, &Diagnostic{Stage: stage, Pos: pos, Msg: msg})
}

// Handler returns an error handler that adds to l under stage. Its type
// converts to syntax.ErrorHandler, binder.ErrorHandler and
// checker.ErrorHandler.
func (l *List) Handler(stage Stage) func(pos syntax.Pos, msg string) {
	return func(pos syntax.Pos, msg string) {
		l.Add(stage, pos, msg)
	}
}

// Len returns the number of collected diagnostics.
func (l *List) Len() int { return len(l.diags) }

// Dropped returns the number of diagnostics dropped after Max was reached.
func (l *List) Dropped() int { return l.dropped }

// Diagnostics returns the collected diagnostics.
func (l *List) Diagnostics() []*Diagnostic { return l.diags }

// Count returns the number of diagnostics reported by stage.
func (l *List) Count(stage Stage) int {
	n := 0
	for _, d := range l.diags {
		if d.Stage == stage {
			n++
		}
	}
	return n
}

// Sort orders the diagnostics by position. Diagnostics at the same
// position keep the order they were added in.
func (l *List) Sort() {
	sort.SliceStable(l.diags, func(i, j int) bool {
		return l.diags[i].Pos < l.diags[j].Pos
	})
}

// Err returns the first diagnostic as an error, or nil if there is none.
func (l *List) Err() error {
	if len(l.diags) == 0 {
		return nil
	}
	return l.diags[0]
}

// Fprint writes one line per diagnostic to w, as "file:line:col: msg".
// Positions are resolved with lt; a nil lt prints raw offsets.
func (l *List) Fprint(w io.Writer, lt *syntax.LineTable) {
	for _, d := range l.diags {
		if lt != nil {
			fmt.Fprintf(w, "%s: %s\n", lt.Position(d.Pos), d.Msg)
		} else {
			fmt.Fprintf(w, "%s\n", d.Error())
		}
	}
	if l.dropped > 0 {
		fmt.Fprintf(w, "too many errors (%d more)\n", l.dropped)
	}
}
