// Package display renders formulas and samples for a terminal,
// colorizing formula operators and atoms the way the teacher's encode
// package colorizes syntax: a small table of named colors, looked up by
// kind, falling back to plain text when color is off or the output
// isn't a terminal. Samples are rendered as plain text.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/hsp-iit/learn-ltl/ltl"
	"github.com/hsp-iit/learn-ltl/sample"
)

// Colors is a lookup table from formula Kind to a color-formatting
// function, mirroring encode.Colors' Colorable->func(string,...any)string
// map, reduced to the one axis this module needs (operator kind)
// instead of the teacher's (node type, attribute) pair.
type Colors struct {
	Default func(string, ...any) string
	byKind  map[ltl.Kind]func(string, ...any) string
}

// NewColors builds the default palette: atoms green, unary temporal
// operators (X, G, F) one color, boolean connectives another, Until its
// own, and negation a third, distinct from both.
func NewColors() *Colors {
	c := &Colors{Default: plain}
	c.byKind = map[ltl.Kind]func(string, ...any) string{
		ltl.KindNot:      color.New(color.FgRed).SprintfFunc(),
		ltl.KindNext:     color.New(color.FgCyan).SprintfFunc(),
		ltl.KindGlobally: color.New(color.FgCyan).SprintfFunc(),
		ltl.KindFinally:  color.New(color.FgCyan).SprintfFunc(),
		ltl.KindAnd:      color.New(color.FgYellow).SprintfFunc(),
		ltl.KindOr:       color.New(color.FgYellow).SprintfFunc(),
		ltl.KindImplies:  color.New(color.FgYellow).SprintfFunc(),
		ltl.KindUntil:    color.New(color.FgMagenta).SprintfFunc(),
		ltl.KindAtom:     color.New(color.FgGreen).SprintfFunc(),
	}
	return c
}

func plain(s string, _ ...any) string { return s }

// Get returns the color function registered for k, or Default if none.
func (c *Colors) Get(k ltl.Kind) func(string, ...any) string {
	if f := c.byKind[k]; f != nil {
		return f
	}
	return c.Default
}

// Stdout wraps os.Stdout with go-colorable so ANSI escapes written by
// the color functions above render correctly on every platform the
// teacher's terminal tooling targets.
func Stdout() io.Writer {
	return colorable.NewColorableStdout()
}

// AutoColors returns NewColors() when w is a terminal, or a no-color
// table otherwise — the same "color only when attached to a tty" default
// the teacher's MainConfig.encOpts applies via isatty.IsTerminal.
func AutoColors(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return &Colors{Default: plain, byKind: map[ltl.Kind]func(string, ...any) string{}}
	}
	return NewColors()
}

// Formula renders f with each node's own color wrapped around just that
// node's operator glyph, leaving sub-formula text from recursive calls
// alone: And/Or/Implies/Until's color wraps only the "∧"/"∨"/"→"/"U"
// connective, not the surrounding parens or the operands.
func Formula(c *Colors, f *ltl.Formula, names []string) string {
	return formula(c, f, names)
}

func formula(c *Colors, f *ltl.Formula, names []string) string {
	switch f.Kind {
	case ltl.KindAtom:
		return c.Get(ltl.KindAtom)(atomName(f.Var, names))
	case ltl.KindNot:
		return c.Get(ltl.KindNot)("¬") + "(" + formula(c, f.Left, names) + ")"
	case ltl.KindNext:
		return c.Get(ltl.KindNext)("X") + "(" + formula(c, f.Left, names) + ")"
	case ltl.KindGlobally:
		return c.Get(ltl.KindGlobally)("G") + "(" + formula(c, f.Left, names) + ")"
	case ltl.KindFinally:
		return c.Get(ltl.KindFinally)("F") + "(" + formula(c, f.Left, names) + ")"
	case ltl.KindAnd:
		return "(" + formula(c, f.Left, names) + ")" + c.Get(ltl.KindAnd)("∧") + "(" + formula(c, f.Right, names) + ")"
	case ltl.KindOr:
		return "(" + formula(c, f.Left, names) + ")" + c.Get(ltl.KindOr)("∨") + "(" + formula(c, f.Right, names) + ")"
	case ltl.KindImplies:
		return "(" + formula(c, f.Left, names) + ")" + c.Get(ltl.KindImplies)("→") + "(" + formula(c, f.Right, names) + ")"
	case ltl.KindUntil:
		return "(" + formula(c, f.Left, names) + ")" + c.Get(ltl.KindUntil)("U") + "(" + formula(c, f.Right, names) + ")"
	}
	panic("display: unhandled formula kind")
}

func atomName(v int, names []string) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("x%d", v)
}

// Sample renders a one-line-per-trace summary of s: a "+"/"-" polarity
// marker and the trace's bit rows, the positive set first.
func Sample(w io.Writer, s *sample.Sample) {
	for _, tr := range s.Positive {
		fmt.Fprintf(w, "+ %s\n", tr)
	}
	for _, tr := range s.Negative {
		fmt.Fprintf(w, "- %s\n", tr)
	}
}
