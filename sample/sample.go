// Package sample holds labelled traces (the positive/negative examples
// a formula must separate) and the predicates the search driver checks
// candidates against.
package sample

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hsp-iit/learn-ltl/ltl"
	"github.com/hsp-iit/learn-ltl/trace"
)

// ErrDuplicateAcrossPolarity is returned by AddPositive/AddNegative when
// the trace being inserted already appears in the opposite-labelled set.
var ErrDuplicateAcrossPolarity = errors.New("sample: trace already labelled with the opposite polarity")

// Sample is a pair of labelled trace sets of fixed width N, plus the
// variable-name table for those N variables.
type Sample struct {
	N        int
	Positive []trace.Trace
	Negative []trace.Trace

	// Names holds a display name per variable index. A name prefixed
	// with "~" marks the variable hidden: it is excluded from Vars()
	// and therefore from atom generation, though it still participates
	// in evaluation and trace equality. Names defaults to x0..x{N-1}
	// when empty.
	Names []string
}

// New creates an empty sample of width n. If names is nil, variables
// display as x0..x{n-1}.
func New(n int, names []string) *Sample {
	s := &Sample{N: n, Names: names}
	if len(s.Names) < n {
		s.Names = defaultNames(n)
	}
	return s
}

func defaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i)
	}
	return names
}

// AddPositive inserts tr into the positive set. It is a no-op if tr is
// already present there (idempotent), and fails with
// ErrDuplicateAcrossPolarity if tr already appears in the negative set.
func (s *Sample) AddPositive(tr trace.Trace) error {
	return s.add(&s.Positive, s.Negative, tr)
}

// AddNegative is AddPositive's mirror image.
func (s *Sample) AddNegative(tr trace.Trace) error {
	return s.add(&s.Negative, s.Positive, tr)
}

func (s *Sample) add(into *[]trace.Trace, opposite []trace.Trace, tr trace.Trace) error {
	for _, o := range opposite {
		if tr.Equal(o, s.N) {
			return fmt.Errorf("%w: %s", ErrDuplicateAcrossPolarity, tr)
		}
	}
	for _, existing := range *into {
		if tr.Equal(existing, s.N) {
			return nil
		}
	}
	*into = append(*into, tr)
	return nil
}

// Vars returns the indices of the visible (non-"~"-prefixed) variables,
// in ascending order — the atoms the formula enumerator is allowed to
// generate.
func (s *Sample) Vars() []int {
	var out []int
	for i, name := range s.Names {
		if i >= s.N {
			break
		}
		if !strings.HasPrefix(name, "~") {
			out = append(out, i)
		}
	}
	return out
}

// IsConsistent reports whether f is true on every positive trace and
// false on every negative trace. The two polarities are interleaved so
// a counterexample on either side short-circuits the scan as early as
// possible, per the component design's recommendation.
func (s *Sample) IsConsistent(f *ltl.Formula) bool {
	pos, neg := s.Positive, s.Negative
	for i := 0; i < len(pos) || i < len(neg); i++ {
		if i < len(pos) && !ltl.Eval(f, pos[i]) {
			return false
		}
		if i < len(neg) && ltl.Eval(f, neg[i]) {
			return false
		}
	}
	return true
}

// IsSolvable reports whether the sample admits any consistent formula
// at all: it is false iff some positive trace and some negative trace
// are indistinguishable on every visible variable at every time step,
// since no formula (built only from visible atoms) could ever tell
// such a pair apart. When IsSolvable is false, search can return "no
// formula" without ever invoking the enumerator.
func (s *Sample) IsSolvable() bool {
	mask := s.visibleMask()
	for _, p := range s.Positive {
		for _, n := range s.Negative {
			if p.EqualMasked(n, mask) {
				return false
			}
		}
	}
	return true
}

func (s *Sample) visibleMask() trace.Valuation {
	var mask trace.Valuation
	for _, v := range s.Vars() {
		mask |= 1 << uint(v)
	}
	return mask
}
