// Package enumerate labels formula skeletons (package shape) with
// operators and atoms, applying the algebraic-equivalence pruning rules
// that keep candidate formulas from duplicating each other's semantics.
// This is the component the system overview calls "the hard part": the
// number of unlabelled trees already grows fast, and the pruning rules
// are what keep the labelled output usable.
package enumerate

import (
	"github.com/hsp-iit/learn-ltl/ltl"
	"github.com/hsp-iit/learn-ltl/shape"
)

var unaryOps = [...]ltl.Kind{ltl.KindNot, ltl.KindNext, ltl.KindGlobally, ltl.KindFinally}
var binaryOps = [...]ltl.Kind{ltl.KindAnd, ltl.KindOr, ltl.KindImplies, ltl.KindUntil}

func buildUnary(k ltl.Kind, child *ltl.Formula) *ltl.Formula {
	switch k {
	case ltl.KindNot:
		return ltl.NewNot(child)
	case ltl.KindNext:
		return ltl.NewNext(child)
	case ltl.KindGlobally:
		return ltl.NewGlobally(child)
	case ltl.KindFinally:
		return ltl.NewFinally(child)
	}
	panic("enumerate: unhandled unary kind")
}

func buildBinary(k ltl.Kind, l, r *ltl.Formula) *ltl.Formula {
	switch k {
	case ltl.KindAnd:
		return ltl.NewAnd(l, r)
	case ltl.KindOr:
		return ltl.NewOr(l, r)
	case ltl.KindImplies:
		return ltl.NewImplies(l, r)
	case ltl.KindUntil:
		return ltl.NewUntil(l, r)
	}
	panic("enumerate: unhandled binary kind")
}

// Enumerator labels skeletons for a fixed set of visible variable
// indices, memoizing the formulas produced for each skeleton so that a
// sub-tree shared by many parent skeletons (package shape shares
// skeleton nodes by reference across sizes) is labelled exactly once
// and its results handed out by shared handle, never rebuilt.
type Enumerator struct {
	vars  []int
	cache map[*shape.Skeleton][]*ltl.Formula
}

// New creates an Enumerator that labels atoms with the given variable
// indices (typically sample.Sample.Vars()).
func New(vars []int) *Enumerator {
	return &Enumerator{
		vars:  vars,
		cache: make(map[*shape.Skeleton][]*ltl.Formula),
	}
}

// Label returns every canonical formula whose tree shape equals k.
func (e *Enumerator) Label(k *shape.Skeleton) []*ltl.Formula {
	if out, ok := e.cache[k]; ok {
		return out
	}
	var out []*ltl.Formula
	switch k.Arity {
	case 0:
		out = make([]*ltl.Formula, len(e.vars))
		for i, v := range e.vars {
			out[i] = ltl.NewAtom(v)
		}
	case 1:
		children := e.Label(k.Left)
		for _, child := range children {
			for _, op := range unaryOps {
				if unaryAllowed(op, child) {
					out = append(out, buildUnary(op, child))
				}
			}
		}
	case 2:
		lefts := e.Label(k.Left)
		rights := e.Label(k.Right)
		for _, l := range lefts {
			for _, r := range rights {
				for _, op := range binaryOps {
					if binaryAllowed(op, l, r) {
						out = append(out, buildBinary(op, l, r))
					}
				}
			}
		}
	default:
		panic("enumerate: skeleton arity must be 0, 1, or 2")
	}
	e.cache[k] = out
	return out
}

// Formulas enumerates every canonical formula of the given size over
// vars: the flat-map of Label across Skeletons(size), as the search
// driver consumes it. Each call builds a fresh Enumerator, so results
// are not shared across sizes; callers that enumerate many sizes in a
// single search (package search) keep one Enumerator alive across the
// whole run instead of calling this repeatedly.
func Formulas(size int, vars []int) []*ltl.Formula {
	e := New(vars)
	var out []*ltl.Formula
	for _, k := range shape.Skeletons(size) {
		out = append(out, e.Label(k)...)
	}
	return out
}
