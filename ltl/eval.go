package ltl

import "github.com/hsp-iit/learn-ltl/trace"

// Eval evaluates f on trace tr at position 0. It is a pure, total
// function of (f, tr) for every finite tr; Eval is safe to call
// concurrently from many goroutines since neither f nor tr is mutated.
//
// An Atom referencing a variable index that the trace does not carry is
// a precondition violation (an invalid sample could never produce one)
// and is not checked here; callers validate sample arity once, at the
// boundary, in package sample.
func Eval(f *Formula, tr trace.Trace) bool {
	switch f.Kind {
	case KindAtom:
		return len(tr) > 0 && tr[0].Get(f.Var)
	case KindNot:
		return !Eval(f.Left, tr)
	case KindNext:
		return len(tr) > 0 && Eval(f.Left, tr[1:])
	case KindGlobally:
		return evalGlobally(f.Left, tr)
	case KindFinally:
		return evalFinally(f.Left, tr)
	case KindAnd:
		return Eval(f.Left, tr) && Eval(f.Right, tr)
	case KindOr:
		return Eval(f.Left, tr) || Eval(f.Right, tr)
	case KindImplies:
		return !Eval(f.Left, tr) || Eval(f.Right, tr)
	case KindUntil:
		return evalUntil(f.Left, f.Right, tr)
	}
	panic("ltl: unhandled formula kind in Eval")
}

// evalGlobally folds from the right (shortest suffix first): Globally
// is vacuously true on the empty trace, and on a non-empty trace it is
// true for the whole trace only if it is true for every suffix,
// including the last (shortest) one first so a single false sub-result
// short-circuits the rest of the scan.
func evalGlobally(f *Formula, tr trace.Trace) bool {
	for i := len(tr) - 1; i >= 0; i-- {
		if !Eval(f, tr[i:]) {
			return false
		}
	}
	return true
}

// evalFinally is evalGlobally's dual: false on the empty trace, true as
// soon as any suffix (again shortest first) satisfies f.
func evalFinally(f *Formula, tr trace.Trace) bool {
	for i := len(tr) - 1; i >= 0; i-- {
		if Eval(f, tr[i:]) {
			return true
		}
	}
	return false
}

// evalUntil implements the fix-point recurrence
//
//	U(τ) = τ≠∅ ∧ (ψ(τ) ∨ (φ(τ) ∧ U(τ[1:])))
//
// as a straight left-to-right loop over suffixes with early exit on
// ψ-true or φ-false, avoiding recursion depth proportional to trace
// length.
func evalUntil(phi, psi *Formula, tr trace.Trace) bool {
	for i := 0; i < len(tr); i++ {
		suffix := tr[i:]
		if Eval(psi, suffix) {
			return true
		}
		if !Eval(phi, suffix) {
			return false
		}
	}
	return false
}
