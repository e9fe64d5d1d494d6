package enumerate

import "github.com/hsp-iit/learn-ltl/ltl"

// The predicates below implement the pruning rules of the component
// design: each rejects a candidate parent(child...) on the grounds that
// an equivalent, already-enumerated candidate of the same or smaller
// size exists elsewhere. Every rule here is a syntactic match on
// already-canonicalised children, so it runs in time proportional to
// the children's depth, not their size.
//
// Soundness of this rule set (every rejected formula has a kept
// equivalent of no greater size) is asserted, not proven, exactly as
// the source material's own comments warn for the comm+assoc rules;
// property-based testing (TestPruningSoundness in enumerate_test.go)
// spot-checks it rather than relying on it unverified.

func unaryAllowed(k ltl.Kind, child *ltl.Formula) bool {
	switch k {
	case ltl.KindNot:
		return notAllowed(child)
	case ltl.KindNext:
		return nextAllowed(child)
	case ltl.KindGlobally:
		return globallyAllowed(child)
	case ltl.KindFinally:
		return finallyAllowed(child)
	}
	panic("enumerate: unhandled unary kind")
}

func notAllowed(child *ltl.Formula) bool {
	switch child.Kind {
	case ltl.KindNot, ltl.KindImplies, ltl.KindFinally:
		return false
	case ltl.KindAnd, ltl.KindOr:
		if child.Left.Kind == ltl.KindNot || child.Right.Kind == ltl.KindNot {
			return false // De Morgan: ¬(¬a∧b) ≡ a∨¬b etc., already enumerable smaller
		}
	}
	return true
}

func nextAllowed(child *ltl.Formula) bool {
	switch child.Kind {
	case ltl.KindNot, ltl.KindGlobally, ltl.KindFinally:
		return false
	}
	return true
}

func globallyAllowed(child *ltl.Formula) bool {
	return child.Kind != ltl.KindGlobally
}

func finallyAllowed(child *ltl.Formula) bool {
	return child.Kind != ltl.KindFinally
}

func binaryAllowed(k ltl.Kind, l, r *ltl.Formula) bool {
	switch k {
	case ltl.KindAnd:
		return andAllowed(l, r)
	case ltl.KindOr:
		return orAllowed(l, r)
	case ltl.KindImplies:
		return impliesAllowed(l, r)
	case ltl.KindUntil:
		return untilAllowed(l, r)
	}
	panic("enumerate: unhandled binary kind")
}

func andAllowed(l, r *ltl.Formula) bool {
	if ltl.Compare(l, r) >= 0 {
		return false // commutative canonical form: require L < R
	}
	if l.Kind == ltl.KindAnd {
		return false // left-associative canonical form
	}
	if isNegationPair(l, r) {
		return false // excluded middle: And(phi, Not phi)
	}
	if l.Kind == ltl.KindNot && r.Kind == ltl.KindNot {
		return false // De Morgan
	}
	if l.Kind == ltl.KindNext && r.Kind == ltl.KindNext {
		return false // temporal distribution: G/X distribute over And
	}
	if l.Kind == ltl.KindGlobally && r.Kind == ltl.KindGlobally {
		return false
	}
	if absorbedBy(ltl.KindOr, l, r) {
		return false // And(Or(a,b), x) with x in {a,b}
	}
	if l.Kind == ltl.KindOr && r.Kind == ltl.KindOr && shareOperand(l, r) {
		return false // distributivity sharing: And(Or(a,b), Or(c,d))
	}
	if sharedBranchImplies(l, r) {
		return false
	}
	if l.Kind == ltl.KindUntil && r.Kind == ltl.KindUntil && ltl.Equal(l.Right, r.Right) {
		return false // And(Until(a,c), Until(b,c))
	}
	if fixpointUnfoldUnary(ltl.KindGlobally, l, r) {
		return false // And(x, Next(Globally x))
	}
	return true
}

func orAllowed(l, r *ltl.Formula) bool {
	if ltl.Compare(l, r) >= 0 {
		return false
	}
	if l.Kind == ltl.KindOr {
		return false // left-associative canonical form
	}
	if isNegationPair(l, r) {
		return false // excluded middle: Or(phi, Not phi)
	}
	if l.Kind == ltl.KindNot || r.Kind == ltl.KindNot {
		return false // Or(Not a, b) subsumed by Implies(a, b)
	}
	if l.Kind == ltl.KindNext && r.Kind == ltl.KindNext {
		return false
	}
	if l.Kind == ltl.KindFinally && r.Kind == ltl.KindFinally {
		return false
	}
	if absorbedBy(ltl.KindAnd, l, r) {
		return false // Or(And(a,b), x) with x in {a,b}
	}
	if l.Kind == ltl.KindAnd && r.Kind == ltl.KindAnd && shareOperand(l, r) {
		return false // distributivity sharing: Or(And(a,b), And(c,d))
	}
	if sharedBranchImplies(l, r) {
		return false
	}
	if l.Kind == ltl.KindUntil && r.Kind == ltl.KindUntil && ltl.Equal(l.Left, r.Left) {
		return false // Or(Until(a,b), Until(a,c))
	}
	if fixpointUnfoldUnary(ltl.KindFinally, l, r) {
		return false // Or(x, Next(Finally x))
	}
	if fixpointUnfoldUntil(l, r) {
		return false // Or(psi, And(phi, Next(Until(phi,psi))))
	}
	return true
}

func impliesAllowed(l, r *ltl.Formula) bool {
	if ltl.Equal(l, r) {
		return false // reflexivity: Implies(phi,phi) ≡ true
	}
	if l.Kind == ltl.KindNot {
		return false // Implies(Not a, b) ≡ Or(a, b)
	}
	if r.Kind == ltl.KindNot {
		return false // Implies(a, Not b) ≡ Not(And(b, a))
	}
	if r.Kind == ltl.KindImplies {
		return false // currying: a→(b→c) ≡ (a∧b)→c
	}
	return true
}

func untilAllowed(l, r *ltl.Formula) bool {
	if ltl.Equal(l, r) {
		return false // Until(a,a) ≡ a
	}
	if l.Kind == ltl.KindNext && r.Kind == ltl.KindNext {
		return false // commutation: X a U X b ≡ X(a U b)
	}
	if r.Kind == ltl.KindUntil && ltl.Equal(r.Left, l) {
		return false // fix-point absorption: a U (a U c) ≡ a U c
	}
	return true
}

// isNegationPair reports whether {l, r} is {phi, Not phi} in either
// assignment.
func isNegationPair(l, r *ltl.Formula) bool {
	return (l.Kind == ltl.KindNot && ltl.Equal(l.Left, r)) ||
		(r.Kind == ltl.KindNot && ltl.Equal(r.Left, l))
}

// absorbedBy reports whether one of l, r is compound(a, b) of kind
// `compound` and the other equals a or b — And(Or(a,b), a), etc., in
// either argument position.
func absorbedBy(compound ltl.Kind, l, r *ltl.Formula) bool {
	if l.Kind == compound && (ltl.Equal(l.Left, r) || ltl.Equal(l.Right, r)) {
		return true
	}
	if r.Kind == compound && (ltl.Equal(r.Left, l) || ltl.Equal(r.Right, l)) {
		return true
	}
	return false
}

// shareOperand reports whether l and r (both binary) share a structural
// operand: Equal(l.Left|l.Right, r.Left|r.Right) for any combination.
func shareOperand(l, r *ltl.Formula) bool {
	return ltl.Equal(l.Left, r.Left) || ltl.Equal(l.Left, r.Right) ||
		ltl.Equal(l.Right, r.Left) || ltl.Equal(l.Right, r.Right)
}

// sharedBranchImplies reports whether l and r are both Implies nodes
// sharing either their left (antecedent) or right (consequent) operand.
func sharedBranchImplies(l, r *ltl.Formula) bool {
	if l.Kind != ltl.KindImplies || r.Kind != ltl.KindImplies {
		return false
	}
	return ltl.Equal(l.Left, r.Left) || ltl.Equal(l.Right, r.Right)
}

// fixpointUnfoldUnary reports whether {l, r} is {x, Next(op x)} in
// either assignment, where op is Globally or Finally — the one-step
// unfolding of G/F's least/greatest fix-point characterisation.
func fixpointUnfoldUnary(op ltl.Kind, l, r *ltl.Formula) bool {
	match := func(a, b *ltl.Formula) bool {
		return a.Kind == ltl.KindNext && a.Left.Kind == op && ltl.Equal(a.Left.Left, b)
	}
	return match(l, r) || match(r, l)
}

// fixpointUnfoldUntil reports whether {l, r} is
// {psi, And(phi, Next(Until(phi, psi)))} in either assignment — the
// one-step unfolding of Until's fix-point characterisation
// psi ∨ (phi ∧ X(phi U psi)).
func fixpointUnfoldUntil(l, r *ltl.Formula) bool {
	matchAnd := func(andNode, psi *ltl.Formula) bool {
		if andNode.Kind != ltl.KindAnd {
			return false
		}
		pairs := [2][2]*ltl.Formula{
			{andNode.Left, andNode.Right},
			{andNode.Right, andNode.Left},
		}
		for _, p := range pairs {
			phi, nxt := p[0], p[1]
			if nxt.Kind != ltl.KindNext {
				continue
			}
			u := nxt.Left
			if u.Kind == ltl.KindUntil && ltl.Equal(u.Left, phi) && ltl.Equal(u.Right, psi) {
				return true
			}
		}
		return false
	}
	return matchAnd(l, r) || matchAnd(r, l)
}
