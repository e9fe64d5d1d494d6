package sample

import (
	"errors"
	"testing"

	"github.com/hsp-iit/learn-ltl/ltl"
	"github.com/hsp-iit/learn-ltl/trace"
)

func v(bits ...bool) trace.Valuation { return trace.NewValuation(bits) }

func TestAddDuplicateAcrossPolarity(t *testing.T) {
	s := New(1, nil)
	if err := s.AddPositive(trace.Trace{v(true)}); err != nil {
		t.Fatal(err)
	}
	err := s.AddNegative(trace.Trace{v(true)})
	if !errors.Is(err, ErrDuplicateAcrossPolarity) {
		t.Fatalf("AddNegative() err = %v, want ErrDuplicateAcrossPolarity", err)
	}
}

func TestAddIdempotent(t *testing.T) {
	s := New(1, nil)
	tr := trace.Trace{v(true)}
	if err := s.AddPositive(tr); err != nil {
		t.Fatal(err)
	}
	if err := s.AddPositive(tr); err != nil {
		t.Fatal(err)
	}
	if len(s.Positive) != 1 {
		t.Fatalf("len(Positive) = %d, want 1 (idempotent insert)", len(s.Positive))
	}
}

func TestVarsExcludesHidden(t *testing.T) {
	s := New(3, []string{"a", "~hidden", "b"})
	got := s.Vars()
	want := []int{0, 2}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Vars() = %v, want %v", got, want)
	}
}

func TestIsSolvableIgnoresHiddenVariables(t *testing.T) {
	s := New(2, []string{"a", "~hidden"})
	if err := s.AddPositive(trace.Trace{v(true, false)}); err != nil {
		t.Fatal(err)
	}
	if err := s.AddNegative(trace.Trace{v(true, true)}); err != nil {
		t.Fatal(err)
	}
	if s.IsSolvable() {
		t.Fatalf("IsSolvable() = true, want false: traces agree on every visible variable")
	}
}

func TestIsSolvableTrue(t *testing.T) {
	s := New(1, nil)
	if err := s.AddPositive(trace.Trace{v(true)}); err != nil {
		t.Fatal(err)
	}
	if err := s.AddNegative(trace.Trace{v(false)}); err != nil {
		t.Fatal(err)
	}
	if !s.IsSolvable() {
		t.Fatalf("IsSolvable() = false, want true")
	}
}

func TestIsConsistent(t *testing.T) {
	s := New(2, nil)
	must(t, s.AddPositive(trace.Trace{v(true, true)}))
	must(t, s.AddNegative(trace.Trace{v(false, true)}))
	must(t, s.AddNegative(trace.Trace{v(true, false)}))
	must(t, s.AddNegative(trace.Trace{v(false, false)}))

	f := ltl.NewAnd(ltl.NewAtom(0), ltl.NewAtom(1))
	if !s.IsConsistent(f) {
		t.Fatalf("IsConsistent(x0 ∧ x1) = false, want true")
	}
	if s.IsConsistent(ltl.NewOr(ltl.NewAtom(0), ltl.NewAtom(1))) {
		t.Fatalf("IsConsistent(x0 ∨ x1) = true, want false")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestDuplicateAcrossPolarityAllowsOppositeOrder(t *testing.T) {
	s := New(1, nil)
	if err := s.AddNegative(trace.Trace{v(false)}); err != nil {
		t.Fatal(err)
	}
	err := s.AddPositive(trace.Trace{v(false)})
	if !errors.Is(err, ErrDuplicateAcrossPolarity) {
		t.Fatalf("AddPositive() err = %v, want ErrDuplicateAcrossPolarity", err)
	}
}
