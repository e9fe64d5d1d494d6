package ltl

import "testing"

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		f    *Formula
		want int
	}{
		{"atom", NewAtom(0), 1},
		{"not atom", NewNot(NewAtom(0)), 1},
		{"and two atoms", NewAnd(NewAtom(0), NewAtom(1)), 2},
		{"until nested", NewUntil(NewAtom(0), NewAnd(NewAtom(1), NewAtom(2))), 3},
		{"globally finally", NewGlobally(NewFinally(NewAtom(0))), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNumVars(t *testing.T) {
	f := NewAnd(NewAtom(0), NewOr(NewAtom(1), NewAtom(0)))
	if got := f.NumVars(); got != 2 {
		t.Errorf("NumVars() = %d, want 2", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Formula
		want int
	}{
		{"atom < not", NewAtom(0), NewNot(NewAtom(0)), -1},
		{"not < and", NewNot(NewAtom(0)), NewAnd(NewAtom(0), NewAtom(1)), -1},
		{"atom0 < atom1", NewAtom(0), NewAtom(1), -1},
		{"atom1 > atom0", NewAtom(1), NewAtom(0), 1},
		{"equal atoms", NewAtom(1), NewAtom(1), 0},
		{"and by left operand", NewAnd(NewAtom(0), NewAtom(5)), NewAnd(NewAtom(1), NewAtom(0)), -1},
		{"and by right operand when left ties", NewAnd(NewAtom(0), NewAtom(1)), NewAnd(NewAtom(0), NewAtom(2)), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompareSamePointerIsEqual(t *testing.T) {
	f := NewAtom(3)
	if Compare(f, f) != 0 {
		t.Errorf("Compare(f, f) should be 0")
	}
}

func TestStringNames(t *testing.T) {
	f := NewUntil(NewAtom(0), NewAtom(1))
	if got, want := f.String(), "(x0)U(x1)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	names := []string{"start", "goal"}
	if got, want := f.StringNames(names), "(start)U(goal)"; got != want {
		t.Errorf("StringNames() = %q, want %q", got, want)
	}
}
