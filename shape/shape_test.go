package shape

import "testing"

func countLeaves(k *Skeleton) int {
	switch k.Arity {
	case 0:
		return 1
	case 1:
		return countLeaves(k.Left)
	default:
		return countLeaves(k.Left) + countLeaves(k.Right)
	}
}

// TestSkeletonsSizeExact checks Size() against the generation index s
// it was produced under, and countLeaves against the weaker bound that
// actually holds: a skeleton's leaf count never exceeds its generation
// index, since every Unary wrap consumes a generation step without
// adding a leaf, and only a skeleton built entirely without Unary nodes
// reaches leaf count == s.
func TestSkeletonsSizeExact(t *testing.T) {
	for s := 1; s <= 6; s++ {
		for _, k := range Skeletons(s) {
			if got := k.Size(); got != s {
				t.Fatalf("Skeletons(%d): Size() = %d", s, got)
			}
			if got := countLeaves(k); got > s {
				t.Fatalf("Skeletons(%d): countLeaves() = %d, want <= %d", s, got, s)
			}
		}
	}
}

func TestSkeletonsCount(t *testing.T) {
	// Motzkin-like count of unary/binary/leaf trees by generation index:
	// a(1)=1, a(n) = a(n-1) + sum_{l=1}^{n-1} a(l)*a(n-l).
	want := map[int]int{1: 1, 2: 2, 3: 6, 4: 22}
	memo := map[int]int{}
	var a func(int) int
	a = func(n int) int {
		if v, ok := memo[n]; ok {
			return v
		}
		if n == 1 {
			memo[1] = 1
			return 1
		}
		sum := a(n - 1)
		for l := 1; l < n; l++ {
			sum += a(l) * a(n-l)
		}
		memo[n] = sum
		return sum
	}
	for s, w := range want {
		if a(s) != w {
			t.Fatalf("test bug: a(%d) = %d, want %d", s, a(s), w)
		}
		if got := len(Skeletons(s)); got != w {
			t.Fatalf("len(Skeletons(%d)) = %d, want %d", s, got, w)
		}
	}
}

func TestSkeletonsDeterministic(t *testing.T) {
	a := Skeletons(5)
	b := Skeletons(5)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic order/sharing at index %d", i)
		}
	}
}
