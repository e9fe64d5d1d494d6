// Package shape enumerates formula "skeletons": unlabelled trees whose
// nodes have arity 0 (leaf), 1, or 2, fixing tree shape before the
// enumerate package assigns operators and atoms to it.
package shape

import "sync"

// Skeleton is an unlabelled tree node shared by reference among every
// enumeration task that uses it as a sub-tree; it is built once and
// never mutated.
type Skeleton struct {
	Arity int // 0, 1, or 2
	Left  *Skeleton
	Right *Skeleton
	size  int
}

// Size returns the generation index s this skeleton was produced under
// by Skeletons(s): the recursive budget consumed to build it, one per
// leaf and one per Unary wrap, while a Binary node splits its index
// between its two children and adds nothing. It is an upper bound on the skeleton's leaf count, not the
// leaf count itself — Unary(K') is generated from K' at s-1 and placed
// in bucket s without adding a leaf, so a tall chain of unary wraps over
// a single leaf sits at whatever generation index its height requires
// while still counting one leaf. ltl.Formula.Size, by contrast, counts
// leaves exactly, per the definition of formula size; the two agree
// only on skeletons built without any unary node.
func (k *Skeleton) Size() int { return k.size }

var leaf = &Skeleton{Arity: 0, size: 1}

type cache struct {
	mu  sync.Mutex
	byN map[int][]*Skeleton
}

var shared = &cache{byN: map[int][]*Skeleton{}}

// Skeletons enumerates every unlabelled tree at generation index s. s
// must be >= 1. Results for every index up to s are memoized and shared
// by reference, matching the "produced on demand, never mutated"
// lifecycle the data model calls for. The order of emission is
// deterministic across calls.
func Skeletons(s int) []*Skeleton {
	if s < 1 {
		panic("shape: size must be >= 1")
	}
	shared.mu.Lock()
	defer shared.mu.Unlock()
	return shared.skeletons(s)
}

// skeletons must be called with shared.mu held.
func (c *cache) skeletons(s int) []*Skeleton {
	if ks, ok := c.byN[s]; ok {
		return ks
	}
	if s == 1 {
		c.byN[1] = []*Skeleton{leaf}
		return c.byN[1]
	}

	var out []*Skeleton

	// Unary(K') for each K' of size s-1.
	for _, child := range c.skeletons(s - 1) {
		out = append(out, &Skeleton{Arity: 1, Left: child, size: s})
	}

	// Binary(Kl, Kr) for each split s = l + r, l,r >= 1.
	for l := 1; l <= s-1; l++ {
		r := s - l
		lefts := c.skeletons(l)
		rights := c.skeletons(r)
		for _, lk := range lefts {
			for _, rk := range rights {
				out = append(out, &Skeleton{Arity: 2, Left: lk, Right: rk, size: s})
			}
		}
	}

	c.byN[s] = out
	return out
}
