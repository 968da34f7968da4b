package pkg

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// PivotFunc picks the pivot index of a subsequence of length n, n > 1.
type PivotFunc func(n int) int

// FirstPivot always picks the first element.
func FirstPivot(int) int {
	return 0
}

// RandomPivot picks a uniformly random index drawn from rng.
// A nil rng uses the global math/rand source.
func RandomPivot(rng *rand.Rand) PivotFunc {
	if rng == nil {
		return rand.Intn
	}
	return rng.Intn
}

// Engine selects how the partition steps are driven.
type Engine int

const (
	// Iterative keeps pending subsequences on an explicit stack, so depth is
	// bounded only by memory.
	Iterative Engine = iota
	// Recursive calls itself once per subsequence. Worst-case depth equals the
	// input length, see Config.MaxStack.
	Recursive
)

func (e Engine) String() string {
	switch e {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	}
	return fmt.Sprintf("Engine(%d)", int(e))
}

func ParseEngine(s string) (Engine, error) {
	switch s {
	case "iterative":
		return Iterative, nil
	case "recursive":
		return Recursive, nil
	}
	return 0, errors.Errorf("unknown engine %q", s)
}

// SortStats counts the work of one or more sort calls. A nil *SortStats is valid
// and counts nothing.
type SortStats struct {
	Partitions  int
	Comparisons int
	MaxDepth    int
}

func (st *SortStats) enter(n, depth int) {
	if st == nil {
		return
	}
	st.Partitions++
	st.Comparisons += n
	st.MaxDepth = max(st.MaxDepth, depth+1)
}

// Quicksort returns a new slice holding the values of s in non-decreasing
// order. Every partition step splits its subsequence into less / equal /
// greater slices around the chosen pivot; nothing is sorted in place.
// Inputs of length <= 1 are returned as is. NaN values terminate but leave
// the order unspecified.
func Quicksort[T constraints.Ordered](s []T, pivot PivotFunc, engine Engine, stats *SortStats) []T {
	if len(s) <= 1 {
		return s
	}

	if engine == Recursive {
		return quicksortRecursive(s, pivot, stats, 0)
	}
	return quicksortIterative(s, pivot, stats)
}

// DeterministicQuicksort sorts with the first element as pivot.
func DeterministicQuicksort[T constraints.Ordered](s []T) []T {
	return Quicksort(s, FirstPivot, Iterative, nil)
}

// RandomizedQuicksort sorts with a uniformly random pivot.
func RandomizedQuicksort[T constraints.Ordered](s []T) []T {
	return Quicksort(s, RandomPivot(nil), Iterative, nil)
}

func partition[T constraints.Ordered](s []T, pivot T) (less, equal, greater []T) {
	for _, x := range s {
		switch {
		case x < pivot:
			less = append(less, x)
		case pivot < x:
			greater = append(greater, x)
		default:
			// Incomparable values (NaN) join the pivot, so every step shrinks.
			equal = append(equal, x)
		}
	}
	return
}

func quicksortRecursive[T constraints.Ordered](s []T, pivot PivotFunc, stats *SortStats, depth int) []T {
	if len(s) <= 1 {
		return s
	}

	stats.enter(len(s), depth)
	less, equal, greater := partition(s, s[pivot(len(s))])

	out := make([]T, 0, len(s))
	out = append(out, quicksortRecursive(less, pivot, stats, depth+1)...)
	out = append(out, equal...)
	return append(out, quicksortRecursive(greater, pivot, stats, depth+1)...)
}

type frame[T any] struct {
	s     []T
	depth int
	// done marks an equal-to-pivot group, copied to the output as is.
	done bool
}

func quicksortIterative[T constraints.Ordered](s []T, pivot PivotFunc, stats *SortStats) []T {
	out := make([]T, 0, len(s))
	stack := []frame[T]{{s: s}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.done || len(f.s) <= 1 {
			out = append(out, f.s...)
			continue
		}

		stats.enter(len(f.s), f.depth)
		less, equal, greater := partition(f.s, f.s[pivot(len(f.s))])

		// Pushed in reverse so less is emitted first.
		stack = append(stack,
			frame[T]{s: greater, depth: f.depth + 1},
			frame[T]{s: equal, done: true},
			frame[T]{s: less, depth: f.depth + 1},
		)
	}
	return out
}
