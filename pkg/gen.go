package pkg

import (
	"math/rand"

	"golang.org/x/exp/slices"
)

// Inclusive upper bounds of generated values. Lower bound is always 0.
const (
	RandomValueMax   = 5000
	RepeatedValueMax = 100
)

// Generator builds the input sequences of one experiment size.
type Generator struct {
	// Rand is the value source. Nil uses the global math/rand source.
	Rand        *rand.Rand
	RandomMax   int
	RepeatedMax int
}

func NewGenerator(rng *rand.Rand, cfg Config) Generator {
	return Generator{
		Rand:        rng,
		RandomMax:   cfg.RandomMax,
		RepeatedMax: cfg.RepeatedMax,
	}
}

func (g Generator) intn(n int) int {
	if g.Rand == nil {
		return rand.Intn(n)
	}
	return g.Rand.Intn(n)
}

func (g Generator) uniform(size, hi int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = g.intn(hi + 1)
	}
	return out
}

// TestCases returns one sequence per entry of Cases, in that order:
// random values, the same values sorted, sorted reversed and an independent
// draw from the narrow repeated range.
func (g Generator) TestCases(size int) [][]int {
	random := g.uniform(size, g.RandomMax)

	sorted := slices.Clone(random)
	slices.Sort(sorted)

	reversed := make([]int, size)
	for i, v := range sorted {
		reversed[size-1-i] = v
	}

	repeated := g.uniform(size, g.RepeatedMax)

	return [][]int{random, sorted, reversed, repeated}
}

// GenerateTestCases draws the four sequences with the default value bounds.
func GenerateTestCases(rng *rand.Rand, size int) [][]int {
	return Generator{Rand: rng, RandomMax: RandomValueMax, RepeatedMax: RepeatedValueMax}.TestCases(size)
}
