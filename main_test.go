package main_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"qsortbench/pkg"
)

// Test_SortedCase500 walks the reference scenario: 500 already sorted values.
func Test_SortedCase500(t *testing.T) {
	const size = 500
	inputs := pkg.GenerateTestCases(rand.New(rand.NewSource(500)), size)
	sorted := inputs[pkg.SortedCase.Index()]
	original := slices.Clone(sorted)

	t.Run("Deterministic", func(t *testing.T) {
		var stats pkg.SortStats
		t0 := time.Now()
		got := pkg.Quicksort(sorted, pkg.FirstPivot, pkg.Iterative, &stats)
		since_t0 := time.Since(t0)

		if !slices.Equal(got, original) {
			t.Fatal("deterministic result differs from the sorted input")
		}
		// The first pivot is always the minimum, so each step peels off one
		// distinct value; 500 draws from 5001 leave ~475 of them.
		if stats.MaxDepth < size/2 {
			t.Errorf("max depth %d, expected close to %d", stats.MaxDepth, size)
		}
		t.Log(since_t0, stats)
	})

	t.Run("Randomized", func(t *testing.T) {
		var stats pkg.SortStats
		t1 := time.Now()
		got := pkg.Quicksort(sorted, pkg.RandomPivot(rand.New(rand.NewSource(1))), pkg.Iterative, &stats)
		since_t1 := time.Since(t1)

		if !slices.Equal(got, original) {
			t.Fatal("randomized result differs from the sorted input")
		}
		if stats.MaxDepth > size/5 {
			t.Errorf("max depth %d, expected logarithmic", stats.MaxDepth)
		}
		t.Log(since_t1, stats)
	})

	if !slices.Equal(sorted, original) {
		t.Error("input modified by sorting")
	}
}

func Test_Run(t *testing.T) {
	log.SetLevel(log.WarnLevel)

	cfg := pkg.DefaultConfig()
	cfg.Sizes = []int{500, 1000}
	cfg.Seed = 2
	exp, err := pkg.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	for _, a := range pkg.Algorithms {
		for _, cs := range pkg.Cases {
			if len(exp.Results(a)[cs]) != len(cfg.Sizes) {
				t.Errorf("%s / %s: %v", a, cs, exp.Results(a)[cs])
			}
		}
	}
}
