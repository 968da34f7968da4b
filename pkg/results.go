package pkg

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Case names one input distribution.
type Case string

const (
	RandomCase   Case = "Randomly generated arrays"
	SortedCase   Case = "Already sorted arrays"
	ReverseCase  Case = "Reverse-sorted arrays"
	RepeatedCase Case = "Arrays with repeated elements"
)

// Cases is the generation order; Generator.TestCases returns sequences in it.
var Cases = []Case{RandomCase, SortedCase, ReverseCase, RepeatedCase}

// ReportOrder is the order cases appear in the console report.
var ReportOrder = []Case{SortedCase, RandomCase, ReverseCase, RepeatedCase}

// Index returns the position of c in Cases, or -1.
func (c Case) Index() int {
	for i, cs := range Cases {
		if cs == c {
			return i
		}
	}
	return -1
}

// Short is the tag used in report lines.
func (c Case) Short() string {
	switch c {
	case RandomCase:
		return "Random"
	case SortedCase:
		return "Sorted"
	case ReverseCase:
		return "Reverse-Sorted"
	case RepeatedCase:
		return "Repeated"
	}
	return string(c)
}

type Algorithm string

const (
	Deterministic Algorithm = "Deterministic"
	Randomized    Algorithm = "Randomized"
)

var Algorithms = []Algorithm{Deterministic, Randomized}

// Results maps a case to its elapsed seconds, one entry per configured size.
type Results map[Case][]float64

func NewResults(cases []Case, sizes int) Results {
	r := make(Results, len(cases))
	for _, cs := range cases {
		r[cs] = make([]float64, 0, sizes)
	}
	return r
}

func (r Results) Add(c Case, seconds float64) {
	r[c] = append(r[c], seconds)
}

// Cases lists the recorded cases in generation order.
func (r Results) Cases() []Case {
	keys := maps.Keys(r)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Index() < keys[j].Index()
	})
	return keys
}
