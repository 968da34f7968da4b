package pkg_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"qsortbench/pkg"
)

// fixedExperiment has deterministic timings 0.00<case><size> and randomized 0.10<case><size>.
func fixedExperiment() *pkg.Experiment {
	cfg := pkg.DefaultConfig()
	cfg.Sizes = []int{500, 1000}
	exp := &pkg.Experiment{
		Config:        cfg,
		Deterministic: pkg.NewResults(cfg.Cases, len(cfg.Sizes)),
		Randomized:    pkg.NewResults(cfg.Cases, len(cfg.Sizes)),
	}
	for ci, cs := range pkg.Cases {
		for si := range cfg.Sizes {
			exp.Deterministic.Add(cs, float64(ci*10+si+1)/1000)
			exp.Randomized.Add(cs, 0.1+float64(ci*10+si+1)/1000)
		}
	}
	return exp
}

func TestPrint(t *testing.T) {
	Convey("While printing a report", t, func() {
		var buf bytes.Buffer
		So(pkg.Print(&buf, fixedExperiment()), ShouldBeNil)
		out := buf.String()
		lines := strings.Split(out, "\n")

		Convey("It should start with the header and a block per size", func() {
			So(lines[0], ShouldEqual, "Runtime Results for Sorted Arrays:")
			So(lines[1], ShouldEqual, "")
			So(lines[2], ShouldEqual, "Size: 500")
			So(strings.Count(out, "\n---------------------------------------------\n"), ShouldEqual, 2)
			So(out, ShouldContainSubstring, "Size: 1000")
		})

		Convey("Cases should come in report order as aligned deterministic / randomized pairs", func() {
			So(lines[3:11], ShouldResemble, []string{
				"Deterministic Quicksort (Sorted):         0.011000 seconds",
				"Randomized Quicksort (Sorted):            0.111000 seconds",
				"Deterministic Quicksort (Random):         0.001000 seconds",
				"Randomized Quicksort (Random):            0.101000 seconds",
				"Deterministic Quicksort (Reverse-Sorted): 0.021000 seconds",
				"Randomized Quicksort (Reverse-Sorted):    0.121000 seconds",
				"Deterministic Quicksort (Repeated):       0.031000 seconds",
				"Randomized Quicksort (Repeated):          0.131000 seconds",
			})
		})

		Convey("Entries of the second size should use the second result", func() {
			So(out, ShouldContainSubstring, "Deterministic Quicksort (Repeated):       0.032000 seconds")
		})
	})

	Convey("While printing a summary table", t, func() {
		var buf bytes.Buffer
		pkg.PrintTable(&buf, fixedExperiment())
		out := buf.String()

		Convey("Every size and value should be rendered", func() {
			So(out, ShouldContainSubstring, "500")
			So(out, ShouldContainSubstring, "1000")
			So(out, ShouldContainSubstring, "0.001000")
			So(out, ShouldContainSubstring, "0.132000")
		})
	})
}

func TestResults(t *testing.T) {
	Convey("While listing recorded cases", t, func() {
		r := pkg.NewResults([]pkg.Case{pkg.RepeatedCase, pkg.RandomCase, pkg.SortedCase}, 1)
		Convey("They should come back in generation order", func() {
			So(r.Cases(), ShouldResemble, []pkg.Case{pkg.RandomCase, pkg.SortedCase, pkg.RepeatedCase})
		})
	})

	Convey("While looking up case labels", t, func() {
		So(pkg.SortedCase.Index(), ShouldEqual, 1)
		So(pkg.Case("Nearly sorted arrays").Index(), ShouldEqual, -1)
		So(pkg.ReverseCase.Short(), ShouldEqual, "Reverse-Sorted")
	})
}
