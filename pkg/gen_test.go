package pkg_test

import (
	"fmt"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/exp/slices"

	"qsortbench/pkg"
)

func TestGenerator(t *testing.T) {
	Convey("While generating test cases", t, func() {
		for _, size := range []int{1, 2, 500, 2500} {
			inputs := pkg.GenerateTestCases(rand.New(rand.NewSource(int64(size))), size)
			random, sorted, reversed, repeated := inputs[0], inputs[1], inputs[2], inputs[3]

			Convey(fmt.Sprintf("There should be one sequence per case, each of length %d", size), func() {
				So(inputs, ShouldHaveLength, len(pkg.Cases))
				for _, input := range inputs {
					So(input, ShouldHaveLength, size)
				}
			})

			Convey(fmt.Sprintf("The sorted sequence of length %d should be the random one in ascending order", size), func() {
				want := slices.Clone(random)
				slices.Sort(want)
				So(sorted, ShouldResemble, want)
				for i := 1; i < size; i++ {
					So(sorted[i-1], ShouldBeLessThanOrEqualTo, sorted[i])
				}
			})

			Convey(fmt.Sprintf("The reverse-sorted sequence of length %d should mirror the sorted one", size), func() {
				for i := range reversed {
					So(reversed[i], ShouldEqual, sorted[size-1-i])
				}
				for i := 1; i < size; i++ {
					So(reversed[i-1], ShouldBeGreaterThanOrEqualTo, reversed[i])
				}
			})

			Convey(fmt.Sprintf("Values of length %d sequences should stay within their bounds", size), func() {
				for _, v := range random {
					So(v, ShouldBeBetweenOrEqual, 0, pkg.RandomValueMax)
				}
				for _, v := range repeated {
					So(v, ShouldBeBetweenOrEqual, 0, pkg.RepeatedValueMax)
				}
			})
		}
	})

	Convey("While generating with the same seed twice", t, func() {
		a := pkg.GenerateTestCases(rand.New(rand.NewSource(42)), 100)
		b := pkg.GenerateTestCases(rand.New(rand.NewSource(42)), 100)
		Convey("The sequences should be identical", func() {
			So(a, ShouldResemble, b)
		})
	})

	Convey("While generating repeated elements of a large size", t, func() {
		repeated := pkg.GenerateTestCases(rand.New(rand.NewSource(7)), 5000)[3]
		Convey("There should be at most RepeatedValueMax+1 distinct values", func() {
			distinct := map[int]bool{}
			for _, v := range repeated {
				distinct[v] = true
			}
			So(len(distinct), ShouldBeLessThanOrEqualTo, pkg.RepeatedValueMax+1)
		})
	})

	Convey("While generating with custom bounds", t, func() {
		cfg := pkg.DefaultConfig()
		cfg.RandomMax, cfg.RepeatedMax = 3, 0
		inputs := pkg.NewGenerator(nil, cfg).TestCases(50)
		Convey("Values should respect the configured bounds", func() {
			for _, v := range inputs[0] {
				So(v, ShouldBeBetweenOrEqual, 0, 3)
			}
			for _, v := range inputs[3] {
				So(v, ShouldEqual, 0)
			}
		})
	})
}
