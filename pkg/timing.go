package pkg

import (
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// SortFunc sorts a sequence and returns the sorted result.
type SortFunc func([]int) []int

// MeasureRuntime times one call of sort on a copy of input and returns the
// elapsed wall-clock seconds. The copy is part of the timed region.
func MeasureRuntime(sort SortFunc, input []int) float64 {
	start := time.Now()
	sort(slices.Clone(input))
	return time.Since(start).Seconds()
}

// Measurement summarizes the timed runs of one (algorithm, case, size).
type Measurement struct {
	// Seconds is the median of Samples.
	Seconds float64
	Mean    float64
	StdDev  float64
	Samples []float64
}

// Measurer runs MeasureRuntime Trials times and checks that the input was not
// modified.
type Measurer struct {
	Trials int
}

func (m Measurer) Measure(sort SortFunc, input []int) Measurement {
	before := Fingerprint(input)

	samples := make([]float64, max(m.Trials, 1))
	for i := range samples {
		samples[i] = MeasureRuntime(sort, input)
	}

	if after := Fingerprint(input); after != before {
		log.Panic(errors.Errorf("input of length %d modified during measurement: %016x -> %016x", len(input), before, after))
	}

	return Summarize(samples)
}

func Summarize(samples []float64) Measurement {
	samp := stats.Sample{Xs: slices.Clone(samples)}
	samp.Sort()

	m := Measurement{
		Seconds: samp.Quantile(0.5),
		Mean:    samp.Mean(),
		Samples: samples,
	}
	if len(samples) > 1 {
		m.StdDev = samp.StdDev()
	}
	return m
}

type Timings struct {
	Start          time.Time
	Since_Generate time.Duration
	Since_Measure  time.Duration
	Since_Report   time.Duration
	Since_Plot     time.Duration
}

func (t Timings) Report() {
	log.Infof(`
[ Generate: %v
[ Measure: %v
! Report: %v
! Plot: %v
= Total: %v
	 `,
		t.Since_Generate,
		t.Since_Measure,
		t.Since_Report,
		t.Since_Plot,
		time.Since(t.Start),
	)
}
