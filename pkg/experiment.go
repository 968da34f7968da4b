package pkg

import (
	"context"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Experiment holds the configuration and the collected timings of one run.
type Experiment struct {
	Config        Config
	Deterministic Results
	Randomized    Results
	Timings       Timings
}

// Results returns the table of algorithm a.
func (e *Experiment) Results(a Algorithm) Results {
	if a == Randomized {
		return e.Randomized
	}
	return e.Deterministic
}

// Check verifies that every table has one entry per configured size.
func (e *Experiment) Check() error {
	for _, a := range Algorithms {
		results := e.Results(a)
		for _, cs := range e.Config.Cases {
			if got, want := len(results[cs]), len(e.Config.Sizes); got != want {
				return errors.Errorf("%s / %s: %d results for %d sizes", a, cs, got, want)
			}
		}
	}
	return nil
}

// SortFuncs returns the sort of each algorithm for cfg. The randomized pivot
// draws from rng.
func SortFuncs(cfg Config, rng *rand.Rand) map[Algorithm]SortFunc {
	random := RandomPivot(rng)
	return map[Algorithm]SortFunc{
		Deterministic: func(s []int) []int {
			return Quicksort(s, FirstPivot, cfg.Engine, nil)
		},
		Randomized: func(s []int) []int {
			return Quicksort(s, random, cfg.Engine, nil)
		},
	}
}

// Run measures both algorithms over every configured size and case. Sizes are
// the outer loop, cases the inner; both algorithms are measured before moving
// to the next case. ctx is only checked between measurements.
func Run(ctx context.Context, cfg Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	if cfg.Engine == Recursive && cfg.MaxStack > 0 {
		prev := debug.SetMaxStack(cfg.MaxStack)
		defer debug.SetMaxStack(prev)
	}

	rng := cfg.Rand()
	gen := NewGenerator(rng, cfg)
	sorts := SortFuncs(cfg, rng)
	measurer := Measurer{Trials: cfg.Trials}

	exp := &Experiment{
		Config:        cfg,
		Deterministic: NewResults(cfg.Cases, len(cfg.Sizes)),
		Randomized:    NewResults(cfg.Cases, len(cfg.Sizes)),
		Timings:       Timings{Start: time.Now()},
	}

	log.Infof("running %d sizes x %d cases, engine=%v trials=%d", len(cfg.Sizes), len(cfg.Cases), cfg.Engine, cfg.Trials)
	for _, size := range cfg.Sizes {
		tGenerate := time.Now()
		inputs := gen.TestCases(size)
		exp.Timings.Since_Generate += time.Since(tGenerate)

		tMeasure := time.Now()
		for _, cs := range cfg.Cases {
			input := inputs[cs.Index()]
			for _, a := range Algorithms {
				if err := ctx.Err(); err != nil {
					return nil, errors.Wrapf(err, "interrupted at size %d, %s", size, cs)
				}

				m := measurer.Measure(sorts[a], input)
				exp.Results(a).Add(cs, m.Seconds)

				if log.IsLevelEnabled(log.DebugLevel) {
					log.WithFields(log.Fields{
						"size":        size,
						"case":        cs.Short(),
						"algorithm":   a,
						"seconds":     m.Seconds,
						"stddev":      m.StdDev,
						"fingerprint": Fingerprint(input),
					}).Debug("measured")
				}
			}
		}
		exp.Timings.Since_Measure += time.Since(tMeasure)
		log.Infof("size %d done", size)
	}

	return exp, exp.Check()
}
