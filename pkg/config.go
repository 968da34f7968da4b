package pkg

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// DefaultSizes are the input lengths of the reference experiment.
var DefaultSizes = []int{500, 1000, 2500, 5000, 20000, 50000, 100000, 250000}

// Config holds everything the experiment driver needs. DefaultConfig
// reproduces the reference experiment.
type Config struct {
	Sizes []int
	Cases []Case

	RandomMax   int
	RepeatedMax int

	// Trials is the number of timed runs per measurement; the median is kept.
	Trials int
	// Seed feeds both the generator and the random pivot. 0 seeds from the clock.
	Seed int64

	Engine Engine
	// MaxStack, if > 0, is passed to debug.SetMaxStack before a recursive run.
	MaxStack int
}

func DefaultConfig() Config {
	return Config{
		Sizes:       append([]int(nil), DefaultSizes...),
		Cases:       append([]Case(nil), Cases...),
		RandomMax:   RandomValueMax,
		RepeatedMax: RepeatedValueMax,
		Trials:      1,
		Engine:      Iterative,
	}
}

func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("no input sizes configured")
	}
	for i, size := range c.Sizes {
		if size <= 0 {
			return errors.Errorf("size #%d is %d, must be positive", i, size)
		}
	}

	if len(c.Cases) == 0 {
		return errors.New("no cases configured")
	}
	seen := make(map[Case]bool, len(c.Cases))
	for _, cs := range c.Cases {
		if cs.Index() < 0 {
			return errors.Errorf("unknown case %q", cs)
		}
		if seen[cs] {
			return errors.Errorf("case %q configured twice", cs)
		}
		seen[cs] = true
	}

	for _, bound := range []int{c.RandomMax, c.RepeatedMax} {
		if bound < 0 || bound == math.MaxInt {
			return errors.Errorf("value bounds must be in [0, %d), got random=%d repeated=%d",
				math.MaxInt, c.RandomMax, c.RepeatedMax)
		}
	}
	if c.Trials < 1 {
		return errors.Errorf("trials is %d, must be at least 1", c.Trials)
	}
	if c.MaxStack < 0 {
		return errors.Errorf("max stack is %d, must not be negative", c.MaxStack)
	}
	if c.Engine != Iterative && c.Engine != Recursive {
		return errors.Errorf("unknown engine %v", c.Engine)
	}
	return nil
}

// Rand returns a source seeded from Seed, or from the clock when Seed is 0.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
