package pkg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	// EnvPrefix prefixes the environment override of every flag.
	EnvPrefix         = "QSORTBENCH"
	sizeListDelimiter = ","
)

// EnvName converts a flag name to its environment variable, e.g.
// "random-max" to "QSORTBENCH_RANDOM_MAX".
func EnvName(flagName string) string {
	return fmt.Sprintf("%s_%s", EnvPrefix, strings.ToUpper(strings.ReplaceAll(flagName, "-", "_")))
}

// Flag registers a flag whose default can be overridden from the environment.
func Flag(app *kingpin.Application, name, help string) *kingpin.FlagClause {
	return app.Flag(name, help).Envar(EnvName(name))
}

// sizeList parses a comma delimited list of input sizes. Implements kingpin.Value.
type sizeList []int

func (s *sizeList) Set(value string) error {
	var sizes []int
	for _, field := range strings.Split(value, sizeListDelimiter) {
		field = strings.TrimSpace(strings.ReplaceAll(field, "_", ""))
		if field == "" {
			continue
		}
		size, err := strconv.Atoi(field)
		if err != nil {
			return errors.Wrapf(err, "parsing size '%s'", field)
		}
		sizes = append(sizes, size)
	}
	*s = sizes
	return nil
}

func (s *sizeList) String() string {
	fields := make([]string, len(*s))
	for i, size := range *s {
		fields[i] = strconv.Itoa(size)
	}
	return strings.Join(fields, sizeListDelimiter)
}

type engineValue Engine

func (e *engineValue) Set(value string) error {
	engine, err := ParseEngine(value)
	if err != nil {
		return err
	}
	*e = engineValue(engine)
	return nil
}

func (e *engineValue) String() string {
	return Engine(*e).String()
}

// BindFlags registers the experiment flags on app, writing parsed values into cfg.
// Defaults are taken from cfg.
func BindFlags(app *kingpin.Application, cfg *Config) {
	sizes := sizeList(cfg.Sizes)
	Flag(app, "sizes", "Comma separated input sizes.").
		Default(sizes.String()).SetValue((*sizeList)(&cfg.Sizes))
	Flag(app, "random-max", "Upper bound (inclusive) of random, sorted and reverse-sorted values.").
		Default(strconv.Itoa(cfg.RandomMax)).IntVar(&cfg.RandomMax)
	Flag(app, "repeated-max", "Upper bound (inclusive) of repeated-elements values.").
		Default(strconv.Itoa(cfg.RepeatedMax)).IntVar(&cfg.RepeatedMax)
	Flag(app, "trials", "Timed runs per measurement, the median is reported.").
		Default(strconv.Itoa(cfg.Trials)).IntVar(&cfg.Trials)
	Flag(app, "seed", "Random seed, 0 seeds from the clock.").
		Default(strconv.FormatInt(cfg.Seed, 10)).Int64Var(&cfg.Seed)
	Flag(app, "engine", "Quicksort engine: iterative or recursive.").
		Default(cfg.Engine.String()).SetValue((*engineValue)(&cfg.Engine))
	Flag(app, "max-stack", "Max goroutine stack in bytes for the recursive engine, 0 keeps the runtime default.").
		Default(strconv.Itoa(cfg.MaxStack)).IntVar(&cfg.MaxStack)
}

// ViewOptions says where the chart is written and how it is shown.
type ViewOptions struct {
	Out    string
	Show   bool
	Viewer string
}

// BindViewFlags registers the chart output flags on app. The chart is shown by
// default; --no-show only writes the file.
func BindViewFlags(app *kingpin.Application, opts *ViewOptions) {
	Flag(app, "out", "Plot file, format follows the extension (png, svg, pdf).").
		Default("quicksort.png").StringVar(&opts.Out)
	Flag(app, "show", "Open the plot and wait until the viewer is closed, --no-show only writes the file.").
		Default("true").BoolVar(&opts.Show)
	Flag(app, "viewer", "Viewer command used to show the plot, defaults to the platform opener.").
		StringVar(&opts.Viewer)
}

// ViewerCommand splits the configured viewer into its arguments.
func (o ViewOptions) ViewerCommand() []string {
	return strings.Fields(o.Viewer)
}
