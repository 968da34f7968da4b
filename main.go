package main

import (
	"context"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"qsortbench/pkg"
)

type options struct {
	CPUProfile string
	Table      bool
	LogLevel   string
}

func checkWithContext(err error, context string) {
	if err != nil {
		log.Debugf("%s: %+v", context, err)
		log.Fatalf("%s: %v", context, err)
	}
}

// startCPUProfile profiles into path until the returned func is called.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating cpu profile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "starting cpu profile")
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func main() {
	tTotal := time.Now()

	app := kingpin.New("qsortbench", "Compares deterministic and randomized pivot quicksort over several input distributions.")
	cfg := pkg.DefaultConfig()
	pkg.BindFlags(app, &cfg)

	var view pkg.ViewOptions
	pkg.BindViewFlags(app, &view)

	var opts options
	pkg.Flag(app, "cprof", "Write cpu profile to file.").StringVar(&opts.CPUProfile)
	pkg.Flag(app, "table", "Also print a summary table.").BoolVar(&opts.Table)
	pkg.Flag(app, "log", "Log level: debug, info, warn, error.").Default("info").StringVar(&opts.LogLevel)

	_, err := app.Parse(os.Args[1:])
	checkWithContext(err, "parsing flags")

	level, err := log.ParseLevel(opts.LogLevel)
	checkWithContext(err, "parsing log level")
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.000"})

	if opts.CPUProfile != "" {
		log.Infof("starting cpu-prof: '%s'", opts.CPUProfile)
		stopProfile, err := startCPUProfile(opts.CPUProfile)
		checkWithContext(err, "cpu profile")
		defer stopProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exp, err := pkg.Run(ctx, cfg)
	checkWithContext(err, "running experiment")
	exp.Timings.Start = tTotal

	tReport := time.Now()
	checkWithContext(pkg.Print(os.Stdout, exp), "printing report")
	if opts.Table {
		pkg.PrintTable(os.Stdout, exp)
	}
	exp.Timings.Since_Report = time.Since(tReport)

	tPlot := time.Now()
	checkWithContext(pkg.Plot(exp, view.Out), "plotting")
	exp.Timings.Since_Plot = time.Since(tPlot)

	exp.Timings.Report()

	if view.Show {
		// The chart is already on disk, a missing display is not fatal.
		if err := pkg.Show(ctx, view.ViewerCommand(), view.Out); err != nil {
			log.Warnf("showing plot: %v (rerun with --no-show to only write '%s')", err, view.Out)
		}
	}
}
