package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"qsortbench/pkg"
)

// writeCases writes one CSV record per case: the case label followed by its values.
func writeCases(w io.Writer, inputs [][]int) error {
	csvWriter := csv.NewWriter(w)
	for i, input := range inputs {
		record := make([]string, 0, len(input)+1)
		record = append(record, string(pkg.Cases[i]))
		for _, v := range input {
			record = append(record, strconv.Itoa(v))
		}
		if err := csvWriter.Write(record); err != nil {
			return errors.Wrapf(err, "csv write %s", pkg.Cases[i])
		}
	}
	csvWriter.Flush()
	return errors.Wrap(csvWriter.Error(), "csv flush")
}

func main() {
	app := kingpin.New("gen", "Dumps the generated test cases of one size as CSV.")
	cfg := pkg.DefaultConfig()
	pkg.BindFlags(app, &cfg)

	var size int
	var out string
	pkg.Flag(app, "size", "Length of every sequence.").Default("500").IntVar(&size)
	pkg.Flag(app, "file", "Output file, stdout when empty.").StringVar(&out)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg.Sizes = []int{size}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	log.Printf("initializing rng from seed: '%d'", cfg.Seed)
	inputs := pkg.NewGenerator(cfg.Rand(), cfg).TestCases(size)
	for i, input := range inputs {
		log.Printf("%-30s len=%d xxh3=%016x", pkg.Cases[i], len(input), pkg.Fingerprint(input))
	}

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			log.Fatal(errors.Wrapf(err, "create '%s'", out))
		}
		defer f.Close()
		w = f
	}

	if err := writeCases(w, inputs); err != nil {
		log.Fatal(err)
	}
}
