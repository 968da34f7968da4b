package pkg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const separator = "---------------------------------------------"

// Print writes the per-size comparison report. Cases are printed in
// ReportOrder, each as a deterministic / randomized pair of lines.
func Print(w io.Writer, exp *Experiment) error {
	var sb strings.Builder
	sb.WriteString("Runtime Results for Sorted Arrays:\n")
	for i, size := range exp.Config.Sizes {
		fmt.Fprintf(&sb, "\nSize: %d\n", size)
		for _, cs := range ReportOrder {
			if _, ok := exp.Deterministic[cs]; !ok {
				continue
			}
			for _, a := range Algorithms {
				label := fmt.Sprintf("%s Quicksort (%s):", a, cs.Short())
				fmt.Fprintf(&sb, "%-41s %.6f seconds\n", label, exp.Results(a)[cs][i])
			}
		}
		sb.WriteString(separator)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// PrintTable renders one row per size with a column per (algorithm, case).
func PrintTable(w io.Writer, exp *Experiment) {
	cases := exp.Deterministic.Cases()

	header := []string{"Size"}
	for _, cs := range cases {
		for _, a := range Algorithms {
			header = append(header, fmt.Sprintf("%s %s", a, cs.Short()))
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, size := range exp.Config.Sizes {
		row := []string{strconv.Itoa(size)}
		for _, cs := range cases {
			for _, a := range Algorithms {
				row = append(row, strconv.FormatFloat(exp.Results(a)[cs][i], 'f', 6, 64))
			}
		}
		table.Append(row)
	}
	table.Render()
}
