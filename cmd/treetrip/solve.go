// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/treetrip/trip"
)

// =============================================================================
// SOLVE COMMAND
// =============================================================================

type solveFlags struct {
	input    string
	k        int
	parallel int
	metrics  bool
}

func newSolveCmd(root *rootFlags) *cobra.Command {
	flags := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an instance read from a YAML or JSON document",
		Long: `Reads {k, parents, attractiveness} from --input ("-" for stdin), runs the
trip search and prints the answer with the elapsed time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readInputFile(flags.input)
			if err != nil {
				return err
			}
			k, err := doc.resolveK(flags.k)
			if err != nil {
				return err
			}

			return runSolve(cmd.OutOrStdout(), root, flags, k, doc)
		},
	}
	cmd.Flags().StringVarP(&flags.input, "input", "i", "-", "Instance document path, - for stdin")
	cmd.Flags().IntVarP(&flags.k, "k", "k", 0, "Override the document's K")
	cmd.Flags().IntVarP(&flags.parallel, "parallel", "p", 1, "Goroutines for the top tier (1 = sequential)")
	cmd.Flags().BoolVar(&flags.metrics, "metrics", false, "Print treetrip metrics after solving")

	return cmd
}

// runSolve solves doc and prints "Answer <n>  <ms>ms".
func runSolve(w io.Writer, root *rootFlags, flags *solveFlags, k int, doc inputDoc) error {
	logger, err := root.logger()
	if err != nil {
		return err
	}
	if flags.parallel < 0 {
		return fmt.Errorf("invalid --parallel %d", flags.parallel)
	}

	var st trip.Stats
	began := time.Now()
	res, err := trip.Solve(k, doc.Parents, doc.Attractiveness,
		trip.WithLogger(logger),
		trip.WithParallelism(flags.parallel),
		trip.WithStats(&st),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Answer %d  %dms\n", res, time.Since(began).Milliseconds())
	logger.Info("solved", "cities", len(doc.Parents), "k", k, "result", res, "branches", st.Branches)

	if flags.metrics {
		return dumpMetrics(w, prometheus.DefaultGatherer)
	}

	return nil
}

// dumpMetrics prints every treetrip_* series from g, one per line.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "treetrip_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", name, m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				lines = append(lines, fmt.Sprintf("%s count=%d sum=%g", name, h.GetSampleCount(), h.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err = fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
