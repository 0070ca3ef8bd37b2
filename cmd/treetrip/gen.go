// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treetrip/treegen"
)

// =============================================================================
// GEN COMMAND
// =============================================================================

type genFlags struct {
	shape   string
	profile string
	n       int
	k       int
	seed    int64
	base    int
	peak    int
	index   int
	lo, hi  int
	solve   bool
	solveFl solveFlags
}

func newGenCmd(root *rootFlags) *cobra.Command {
	flags := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic instance (straight, star or random tree)",
		Long: `Writes a YAML instance document to stdout. With --solve the instance is
solved instead and only the answer is printed.

Profiles:
  uniform   every city --base
  elevated  every city --base, city --index gets --peak
  sunken    every city --base, city --index gets --peak (meant to be lower)
  random    uniform in [--lo, --hi]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := flags.generate()
			if err != nil {
				return err
			}
			doc := inputDoc{K: flags.k, Tree: tree}
			if flags.solve {
				k, err := doc.resolveK(0)
				if err != nil {
					return err
				}
				return runSolve(cmd.OutOrStdout(), root, &flags.solveFl, k, doc)
			}

			return writeInput(cmd.OutOrStdout(), doc)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.shape, "shape", "straight", "Tree shape: straight, star, random")
	f.StringVar(&flags.profile, "profile", "elevated", "Attractiveness profile: uniform, elevated, sunken, random")
	f.IntVarP(&flags.n, "n", "n", 10, "Number of cities")
	f.IntVarP(&flags.k, "k", "k", 5, "Trip size bound written to the document")
	f.Int64Var(&flags.seed, "seed", 1, "RNG seed for random shapes and profiles")
	f.IntVar(&flags.base, "base", 4, "Base attractiveness")
	f.IntVar(&flags.peak, "peak", 5, "Attractiveness of the --index city")
	f.IntVar(&flags.index, "index", 0, "City singled out by elevated/sunken profiles")
	f.IntVar(&flags.lo, "lo", 0, "Lowest random attractiveness")
	f.IntVar(&flags.hi, "hi", 9, "Highest random attractiveness")
	f.BoolVar(&flags.solve, "solve", false, "Solve the generated instance instead of printing it")
	f.IntVarP(&flags.solveFl.parallel, "parallel", "p", 1, "Goroutines for the top tier when --solve is set")
	f.BoolVar(&flags.solveFl.metrics, "metrics", false, "Print treetrip metrics when --solve is set")

	return cmd
}

func (f *genFlags) generate() (treegen.Tree, error) {
	var shape treegen.Shape
	switch f.shape {
	case "straight":
		shape = treegen.Straight()
	case "star":
		shape = treegen.Star()
	case "random":
		shape = treegen.Random()
	default:
		return treegen.Tree{}, fmt.Errorf("unknown --shape %q", f.shape)
	}

	var profile treegen.Profile
	switch f.profile {
	case "uniform":
		profile = treegen.Uniform(f.base)
	case "elevated":
		profile = treegen.Elevated(f.base, f.peak, f.index)
	case "sunken":
		profile = treegen.Sunken(f.base, f.peak, f.index)
	case "random":
		profile = treegen.RandomRange(f.lo, f.hi)
	default:
		return treegen.Tree{}, fmt.Errorf("unknown --profile %q", f.profile)
	}

	return treegen.Generate(f.n, shape, profile, treegen.WithSeed(f.seed))
}
