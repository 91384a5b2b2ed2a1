package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lattark/nzflow/cubic"
	"github.com/lattark/nzflow/fiveflow"
	"github.com/lattark/nzflow/lattice"
)

// pickGraph resolves the --graph flag to a concrete cubic graph.
func pickGraph(name string, n int, seed int64) (*cubic.Graph, error) {
	switch strings.ToLower(name) {
	case "k4":
		return cubic.K4(), nil
	case "k33":
		return cubic.K33(), nil
	case "prism":
		return cubic.Prism(), nil
	case "petersen":
		return cubic.Petersen(), nil
	case "random":
		return cubic.RandomCubic(n, seed)
	default:
		return nil, fmt.Errorf("unknown graph %q (want k4|k33|prism|petersen|random)", name)
	}
}

func pickStrategy(name string) (fiveflow.Strategy, error) {
	switch strings.ToLower(name) {
	case "enum":
		return fiveflow.StrategyBoundedEnum, nil
	case "backtrack":
		return fiveflow.StrategyBacktracking, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want enum|backtrack)", name)
	}
}

func pickBasis(name string) (lattice.Strategy, error) {
	switch strings.ToLower(name) {
	case "kernel":
		return lattice.StrategyExactKernel, nil
	case "cycles":
		return lattice.StrategyCycleBasis, nil
	default:
		return 0, fmt.Errorf("unknown basis strategy %q (want kernel|cycles)", name)
	}
}

func newSolveCmd() *cobra.Command {
	var (
		graphName string
		n         int
		seed      int64
		strategy  string
		basisName string
		noReduce  bool
		attempts  int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a nowhere-zero 5-flow on one graph and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := pickGraph(graphName, n, seed)
			if err != nil {
				return err
			}
			strat, err := pickStrategy(strategy)
			if err != nil {
				return err
			}
			basis, err := pickBasis(basisName)
			if err != nil {
				return err
			}

			opts := fiveflow.DefaultOptions()
			opts.Strategy = strat
			opts.Seed = seed
			opts.BasisStrategy = basis
			opts.Reduce = !noReduce
			if attempts > 0 {
				opts.MaxAttempts = attempts
			}

			log.Debugf("solving %s: %d vertices, %d edges", graphName, g.VertexCount(), g.EdgeCount())

			res, err := fiveflow.Find(g, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "graph:    %s (%d vertices, %d edges)\n", graphName, g.VertexCount(), g.EdgeCount())
			fmt.Fprintf(out, "strategy: %s\n", res.Strategy)
			fmt.Fprintf(out, "bound:    %d\n", res.Bound)
			fmt.Fprintf(out, "steps:    %d\n", res.Steps)
			fmt.Fprintf(out, "attempts: %d\n", res.Attempts)
			for e, x := range res.Flow {
				edge := g.Edge(e)
				fmt.Fprintf(out, "  edge %2d {%d,%d}: %+d\n", e, edge.U, edge.V, x)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&graphName, "graph", "g", "petersen", "graph to solve: k4|k33|prism|petersen|random")
	cmd.Flags().IntVar(&n, "n", 10, "vertex count for --graph random (even, ≥ 4)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "RNG seed (0 = fixed default stream)")
	cmd.Flags().StringVar(&strategy, "strategy", "enum", "search strategy: enum|backtrack")
	cmd.Flags().StringVar(&basisName, "basis", "kernel", "basis construction: kernel|cycles")
	cmd.Flags().BoolVar(&noReduce, "no-reduce", false, "skip LLL basis reduction")
	cmd.Flags().IntVar(&attempts, "attempts", 0, "sign assignments to try (0 = default)")

	return cmd
}
