package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lattark/nzflow/bidirect"
	"github.com/lattark/nzflow/cubic"
	"github.com/lattark/nzflow/fiveflow"
)

func newSurveyCmd() *cobra.Command {
	var (
		sizes    []int
		count    int
		seed     int64
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Solve batches of random cubic graphs and tabulate success rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			strat, err := pickStrategy(strategy)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "size\ttested\tsolved\trate\tavg bound\tavg steps\tavg time")

			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			for _, n := range sizes {
				var (
					tested, solved int
					sumBound       int64
					sumSteps       int
					elapsed        time.Duration
				)
				for i := 0; i < count; i++ {
					graphSeed := seed + int64(i) + int64(n)*1_000_003
					g, err := cubic.RandomCubic(n, graphSeed)
					if err != nil {
						return fmt.Errorf("size %d, instance %d: %w", n, i, err)
					}
					tested++

					opts := fiveflow.DefaultOptions()
					opts.Strategy = strat
					opts.Seed = graphSeed

					start := time.Now()
					res, err := fiveflow.Find(g, opts)
					elapsed += time.Since(start)
					if err != nil {
						if errors.Is(err, fiveflow.ErrSearchExhausted) {
							log.Debugf("size %d, instance %d: no flow found", n, i)

							continue
						}
						if errors.Is(err, bidirect.ErrStructural) {
							return fmt.Errorf("size %d, instance %d: %w", n, i, err)
						}

						return err
					}
					solved++
					sumBound += res.Bound
					sumSteps += res.Steps
				}

				rate := float64(solved) / float64(tested) * 100
				avgBound, avgSteps := "-", "-"
				if solved > 0 {
					avgBound = fmt.Sprintf("%.2f", float64(sumBound)/float64(solved))
					avgSteps = fmt.Sprintf("%.0f", float64(sumSteps)/float64(solved))
				}
				fmt.Fprintf(w, "%d\t%d\t%d\t%.1f%%\t%s\t%s\t%s\n",
					n, tested, solved, rate, avgBound, avgSteps,
					(elapsed / time.Duration(tested)).Round(time.Microsecond))
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{4, 6, 8, 10, 12, 14, 16}, "vertex counts to survey")
	cmd.Flags().IntVarP(&count, "count", "c", 20, "random graphs per size")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "base RNG seed")
	cmd.Flags().StringVar(&strategy, "strategy", "enum", "search strategy: enum|backtrack")

	return cmd
}
