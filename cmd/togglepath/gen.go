package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/togglepath/gen"
)

func (a *app) genCmd() *cobra.Command {
	var (
		count, counters, edges, maxEdgeSize, maxRepeat int
		seed                                           int64
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print random feasible puzzle lines",
		Long: `Prints --count lines in the solve input format. Every line carries a
light pattern and counter targets produced by a planted solution, so both
variants are solvable. Planted costs are logged at debug level (-v).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if counters < 1 || edges < 1 || maxEdgeSize < 0 || maxRepeat < 0 {
				return fmt.Errorf("counters and edges must be >= 1, max sizes >= 0")
			}
			insts, err := gen.Generate(count,
				gen.WithSeed(seed),
				gen.WithCounters(counters),
				gen.WithEdges(edges),
				gen.WithMaxEdgeSize(maxEdgeSize),
				gen.WithMaxRepeat(maxRepeat),
			)
			if err != nil {
				return err
			}
			for i, in := range insts {
				fmt.Fprintln(cmd.OutOrStdout(), in.Line)
				a.logger.Debug("generated",
					zap.Int("line", i+1),
					zap.Int("toggle_planted", in.TogglePlanted),
					zap.Int("counter_planted", in.CounterPlanted))
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&count, "count", 10, "number of lines")
	fl.Int64Var(&seed, "seed", 1, "random seed")
	fl.IntVar(&counters, "counters", 6, "lights/counters per line")
	fl.IntVar(&edges, "edges", 5, "edges per line")
	fl.IntVar(&maxEdgeSize, "max-edge-size", 0, "indices per edge at most (0 = counters)")
	fl.IntVar(&maxRepeat, "max-repeat", 8, "planted repeats per edge at most")

	return cmd
}
