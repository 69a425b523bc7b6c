package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zxrewrite/builder"
	"github.com/katalvlaran/zxrewrite/graphjson"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		qubits, depth int
		seed          int64
		czProb        float64
		phaseDen      int64
		output        string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random graph-like circuit diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if czProb < builder.MinProbability || czProb > builder.MaxProbability {
				return fmt.Errorf("cz-prob %v: %w", czProb, ErrBadConfig)
			}
			if phaseDen < 1 {
				return fmt.Errorf("phase-den %d: %w", phaseDen, ErrBadConfig)
			}
			d, err := builder.BuildDiagram(qubits,
				[]builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithCZProbability(czProb),
					builder.WithPhaseDenominator(phaseDen),
				},
				builder.RandomLayers(depth))
			if err != nil {
				return err
			}
			doc, err := graphjson.Encode(d, nil)
			if err != nil {
				return err
			}
			s := d.Stats()
			a.logger.Info("diagram generated",
				slog.Int("qubits", qubits),
				slog.Int("spiders", s.ZSpiders),
				slog.Int("edges", s.Edges))

			return writeOutput(cmd.OutOrStdout(), output, doc)
		},
	}
	f := cmd.Flags()
	f.IntVar(&qubits, "qubits", 2, "number of qubits")
	f.IntVar(&depth, "depth", 4, "number of random layers")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.Float64Var(&czProb, "cz-prob", builder.DefaultCZProbability, "CZ probability between neighbouring qubits per layer")
	f.Int64Var(&phaseDen, "phase-den", builder.DefaultPhaseDenominator, "phases are multiples of π/den")
	f.StringVarP(&output, "output", "o", "-", "output file, - for stdout")

	return cmd
}
