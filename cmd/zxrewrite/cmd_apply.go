package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zxrewrite/rules"
)

// ErrNoCandidate indicates an --index outside the candidate list.
var ErrNoCandidate = errors.New("zxrewrite: no such candidate")

func newApplyCmd(a *app) *cobra.Command {
	var (
		index  int
		output string
	)
	cmd := &cobra.Command{
		Use:   "apply DIAGRAM",
		Short: "Apply one candidate rewrite and write the resulting diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.compile()
			if err != nil {
				return err
			}
			dd, err := readDiagram(args[0])
			if err != nil {
				return err
			}
			rws, err := c.Rewrites(dd.Diagram)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(rws) {
				return fmt.Errorf("index %d of %d candidates: %w", index, len(rws), ErrNoCandidate)
			}
			rw := rws[index]
			res, err := c.Apply(rw, dd.Diagram)
			if err != nil {
				return err
			}

			// Surviving vertices keep their names; new ones are generated.
			out := rules.DecodedDiagram{Diagram: res.Diagram, Names: dd.Names}
			doc, err := out.Encode()
			if err != nil {
				return err
			}
			a.logger.Info("rewrite applied",
				slog.Int("index", index),
				slog.Int("rule_set", rw.RuleSet),
				slog.Int("rhs", rw.RhsIndex),
				slog.Int("cost_delta", res.CostDelta))

			return writeOutput(cmd.OutOrStdout(), output, []byte(doc))
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "candidate index as listed by the candidates command")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")

	return cmd
}
