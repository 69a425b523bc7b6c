package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/zxrewrite/diagram"
	"github.com/katalvlaran/zxrewrite/rewrite"
	"github.com/katalvlaran/zxrewrite/rules"
)

// candidateRow is one evaluated candidate.
type candidateRow struct {
	Index     int
	RuleSet   int
	Rhs       int
	Boundary  []string
	Interior  int
	Reduction int
	CostDelta int
}

func newCandidatesCmd(a *app) *cobra.Command {
	var improving bool
	cmd := &cobra.Command{
		Use:   "candidates DIAGRAM",
		Short: "List and evaluate every candidate rewrite of a diagram",
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
			rows, err := a.evaluate(c, dd)
			if err != nil {
				return err
			}
			if improving {
				kept := rows[:0]
				for _, r := range rows {
					if r.CostDelta < 0 {
						kept = append(kept, r)
					}
				}
				rows = kept
			}
			return printRows(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().BoolVar(&improving, "improving", false, "only list candidates with a negative cost delta")

	return cmd
}

// evaluate applies every candidate of dd, at most cfg.Workers at a time.
// Rows keep candidate order.
func (a *app) evaluate(c *rewrite.CompiledRewriter, dd *rules.DecodedDiagram) ([]candidateRow, error) {
	rws, err := c.Rewrites(dd.Diagram)
	if err != nil {
		return nil, err
	}
	rows := make([]candidateRow, len(rws))
	var eg errgroup.Group
	eg.SetLimit(a.cfg.Workers)
	for i, rw := range rws {
		i, rw := i, rw
		eg.Go(func() error {
			res, err := c.Apply(rw, dd.Diagram)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}
			rows[i] = candidateRow{
				Index:     i,
				RuleSet:   rw.RuleSet,
				Rhs:       rw.RhsIndex,
				Boundary:  vertexNames(dd, rw.LhsBoundary),
				Interior:  len(rw.LhsInterior),
				Reduction: res.Reduction,
				CostDelta: res.CostDelta,
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	a.logger.Info("candidates evaluated",
		slog.Int("candidates", len(rows)),
		slog.String("metric", c.Metric().Name()))

	return rows, nil
}

func vertexNames(dd *rules.DecodedDiagram, vs []diagram.V) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		name, err := dd.NameOf(v)
		if err != nil {
			name = fmt.Sprintf("#%d", v)
		}
		out[i] = name
	}

	return out
}

func printRows(w io.Writer, rows []candidateRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tSET\tRHS\tBOUNDARY\tINTERIOR\tREDUCTION\tDELTA")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%v\t%d\t%d\t%d\n",
			r.Index, r.RuleSet, r.Rhs, r.Boundary, r.Interior, r.Reduction, r.CostDelta)
	}

	return tw.Flush()
}
