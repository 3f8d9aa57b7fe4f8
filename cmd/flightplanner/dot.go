package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atharv3903/flightplan/internal/model"
	"github.com/atharv3903/flightplan/internal/planner"
)

var dotFrom, dotTo, dotBy, dotOut string

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Write the network as a Graphviz graph",
	Long: "Write the network as a Graphviz graph. With --from and --to the\n" +
		"reported paths of that query are highlighted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := loadNetwork(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		var highlight []model.Path
		if dotFrom != "" && dotTo != "" {
			plan, err := planner.New(n, plannerOptions(cfg)...).Plan(cmd.Context(), model.Query{
				Origin:      dotFrom,
				Destination: dotTo,
				Criterion:   model.ParseCriterion(dotBy),
			})
			if err != nil {
				return err
			}
			highlight = plan.Paths
		}

		out, err := n.DOT(highlight...)
		if err != nil {
			return err
		}
		if dotOut == "-" {
			_, err = fmt.Fprint(os.Stdout, out)
			return err
		}
		return os.WriteFile(dotOut, []byte(out), 0o644)
	},
}

func init() {
	dotCmd.Flags().StringVar(&dotFrom, "from", "", "origin of the query to highlight")
	dotCmd.Flags().StringVar(&dotTo, "to", "", "destination of the query to highlight")
	dotCmd.Flags().StringVar(&dotBy, "by", "C", "criterion of the query to highlight: T or C")
	dotCmd.Flags().StringVarP(&dotOut, "out", "o", "-", "output file, - for stdout")
}
