package main

import (
	"bytes"
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/atharv3903/flightplan/internal/algo"
	"github.com/atharv3903/flightplan/internal/config"
	"github.com/atharv3903/flightplan/internal/flightio"
	"github.com/atharv3903/flightplan/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Answer every request in the requests file and write the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd.Context())
	},
}

func plannerOptions(cfg config.Config) []planner.Option {
	return []planner.Option{
		planner.WithTop(cfg.Top),
		planner.WithLimits(algo.Limits{MaxPaths: cfg.MaxPaths, MaxDepth: cfg.MaxDepth}),
		planner.WithLogger(log.StandardLogger()),
	}
}

// runPlan is all or nothing: the report is rendered in memory and written
// only after every query succeeded.
func runPlan(ctx context.Context) error {
	n, err := loadNetwork(ctx, cfg)
	if err != nil {
		return err
	}
	queries, err := loadQueries(cfg.RequestsFile)
	if err != nil {
		return err
	}
	log.WithField("queries", len(queries)).Info("requests loaded")

	results, err := planner.New(n, plannerOptions(cfg)...).PlanAll(ctx, queries, cfg.Workers)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := flightio.WriteReport(&buf, results); err != nil {
		return err
	}

	if cfg.OutputFile == "-" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(cfg.OutputFile, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.WithField("output", cfg.OutputFile).Info("report written")
	return nil
}
