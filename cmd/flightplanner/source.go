package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/atharv3903/flightplan/internal/config"
	"github.com/atharv3903/flightplan/internal/db"
	"github.com/atharv3903/flightplan/internal/flightio"
	"github.com/atharv3903/flightplan/internal/model"
	"github.com/atharv3903/flightplan/internal/network"
)

// loadNetwork builds the network from the configured source.
func loadNetwork(ctx context.Context, cfg config.Config) (*network.Network, error) {
	var (
		edges []model.Edge
		err   error
	)
	switch cfg.Source {
	case config.SourceMySQL, config.SourcePostgres:
		edges, err = loadEdgesSQL(ctx, cfg)
	default:
		edges, err = loadEdgesFile(cfg.FlightsFile)
	}
	if err != nil {
		return nil, err
	}

	n := network.Build(edges)
	log.WithFields(log.Fields{
		"source": cfg.Source,
		"cities": n.CityCount(),
		"edges":  n.EdgeCount(),
	}).Info("network loaded")
	return n, nil
}

func loadEdgesFile(path string) ([]model.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flights: %w", err)
	}
	defer f.Close()

	edges, err := flightio.ReadEdges(f)
	if err != nil {
		return nil, fmt.Errorf("read flights %s: %w", path, err)
	}
	return edges, nil
}

func loadEdgesSQL(ctx context.Context, cfg config.Config) ([]model.Edge, error) {
	store, err := db.Open(ctx, cfg.Source, cfg.DSN)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	return store.Edges(ctx)
}

func loadQueries(path string) ([]model.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open requests: %w", err)
	}
	defer f.Close()

	queries, err := flightio.ReadQueries(f)
	if err != nil {
		return nil, fmt.Errorf("read requests %s: %w", path, err)
	}
	return queries, nil
}
