package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/atharv3903/flightplan/internal/api"
	"github.com/atharv3903/flightplan/internal/cache"
	"github.com/atharv3903/flightplan/internal/network"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve flight plans over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		n, err := loadNetwork(ctx, cfg)
		if err != nil {
			return err
		}

		srv := api.New(n, api.Options{
			Loader: func(ctx context.Context) (*network.Network, error) {
				return loadNetwork(ctx, cfg)
			},
			Cache:   cache.New(cfg.CacheSize),
			Planner: plannerOptions(cfg),
			Workers: cfg.Workers,
			Logger:  log.StandardLogger(),
		})

		httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv.Engine}
		errc := make(chan error, 1)
		go func() {
			log.WithField("addr", cfg.Addr).Info("flightplanner listening")
			errc <- httpSrv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	},
}
