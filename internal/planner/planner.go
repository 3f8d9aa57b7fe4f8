// Package planner answers flight queries against a network: it enumerates
// every simple route, ranks them by the query's criterion and keeps the best
// few.
package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/atharv3903/flightplan/internal/algo"
	"github.com/atharv3903/flightplan/internal/cache"
	"github.com/atharv3903/flightplan/internal/model"
)

type Planner struct {
	graph  algo.Graph
	top    int
	limits algo.Limits
	cache  *cache.PlanCache
	epoch  uint64
	log    logrus.FieldLogger
}

// Result is one answered query; Index is its 1-based position in the batch.
type Result struct {
	Index int
	Plan  model.Plan
}

type Option func(*Planner)

// WithTop sets how many ranked paths a plan keeps. Values < 1 are ignored.
func WithTop(k int) Option {
	return func(p *Planner) {
		if k > 0 {
			p.top = k
		}
	}
}

// WithLimits bounds each enumeration.
func WithLimits(l algo.Limits) Option {
	return func(p *Planner) { p.limits = l }
}

// WithCache memoizes plans under the cache's current epoch.
func WithCache(c *cache.PlanCache) Option {
	return func(p *Planner) {
		p.cache = c
		if c != nil {
			p.epoch = c.Epoch()
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

func New(g algo.Graph, opts ...Option) *Planner {
	p := &Planner{
		graph: g,
		top:   algo.DefaultTop,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan answers a single query. Unknown cities and unreachable destinations
// give a plan without paths, not an error. When the path limit stops the
// search the plan is ranked from what was found and marked Truncated.
func (p *Planner) Plan(ctx context.Context, q model.Query) (model.Plan, error) {
	key := cache.PlanKey{Origin: q.Origin, Destination: q.Destination, Criterion: q.Criterion, Epoch: p.epoch}
	if p.cache != nil {
		if plan, ok := p.cache.Get(key); ok {
			plan.CacheHit = true
			return plan, nil
		}
	}

	paths, err := algo.Enumerate(ctx, p.graph, q.Origin, q.Destination, p.limits)
	truncated := false
	switch {
	case errors.Is(err, algo.ErrPathLimit):
		truncated = true
	case err != nil:
		return model.Plan{}, fmt.Errorf("planner: %s -> %s: %w", q.Origin, q.Destination, err)
	}

	plan := model.Plan{
		Query:     q,
		Paths:     algo.Select(paths, q.Criterion, p.top),
		Found:     len(paths),
		Truncated: truncated,
	}

	p.log.WithFields(logrus.Fields{
		"origin":      q.Origin,
		"destination": q.Destination,
		"criterion":   q.Criterion.String(),
		"found":       plan.Found,
		"truncated":   truncated,
	}).Debug("query planned")

	if p.cache != nil {
		p.cache.Put(key, plan)
	}
	return plan, nil
}

// PlanAll answers queries with up to workers running at once. Results are
// always in query order. The first error cancels the remaining queries.
func (p *Planner) PlanAll(ctx context.Context, queries []model.Query, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			plan, err := p.Plan(gctx, q)
			if err != nil {
				return err
			}
			results[i] = Result{Index: i + 1, Plan: plan}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
