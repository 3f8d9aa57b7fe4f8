package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tevino/abool"

	"github.com/atharv3903/flightplan/internal/cache"
	"github.com/atharv3903/flightplan/internal/network"
	"github.com/atharv3903/flightplan/internal/planner"
)

// Loader rebuilds the network from its source.
type Loader func(ctx context.Context) (*network.Network, error)

type Options struct {
	// Loader is used by POST /network/reload; nil disables reloading.
	Loader Loader
	Cache  *cache.PlanCache
	// Planner options applied to every planner the server creates.
	Planner []planner.Option
	// Workers bounds parallel planning for batch requests.
	Workers int
	Logger  logrus.FieldLogger
}

type Server struct {
	Engine *gin.Engine

	opts      Options
	log       logrus.FieldLogger
	reloading *abool.AtomicBool

	mu      sync.RWMutex
	net     *network.Network
	planner *planner.Planner
}

func New(n *network.Network, opts Options) *Server {
	if opts.Cache == nil {
		opts.Cache = cache.New(cache.DefaultCapacity)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	s := &Server{
		Engine:    gin.New(),
		opts:      opts,
		log:       opts.Logger,
		reloading: abool.New(),
	}
	s.swap(n)
	s.routes()
	return s
}

// swap installs a network and a planner bound to the cache's current epoch.
func (s *Server) swap(n *network.Network) {
	popts := append([]planner.Option{
		planner.WithCache(s.opts.Cache),
		planner.WithLogger(s.log),
	}, s.opts.Planner...)
	p := planner.New(n, popts...)

	s.mu.Lock()
	s.net = n
	s.planner = p
	s.mu.Unlock()
}

func (s *Server) current() (*network.Network, *planner.Planner) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.net, s.planner
}

func (s *Server) routes() {
	s.Engine.Use(gin.Recovery(), s.requestLogger(), cors.Default())

	s.Engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	s.Engine.GET("/plan", s.handlePlan)
	s.Engine.POST("/plans", s.handlePlans)

	s.Engine.GET("/network/cities", s.handleCities)
	s.Engine.GET("/network.dot", s.handleDOT)
	s.Engine.POST("/network/reload", s.handleReload)

	s.Engine.POST("/debug/clear_cache", func(c *gin.Context) {
		s.opts.Cache.Clear()
		c.String(http.StatusOK, "cleared")
	})
	s.Engine.GET("/debug/cache_stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.opts.Cache.Stats())
	})

	s.Engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Debug("request")
	}
}
