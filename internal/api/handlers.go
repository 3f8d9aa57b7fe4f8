package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atharv3903/flightplan/internal/model"
)

func queryFromRequest(r model.PlanRequest) model.Query {
	return model.Query{
		Origin:      r.From,
		Destination: r.To,
		Criterion:   model.ParseCriterion(r.By),
	}
}

func (s *Server) handlePlan(c *gin.Context) {
	req := model.PlanRequest{From: c.Query("from"), To: c.Query("to"), By: c.Query("by")}
	if req.From == "" || req.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	_, p := s.current()
	plan, err := p.Plan(c.Request.Context(), queryFromRequest(req))
	if err != nil {
		s.log.WithError(err).Warn("plan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan.Response())
}

func (s *Server) handlePlans(c *gin.Context) {
	var reqs []model.PlanRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	queries := make([]model.Query, len(reqs))
	for i, r := range reqs {
		queries[i] = queryFromRequest(r)
	}

	_, p := s.current()
	results, err := p.PlanAll(c.Request.Context(), queries, s.opts.Workers)
	if err != nil {
		s.log.WithError(err).Warn("batch plan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]model.PlanResponse, len(results))
	for i, r := range results {
		resp[i] = r.Plan.Response()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCities(c *gin.Context) {
	n, _ := s.current()
	c.JSON(http.StatusOK, gin.H{"cities": n.Cities()})
}

// handleDOT renders the network; from and to, when both given, highlight
// the selected paths of that query.
func (s *Server) handleDOT(c *gin.Context) {
	n, p := s.current()

	var highlight []model.Path
	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		plan, err := p.Plan(c.Request.Context(), queryFromRequest(model.PlanRequest{From: from, To: to, By: c.Query("by")}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		highlight = plan.Paths
	}

	dot, err := n.DOT(highlight...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz", []byte(dot))
}

func (s *Server) handleReload(c *gin.Context) {
	if s.opts.Loader == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "reload not configured"})
		return
	}
	if !s.reloading.SetToIf(false, true) {
		c.JSON(http.StatusConflict, gin.H{"error": "reload already running"})
		return
	}
	defer s.reloading.UnSet()

	n, err := s.opts.Loader(c.Request.Context())
	if err != nil {
		s.log.WithError(err).Error("network reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	epoch := s.opts.Cache.BumpEpoch()
	s.swap(n)
	s.log.WithFields(logrus.Fields{
		"cities": n.CityCount(),
		"edges":  n.EdgeCount(),
		"epoch":  epoch,
	}).Info("network reloaded")

	c.JSON(http.StatusOK, gin.H{"ok": true, "cities": n.CityCount(), "edges": n.EdgeCount(), "epoch": epoch})
}
