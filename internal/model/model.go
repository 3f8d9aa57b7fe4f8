package model

import "strings"

// Leg is one directed half of a flight connection, stored under its
// departure city.
type Leg struct {
	To   string
	Cost float64
	Time int
}

// Edge is one input record: an undirected flight between two cities.
type Edge struct {
	A    string  `json:"city_a"`
	B    string  `json:"city_b"`
	Cost float64 `json:"cost"`
	Time int     `json:"time"`
}

// Criterion selects the ranking dimension of a query.
type Criterion int

const (
	ByCost Criterion = iota
	ByTime
)

// ParseCriterion maps a request code to a Criterion. "T" (any case) is time,
// everything else is cost.
func ParseCriterion(code string) Criterion {
	if strings.EqualFold(strings.TrimSpace(code), "T") {
		return ByTime
	}
	return ByCost
}

func (c Criterion) String() string {
	if c == ByTime {
		return "Time"
	}
	return "Cost"
}

// Code is the single-letter form used in request files and query strings.
func (c Criterion) Code() string {
	if c == ByTime {
		return "T"
	}
	return "C"
}

type Query struct {
	Origin      string
	Destination string
	Criterion   Criterion
}

// Path is a simple route from origin to destination with its totals.
type Path struct {
	Cities    []string `json:"cities"`
	TotalCost float64  `json:"total_cost"`
	TotalTime int      `json:"total_time"`
}

// Plan is the ranked, truncated answer to one query.
type Plan struct {
	Query     Query
	Paths     []Path
	Found     int
	Truncated bool
	CacheHit  bool
}

type PlanRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	By   string `json:"by"`
}

type PlanResponse struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Criterion string `json:"criterion"`
	Paths     []Path `json:"paths"`
	Found     int    `json:"found"`
	Truncated bool   `json:"truncated"`
	CacheHit  bool   `json:"cache_hit"`
}

// Response converts a plan to its JSON shape.
func (p Plan) Response() PlanResponse {
	paths := p.Paths
	if paths == nil {
		paths = []Path{}
	}
	return PlanResponse{
		From:      p.Query.Origin,
		To:        p.Query.Destination,
		Criterion: p.Query.Criterion.String(),
		Paths:     paths,
		Found:     p.Found,
		Truncated: p.Truncated,
		CacheHit:  p.CacheHit,
	}
}
