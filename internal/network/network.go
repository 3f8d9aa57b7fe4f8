// Package network holds the flight network: an undirected multigraph stored
// as per-city leg lists. A Network is built once and is read-only afterwards,
// so it is safe to share between concurrent queries.
package network

import (
	"slices"

	"github.com/atharv3903/flightplan/internal/model"
	"golang.org/x/exp/maps"
)

type Network struct {
	legs  map[string][]model.Leg
	edges []model.Edge
}

// Build creates a network from an edge list. Every edge becomes two legs with
// identical weights, and both endpoints get an entry even when one of them
// never departs anywhere else. Parallel edges are all kept.
func Build(edges []model.Edge) *Network {
	n := &Network{
		legs:  make(map[string][]model.Leg),
		edges: make([]model.Edge, 0, len(edges)),
	}
	for _, e := range edges {
		n.addUndirectedLeg(e)
	}
	return n
}

func (n *Network) addUndirectedLeg(e model.Edge) {
	n.legs[e.A] = append(n.legs[e.A], model.Leg{To: e.B, Cost: e.Cost, Time: e.Time})
	n.legs[e.B] = append(n.legs[e.B], model.Leg{To: e.A, Cost: e.Cost, Time: e.Time})
	n.edges = append(n.edges, e)
}

// Contains reports whether city is an endpoint of any edge.
func (n *Network) Contains(city string) bool {
	_, ok := n.legs[city]
	return ok
}

// LegsFrom returns the legs departing city in insertion order. The result is
// empty both for unknown cities and for cities without legs; use Contains to
// tell them apart. Callers must not modify the returned slice.
func (n *Network) LegsFrom(city string) []model.Leg {
	return n.legs[city]
}

// Cities returns all known cities in lexical order.
func (n *Network) Cities() []string {
	cities := maps.Keys(n.legs)
	slices.Sort(cities)
	return cities
}

// Edges returns a copy of the edges the network was built from.
func (n *Network) Edges() []model.Edge {
	return slices.Clone(n.edges)
}

func (n *Network) CityCount() int { return len(n.legs) }

func (n *Network) EdgeCount() int { return len(n.edges) }
