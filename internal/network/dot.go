package network

import (
	"strconv"

	"github.com/atharv3903/flightplan/internal/model"
	"github.com/awalterschulze/gographviz"
)

const (
	graphName           = "network"
	graphColorEdge      = "#666666"
	graphColorHighlight = "#d62728"
	graphColorEndpoint  = "#ffbf80"
	graphColorCity      = "#e0e0e0"
)

// DOT renders the network as an undirected Graphviz graph. Legs and cities
// that lie on any of the given paths are highlighted.
func (n *Network) DOT(highlight ...model.Path) (string, error) {
	onPath := make(map[[2]string]bool)
	endpoints := make(map[string]bool)
	for _, p := range highlight {
		if len(p.Cities) == 0 {
			continue
		}
		endpoints[p.Cities[0]] = true
		endpoints[p.Cities[len(p.Cities)-1]] = true
		for i := 1; i < len(p.Cities); i++ {
			onPath[pairKey(p.Cities[i-1], p.Cities[i])] = true
		}
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", err
	}
	graph.AddAttr(graphName, "rankdir", "LR")
	graph.AddAttr(graphName, "nodesep", "0.5")

	for _, city := range n.Cities() {
		color := graphColorCity
		if endpoints[city] {
			color = graphColorEndpoint
		}
		if err := graph.AddNode(graphName, quote(city), map[string]string{
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": quote(color),
			"fontsize":  "12",
		}); err != nil {
			return "", err
		}
	}

	for _, e := range n.edges {
		attrs := map[string]string{
			"label": quote(strconv.FormatFloat(e.Cost, 'f', 2, 64) + " / " + strconv.Itoa(e.Time)),
			"color": quote(graphColorEdge),
		}
		if onPath[pairKey(e.A, e.B)] {
			attrs["color"] = quote(graphColorHighlight)
			attrs["penwidth"] = "2"
		}
		if err := graph.AddEdge(quote(e.A), quote(e.B), false, attrs); err != nil {
			return "", err
		}
	}

	return graph.String(), nil
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

func quote(s string) string { return strconv.Quote(s) }
