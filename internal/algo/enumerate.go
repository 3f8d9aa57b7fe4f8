package algo

import (
	"context"
	"errors"

	"github.com/atharv3903/flightplan/internal/model"
)

// ErrPathLimit is returned with the paths found so far when Limits.MaxPaths
// stops an enumeration early.
var ErrPathLimit = errors.New("algo: path limit reached")

// cancelCheckEvery is how many stack steps run between context checks.
const cancelCheckEvery = 1024

// Limits bounds an enumeration. Zero fields mean unlimited.
type Limits struct {
	// MaxPaths stops the search once this many paths were recorded.
	MaxPaths int
	// MaxDepth is the largest number of legs a recorded path may have.
	MaxDepth int
}

// frame is one city on the current path. The stack of frames, bottom to
// top, is the path so far.
type frame struct {
	city string
	next int // index of the next leg to try
	cost float64
	time int
}

// FindAllPaths returns every simple path from origin to dst in DFS order.
// Unknown cities yield no paths. The destination is terminal: a path is
// recorded on reaching it and never extended through it, and origin stays on
// the path for the whole search, so origin == dst yields no paths.
func FindAllPaths(g Graph, origin, dst string) []model.Path {
	paths, _ := Enumerate(context.Background(), g, origin, dst, Limits{})
	return paths
}

// Enumerate is FindAllPaths with limits and cancellation. On ErrPathLimit or
// a context error the paths found before stopping are returned too.
func Enumerate(ctx context.Context, g Graph, origin, dst string, lim Limits) ([]model.Path, error) {
	var result []model.Path
	if !g.Contains(origin) || !g.Contains(dst) {
		return result, nil
	}

	visited := map[string]bool{origin: true}
	stack := []frame{{city: origin}}

	for steps := 0; len(stack) > 0; steps++ {
		if steps%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}

		top := &stack[len(stack)-1]
		legs := g.LegsFrom(top.city)
		if top.next >= len(legs) {
			delete(visited, top.city)
			stack = stack[:len(stack)-1]
			continue
		}

		leg := legs[top.next]
		top.next++
		if visited[leg.To] {
			continue
		}

		cost := top.cost + leg.Cost
		time := top.time + leg.Time

		if leg.To == dst {
			result = append(result, model.Path{Cities: extendPath(stack, leg.To), TotalCost: cost, TotalTime: time})
			if lim.MaxPaths > 0 && len(result) >= lim.MaxPaths {
				return result, ErrPathLimit
			}
			continue
		}

		// The extended path has one leg per frame; a full-length path that
		// misses the destination is not worth a frame.
		if lim.MaxDepth > 0 && len(stack) >= lim.MaxDepth {
			continue
		}

		visited[leg.To] = true
		stack = append(stack, frame{city: leg.To, cost: cost, time: time})
	}

	return result, nil
}

// extendPath copies the cities on the stack followed by last.
func extendPath(stack []frame, last string) []string {
	path := make([]string, len(stack)+1)
	for i, f := range stack {
		path[i] = f.city
	}
	path[len(stack)] = last
	return path
}
