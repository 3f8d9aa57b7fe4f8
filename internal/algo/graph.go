package algo

import "github.com/atharv3903/flightplan/internal/model"

// Graph is the read-only view of a network the enumerator walks.
// *network.Network satisfies it.
type Graph interface {
	Contains(city string) bool
	LegsFrom(city string) []model.Leg
}
