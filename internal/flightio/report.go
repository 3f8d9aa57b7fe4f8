package flightio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atharv3903/flightplan/internal/planner"
)

// WriteReport writes one block per result in input order:
//
//	Flight 1: Dallas, Houston (Time)
//	Path 1: Dallas -> Houston. Time: 51 Cost: 101.00
//	Path 2: Dallas -> Austin -> Houston. Time: 86 Cost: 193.50
//
// A query without paths gets a "No available flight plan" line instead.
// Every block ends with a blank line.
func WriteReport(w io.Writer, results []planner.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		q := r.Plan.Query
		fmt.Fprintf(bw, "Flight %d: %s, %s (%s)\n", r.Index, q.Origin, q.Destination, q.Criterion)
		if len(r.Plan.Paths) == 0 {
			fmt.Fprintf(bw, "No available flight plan from %s to %s.\n\n", q.Origin, q.Destination)
			continue
		}
		for i, p := range r.Plan.Paths {
			fmt.Fprintf(bw, "Path %d: %s. Time: %d Cost: %.2f\n",
				i+1, strings.Join(p.Cities, " -> "), p.TotalTime, p.TotalCost)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
