package flightio_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv3903/flightplan/internal/flightio"
	"github.com/atharv3903/flightplan/internal/model"
	"github.com/atharv3903/flightplan/internal/network"
	"github.com/atharv3903/flightplan/internal/planner"
)

func TestReadEdges(t *testing.T) {
	in := "3\n" +
		" Dallas | Austin | 98.50 | 47 \n" +
		"Austin|Houston|95|39\n" +
		"Dallas|Houston|101|51\n" +
		"trailing lines are ignored\n"

	edges, err := flightio.ReadEdges(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []model.Edge{
		{A: "Dallas", B: "Austin", Cost: 98.5, Time: 47},
		{A: "Austin", B: "Houston", Cost: 95, Time: 39},
		{A: "Dallas", B: "Houston", Cost: 101, Time: 51},
	}, edges)
}

func TestReadEdges_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line int
	}{
		{"empty", "", flightio.ErrMalformedCount, 1},
		{"bad count", "three\nA|B|1|1\n", flightio.ErrMalformedCount, 1},
		{"negative count", "-1\n", flightio.ErrMalformedCount, 1},
		{"short file", "2\nA|B|1|1\n", flightio.ErrMalformedCount, 3},
		{"few fields", "1\nA|B|1\n", flightio.ErrMalformedRecord, 2},
		{"bad cost", "1\nA|B|x|1\n", flightio.ErrMalformedRecord, 2},
		{"negative cost", "1\nA|B|-1|1\n", flightio.ErrMalformedRecord, 2},
		{"fractional time", "1\nA|B|1|1.5\n", flightio.ErrMalformedRecord, 2},
		{"empty city", "1\n|B|1|1\n", flightio.ErrMalformedRecord, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := flightio.ReadEdges(strings.NewReader(c.in))
			require.ErrorIs(t, err, c.want)
			var pe *flightio.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, c.line, pe.Line)
		})
	}
}

func TestReadQueries(t *testing.T) {
	in := "\n3\nDallas|Houston|T\nAustin | Dallas | c\nA|B|x\n"

	queries, err := flightio.ReadQueries(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []model.Query{
		{Origin: "Dallas", Destination: "Houston", Criterion: model.ByTime},
		{Origin: "Austin", Destination: "Dallas", Criterion: model.ByCost},
		{Origin: "A", Destination: "B", Criterion: model.ByCost},
	}, queries)

	_, err = flightio.ReadQueries(strings.NewReader("1\nA|B\n"))
	assert.ErrorIs(t, err, flightio.ErrMalformedRecord)
}

func TestWriteReport_EndToEnd(t *testing.T) {
	edges, err := flightio.ReadEdges(strings.NewReader("4\nA|B|100|2\nB|C|50|3\nA|C|200|1\nD|E|5|5\n"))
	require.NoError(t, err)
	queries, err := flightio.ReadQueries(strings.NewReader("4\nA|C|T\nA|C|C\nA|D|C\nA|Zzz|T\n"))
	require.NoError(t, err)

	p := planner.New(network.Build(edges))
	results, err := p.PlanAll(context.Background(), queries, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, flightio.WriteReport(&buf, results))

	want := `Flight 1: A, C (Time)
Path 1: A -> C. Time: 1 Cost: 200.00
Path 2: A -> B -> C. Time: 5 Cost: 150.00

Flight 2: A, C (Cost)
Path 1: A -> B -> C. Time: 5 Cost: 150.00
Path 2: A -> C. Time: 1 Cost: 200.00

Flight 3: A, D (Cost)
No available flight plan from A to D.

Flight 4: A, Zzz (Time)
No available flight plan from A to Zzz.

`
	assert.Equal(t, want, buf.String())
}
