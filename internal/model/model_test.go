package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCriterion(t *testing.T) {
	cases := []struct {
		code string
		want Criterion
	}{
		{"T", ByTime},
		{"t", ByTime},
		{" T ", ByTime},
		{"C", ByCost},
		{"c", ByCost},
		{"X", ByCost},
		{"", ByCost},
		{"TT", ByCost},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseCriterion(c.code), "code %q", c.code)
	}
}

func TestCriterionNames(t *testing.T) {
	assert.Equal(t, "Time", ByTime.String())
	assert.Equal(t, "Cost", ByCost.String())
	assert.Equal(t, "T", ByTime.Code())
	assert.Equal(t, "C", ByCost.Code())
}

func TestPlanResponse_EmptyPathsEncodeAsList(t *testing.T) {
	p := Plan{Query: Query{Origin: "A", Destination: "D", Criterion: ByCost}}
	resp := p.Response()
	assert.NotNil(t, resp.Paths)
	assert.Empty(t, resp.Paths)
	assert.Equal(t, "Cost", resp.Criterion)
}
