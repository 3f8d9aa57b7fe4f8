package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv3903/flightplan/internal/model"
)

func key(origin string) PlanKey {
	return PlanKey{Origin: origin, Destination: "Z", Criterion: model.ByCost}
}

func plan(origin string) model.Plan {
	return model.Plan{Query: model.Query{Origin: origin, Destination: "Z"}, Found: 1}
}

func TestPlanCache_GetPut(t *testing.T) {
	c := New(4)

	_, ok := c.Get(key("A"))
	assert.False(t, ok)

	c.Put(key("A"), plan("A"))
	got, ok := c.Get(key("A"))
	require.True(t, ok)
	assert.Equal(t, "A", got.Query.Origin)

	_, ok = c.Get(PlanKey{Origin: "A", Destination: "Z", Criterion: model.ByTime})
	assert.False(t, ok, "criterion is part of the key")

	assert.Equal(t, Stats{Gets: 3, Hits: 1, Puts: 1, Len: 1}, c.Stats())
}

func TestPlanCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Put(key("A"), plan("A"))
	c.Put(key("B"), plan("B"))

	_, ok := c.Get(key("A"))
	require.True(t, ok)

	c.Put(key("C"), plan("C"))

	_, ok = c.Get(key("B"))
	assert.False(t, ok)
	_, ok = c.Get(key("A"))
	assert.True(t, ok)
	_, ok = c.Get(key("C"))
	assert.True(t, ok)
	assert.Equal(t, 1, c.Stats().Evictions)
}

func TestPlanCache_ReplaceDoesNotGrow(t *testing.T) {
	c := New(2)
	c.Put(key("A"), plan("A"))
	p := plan("A")
	p.Found = 7
	c.Put(key("A"), p)

	got, ok := c.Get(key("A"))
	require.True(t, ok)
	assert.Equal(t, 7, got.Found)
	assert.Equal(t, 1, c.Stats().Len)
}

func TestPlanCache_BumpEpochAndClear(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultCapacity, c.capacity)

	c.Put(key("A"), plan("A"))
	assert.Equal(t, uint64(1), c.BumpEpoch())
	assert.Equal(t, uint64(1), c.Epoch())
	_, ok := c.Get(key("A"))
	assert.False(t, ok)

	c.Put(key("B"), plan("B"))
	c.Clear()
	assert.Equal(t, Stats{}, c.Stats())
	assert.Equal(t, uint64(1), c.Epoch())
}

func TestPlanCache_Concurrent(t *testing.T) {
	c := New(16)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				k := key(fmt.Sprintf("%d-%d", w, i%20))
				c.Put(k, plan(k.Origin))
				c.Get(k)
			}
		}(w)
	}
	wg.Wait()

	s := c.Stats()
	assert.Equal(t, 800, s.Puts)
	assert.Equal(t, 800, s.Gets)
	assert.LessOrEqual(t, s.Len, 16)
}
