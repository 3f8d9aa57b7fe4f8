package cache

import (
	"container/list"
	"sync"

	"github.com/atharv3903/flightplan/internal/model"
)

// DefaultCapacity is the default number of plans the cache will hold.
const DefaultCapacity = 2048

// PlanKey identifies a plan. Epoch changes whenever the network is reloaded,
// so plans computed against an older network are never returned.
type PlanKey struct {
	Origin      string
	Destination string
	Criterion   model.Criterion
	Epoch       uint64
}

type planEntry struct {
	key PlanKey
	val model.Plan
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Gets      int `json:"gets"`
	Hits      int `json:"hits"`
	Puts      int `json:"puts"`
	Evictions int `json:"evictions"`
	Len       int `json:"len"`
}

// PlanCache is a bounded LRU cache of ranked plans.
// It's safe for concurrent use.
type PlanCache struct {
	mu       sync.Mutex
	m        map[PlanKey]*list.Element
	ll       *list.List
	capacity int
	epoch    uint64
	stats    Stats
}

// New returns a plan cache with the provided capacity; capacity <= 0 selects
// DefaultCapacity.
func New(capacity int) *PlanCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &PlanCache{
		m:        make(map[PlanKey]*list.Element, capacity),
		ll:       list.New(),
		capacity: capacity,
	}
}

// Get returns the plan for key, and true if it was found.
// It updates LRU position on hit.
func (c *PlanCache) Get(key PlanKey) (model.Plan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Gets++
	if el, ok := c.m[key]; ok {
		c.stats.Hits++
		c.ll.MoveToFront(el)
		return el.Value.(planEntry).val, true
	}
	return model.Plan{}, false
}

// Put inserts a plan. If insertion causes the cache to exceed capacity, the
// least-recently-used entry is evicted.
func (c *PlanCache) Put(key PlanKey, v model.Plan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Puts++
	if el, ok := c.m[key]; ok {
		el.Value = planEntry{key: key, val: v}
		c.ll.MoveToFront(el)
		return
	}

	c.m[key] = c.ll.PushFront(planEntry{key: key, val: v})

	if c.ll.Len() > c.capacity {
		if tail := c.ll.Back(); tail != nil {
			delete(c.m, tail.Value.(planEntry).key)
			c.ll.Remove(tail)
			c.stats.Evictions++
		}
	}
}

func (c *PlanCache) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

// BumpEpoch starts a new epoch and drops all entries of the old one.
func (c *PlanCache) BumpEpoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.m = make(map[PlanKey]*list.Element, c.capacity)
	c.ll.Init()
	return c.epoch
}

// Clear fully resets entries and stats. The epoch is kept.
func (c *PlanCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[PlanKey]*list.Element, c.capacity)
	c.ll.Init()
	c.stats = Stats{}
}

// Stats returns a snapshot of the counters.
func (c *PlanCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Len = c.ll.Len()
	return s
}
