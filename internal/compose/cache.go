package compose

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"mosaic/internal/viewmodel"
)

// entry is one cached binding together with its close-handler
// subscription state.
type entry struct {
	binding    Binding
	token      viewmodel.Token
	subscribed bool
}

// cache maps view-model identity to its binding. Lookups, subscription
// state, and eviction are serialized by one mutex; creation is
// additionally deduplicated per key so that N concurrent callers produce
// exactly one binding.
type cache struct {
	mu      sync.Mutex
	entries map[int64]*entry
	group   singleflight.Group
}

func newCache() *cache {
	return &cache{entries: make(map[int64]*entry)}
}

// lookup returns the binding for id, if one exists.
func (c *cache) lookup(id int64) (Binding, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok {
		return Binding{}, false
	}
	return e.binding, true
}

// getOrCreate returns the binding for id, calling create at most once
// across all concurrent callers when no binding exists yet. A failed
// create stores nothing.
func (c *cache) getOrCreate(id int64, create func() (Binding, error)) (Binding, error) {
	if b, ok := c.lookup(id); ok {
		return b, nil
	}

	v, err, _ := c.group.Do(strconv.FormatInt(id, 10), func() (any, error) {
		// A concurrent caller may have completed between the fast-path
		// lookup and entering the group.
		if b, ok := c.lookup(id); ok {
			return b, nil
		}

		b, err := create()
		if err != nil {
			return Binding{}, err
		}

		c.mu.Lock()
		c.entries[id] = &entry{binding: b}
		c.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return Binding{}, err
	}
	return v.(Binding), nil
}

// setSubscription records the close-handler token for id. Returns false
// if the entry no longer exists.
func (c *cache) setSubscription(id int64, t viewmodel.Token) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok {
		return false
	}
	e.token = t
	e.subscribed = true
	return true
}

// takeSubscription returns id's close-handler token and clears the
// subscription state. It returns false when no live subscription exists,
// which gives close handling its exactly-once guarantee.
func (c *cache) takeSubscription(id int64) (viewmodel.Token, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok || !e.subscribed {
		return 0, false
	}
	t := e.token
	e.token = 0
	e.subscribed = false
	return t, true
}

// evict removes id's entry, running cleanup inside the critical section
// so that no caller can observe the entry after its view has been
// removed. Returns false if no entry existed.
func (c *cache) evict(id int64, cleanup func(b Binding, token viewmodel.Token, subscribed bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok {
		return false
	}
	if cleanup != nil {
		cleanup(e.binding, e.token, e.subscribed)
	}
	delete(c.entries, id)
	return true
}

// len returns the number of cached bindings.
func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
