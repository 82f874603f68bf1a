package filter

import (
	"container/list"
	"sync"
)

// programCache keeps the most recently compiled filters by expression.
type programCache struct {
	capacity int
	order    *list.List
	byExpr   map[string]*list.Element
	mu       sync.Mutex
}

type cached struct {
	expression string
	filter     Filter
}

func newProgramCache(capacity int) *programCache {
	return &programCache{
		capacity: capacity,
		order:    list.New(),
		byExpr:   make(map[string]*list.Element),
	}
}

func (c *programCache) get(expression string) (Filter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.byExpr[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cached).filter, true
}

func (c *programCache) put(expression string, f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.byExpr[expression]; ok {
		el.Value.(*cached).filter = f
		c.order.MoveToFront(el)
		return
	}

	c.byExpr[expression] = c.order.PushFront(&cached{expression: expression, filter: f})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.byExpr, oldest.Value.(*cached).expression)
	}
}

func (c *programCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
