package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/coin-tracker/internal/pkg/clock"
)

// TTL - ограниченный по размеру кэш с временем жизни записей.
// При переполнении вытесняется давно не использованная запись, просроченные записи считаются промахом.
type TTL[V any] struct {
	mu       sync.Mutex
	capacity int
	clock    clock.Clock
	ll       *list.List
	items    map[string]*list.Element
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// New - capacity <= 0 трактуется как 1.
func New[V any](capacity int, c clock.Clock) *TTL[V] {
	if capacity <= 0 {
		capacity = 1
	}
	if c == nil {
		c = clock.NewRealClock()
	}
	return &TTL[V]{
		capacity: capacity,
		clock:    c,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		return zero, false
	}
	e := el.Value.(*entry[V])
	if !c.clock.Now().Before(e.expiresAt) {
		c.removeElement(el)
		return zero, false
	}
	c.ll.MoveToFront(el)
	return e.value, true
}

func (c *TTL[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.clock.Now().Add(ttl)
	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
	c.items[key] = el
	for c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back())
	}
}

func (c *TTL[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *TTL[V]) removeElement(el *list.Element) {
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry[V]).key)
}
