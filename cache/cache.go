package cache

import (
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"
)

// Cache holds values fetched by key for a limited time. Concurrent Fetch
// calls for the same key wait for a single fetch.
type Cache[T any] struct {
	c     *ccache.Cache[T]
	mux   sync.Mutex
	locks map[string]*sync.Mutex
}

func New[T any](maxSize int64) *Cache[T] {
	c := ccache.New(
		ccache.Configure[T]().
			MaxSize(maxSize).
			GetsPerPromote(3).
			ItemsToPrune(1),
	)
	return &Cache[T]{
		c:     c,
		mux:   sync.Mutex{},
		locks: make(map[string]*sync.Mutex),
	}
}

func (c *Cache[T]) keyLock(k string) *sync.Mutex {
	c.mux.Lock()
	defer c.mux.Unlock()
	l, ok := c.locks[k]
	if !ok {
		l = &sync.Mutex{}
		c.locks[k] = l
	}
	return l
}

func (c *Cache[T]) Fetch(k string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	l := c.keyLock(k)
	l.Lock()
	defer l.Unlock()

	item, err := c.c.Fetch(k, ttl, fetch)
	if nil != err {
		var zero T
		return zero, err
	}
	return item.Value(), nil
}

// Get returns the unexpired value of k without fetching it.
func (c *Cache[T]) Get(k string) (T, bool) {
	item := c.c.Get(k)
	if nil == item || item.Expired() {
		var zero T
		return zero, false
	}
	return item.Value(), true
}

func (c *Cache[T]) Stop() {
	c.c.Stop()
}
