package cache

import (
	"sync"
)

// Cache memoizes loader results for the lifetime of one verification
// session. Each key is resolved at most once, errors included: a factory
// that rejects a code keeps rejecting it. Concurrent loads of the same
// key block on the first.
type Cache[T any] struct {
	m      sync.Map
	loader func(key string) (T, error)
}

type entry[T any] struct {
	mx    sync.Mutex
	done  bool
	value T
	err   error
}

func New[T any](loader func(key string) (T, error)) *Cache[T] {
	return &Cache[T]{
		m:      sync.Map{},
		loader: loader,
	}
}

func (c *Cache[T]) Load(key string) (T, error) {
	var e *entry[T]

	if v, ok := c.m.Load(key); ok {
		e = v.(*entry[T])
	} else {
		v1, _ := c.m.LoadOrStore(key, new(entry[T]))
		e = v1.(*entry[T])
	}

	e.mx.Lock()
	defer e.mx.Unlock()

	if !e.done {
		e.value, e.err = c.loader(key)
		e.done = true
	}

	return e.value, e.err
}
