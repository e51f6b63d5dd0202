package registry

import (
	"sort"
	"sync"
)

// Index is a name-keyed collection whose listings are always sorted by name
type Index[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewIndex creates an empty Index
func NewIndex[T any]() *Index[T] {
	return &Index[T]{
		items: make(map[string]T),
	}
}

// Put stores item under name, replacing any previous entry
func (x *Index[T]) Put(name string, item T) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.items[name] = item
}

// Get retrieves an item by name
func (x *Index[T]) Get(name string) (T, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	item, ok := x.items[name]
	return item, ok
}

// Remove deletes name if present
func (x *Index[T]) Remove(name string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	delete(x.items, name)
}

// Has checks if name is present
func (x *Index[T]) Has(name string) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()

	_, ok := x.items[name]
	return ok
}

// Names returns all names in sorted order
func (x *Index[T]) Names() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	names := make([]string, 0, len(x.items))
	for name := range x.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Values returns all items ordered by their names
func (x *Index[T]) Values() []T {
	names := x.Names()

	x.mu.RLock()
	defer x.mu.RUnlock()

	values := make([]T, 0, len(names))
	for _, name := range names {
		if item, ok := x.items[name]; ok {
			values = append(values, item)
		}
	}
	return values
}

// Map returns a copy of the underlying map
func (x *Index[T]) Map() map[string]T {
	x.mu.RLock()
	defer x.mu.RUnlock()

	m := make(map[string]T, len(x.items))
	for k, v := range x.items {
		m[k] = v
	}
	return m
}

// Count returns the number of items
func (x *Index[T]) Count() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return len(x.items)
}
