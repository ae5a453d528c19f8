package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

var errMiss = errors.New("miss")

// lookup reports whether key is cached, marking it as used on a hit.
func lookup[K comparable, V any](c *Cache[K, V], key K) (V, bool) {
	v, err := c.GetOrCreate(key, func() (V, error) {
		var zero V
		return zero, errMiss
	})
	return v, err == nil
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int](0)

	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}

	for range 3 {
		v, err := c.GetOrCreate("a", create)
		if err != nil || v != 42 {
			t.Fatalf("GetOrCreate = %d, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if v, ok := lookup(c, "a"); !ok || v != 42 {
		t.Errorf("lookup = %d, %v", v, ok)
	}
	if _, ok := lookup(c, "b"); ok {
		t.Error("lookup(b) should miss")
	}
}

func TestCache_CreateError(t *testing.T) {
	c := New[int, string](0)
	boom := errors.New("boom")

	if _, err := c.GetOrCreate(1, func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed create should not be stored")
	}
}

func TestCache_Eviction(t *testing.T) {
	c := New[int, int](8)
	for i := range 8 {
		_, _ = c.GetOrCreate(i, func() (int, error) { return i, nil })
	}
	// Touch 0 so it survives.
	lookup(c, 0)

	_, _ = c.GetOrCreate(100, func() (int, error) { return 100, nil })

	if got := c.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6 after eviction", got)
	}
	if _, ok := lookup(c, 0); !ok {
		t.Error("recently used key 0 was evicted")
	}
	if _, ok := lookup(c, 100); !ok {
		t.Error("new key was evicted")
	}
	if _, ok := lookup(c, 1); ok {
		t.Error("oldest key 1 should be evicted")
	}
}

func TestCache_Clear(t *testing.T) {
	c := New[int, int](0)
	for i := range 5 {
		_, _ = c.GetOrCreate(i, func() (int, error) { return i * 10, nil })
	}

	values := c.Clear()
	if len(values) != 5 {
		t.Errorf("Clear returned %d values, want 5", len(values))
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear", c.Len())
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](16)
	var created atomic.Int64

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				_, _ = c.GetOrCreate(i%4, func() (int, error) {
					created.Add(1)
					return i, nil
				})
			}
		}()
	}
	wg.Wait()

	if got := created.Load(); got != 4 {
		t.Errorf("created %d values, want 4", got)
	}
}
