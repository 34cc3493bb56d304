package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetPut(t *testing.T) {
	c := New[string, int](4)

	_, ok := c.Get("active")
	assert.False(t, ok)

	c.Put("active", 1)
	c.Put("active", 2)
	v, ok := c.Get("active")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)

	assert.False(t, c.Put("a", 1))
	assert.False(t, c.Put("b", 2))
	_, _ = c.Get("a") // b is now the oldest
	assert.True(t, c.Put("c", 3))

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestCache_RemoveClear(t *testing.T) {
	c := New[int, string](8)
	for i := 0; i < 5; i++ {
		c.Put(i, fmt.Sprint(i))
	}

	c.Remove(3)
	c.Remove(42)
	assert.Equal(t, 4, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	c.Put(1, "again")
	assert.Equal(t, 1, c.Len())
}

func TestCache_Stats(t *testing.T) {
	c := New[string, int](0)
	assert.Equal(t, DefaultCapacity, c.Stats().Capacity)
	assert.Zero(t, c.Stats().HitRate())

	c.Put("x", 1)
	_, _ = c.Get("x")
	_, _ = c.Get("x")
	_, _ = c.Get("y")

	s := c.Stats()
	assert.Equal(t, 1, s.Size)
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 2.0/3.0, s.HitRate(), 1e-9)
}

func TestCache_GetOrCompute(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	compute := func() (int, error) {
		calls++
		return 7, nil
	}

	v, hit, err := c.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 7, v)

	v, hit, err = c.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)
}

func TestCache_GetOrComputeErrorNotCached(t *testing.T) {
	c := New[string, int](4)
	boom := errors.New("boom")

	_, hit, err := c.GetOrCompute("k", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, hit)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := (g + i) % 32
				if _, ok := c.Get(key); !ok {
					c.Put(key, i)
				}
				if i%50 == 0 {
					c.Clear()
				}
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}

func BenchmarkCache_GetOrCompute(b *testing.B) {
	c := New[string, int](64)
	keys := make([]string, 128)
	for i := range keys {
		keys[i] = fmt.Sprintf("expr-%d", i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.GetOrCompute(keys[i%len(keys)], func() (int, error) { return i, nil })
	}
}
