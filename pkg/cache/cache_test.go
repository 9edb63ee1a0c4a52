package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTL(t *testing.T) {
	c, err := New[[]int](10, time.Minute)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", []int{1, 2})
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	t.Run("replace", func(t *testing.T) {
		c.Set("k", []int{3})
		v, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, []int{3}, v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("delete", func(t *testing.T) {
		c.Set("d", []int{3})
		c.Delete("d")
		_, ok := c.Get("d")
		assert.False(t, ok)
		c.Delete("never-set")
	})
}

func TestTTL_Expires(t *testing.T) {
	c, err := New[string](10, 50*time.Millisecond)
	require.NoError(t, err)

	c.Set("k", "v")
	_, ok := c.Get("k")
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestTTL_Eviction(t *testing.T) {
	c, err := New[string](2, time.Hour)
	require.NoError(t, err)

	c.Set("a", "1")
	c.Set("b", "2")
	_, _ = c.Get("a")
	c.Set("c", "3")

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestNew_Invalid(t *testing.T) {
	_, err := New[string](0, time.Minute)
	assert.Error(t, err)
	_, err = New[string](10, 0)
	assert.Error(t, err)
}

func TestTTL_Concurrent(t *testing.T) {
	c, err := New[int](100, time.Minute)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", j%20)
				c.Set(key, i)
				_, _ = c.Get(key)
				if j%7 == 0 {
					c.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 20)
}
