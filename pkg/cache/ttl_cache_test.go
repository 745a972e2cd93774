package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTTLCache(t *testing.T) {
	t.Run("should return stored values until they expire", func(t *testing.T) {
		req := require.New(t)
		c := New[string, int](50*time.Millisecond, time.Hour)
		defer c.Close()

		c.Set("a", 1)
		v, ok := c.Get("a")
		req.True(ok)
		req.Equal(1, v)

		time.Sleep(80 * time.Millisecond)
		_, ok = c.Get("a")
		req.False(ok)
	})

	t.Run("should delete by predicate", func(t *testing.T) {
		req := require.New(t)
		c := New[string, bool](time.Minute, time.Hour)
		defer c.Close()

		c.Set("r1:u1", true)
		c.Set("r1:u2", false)
		c.Set("r2:u1", true)

		c.DeleteFunc(func(k string) bool { return strings.HasPrefix(k, "r1:") })

		req.Equal(1, c.Len())
		_, ok := c.Get("r2:u1")
		req.True(ok)
	})

	t.Run("should drop a load that raced with an invalidation", func(t *testing.T) {
		req := require.New(t)
		c := New[string, bool](time.Minute, time.Hour)
		defer c.Close()

		gen := c.Generation()
		c.DeleteFunc(func(k string) bool { return strings.HasPrefix(k, "r1:") })

		req.False(c.SetIfGeneration("r1:u1", true, gen))
		_, ok := c.Get("r1:u1")
		req.False(ok)

		req.True(c.SetIfGeneration("r1:u1", false, c.Generation()))
		v, ok := c.Get("r1:u1")
		req.True(ok)
		req.False(v)
	})

	t.Run("should move the generation on every removal", func(t *testing.T) {
		req := require.New(t)
		c := New[int, int](time.Minute, time.Hour)
		defer c.Close()

		gen := c.Generation()
		c.Set(1, 1)
		req.Equal(gen, c.Generation())

		c.Delete(1)
		afterDelete := c.Generation()
		req.NotEqual(gen, afterDelete)

		c.Clear()
		req.NotEqual(afterDelete, c.Generation())
	})

	t.Run("should sweep expired entries in the background", func(t *testing.T) {
		req := require.New(t)
		c := New[int, int](10*time.Millisecond, 20*time.Millisecond)
		defer c.Close()

		c.Set(1, 1)
		req.Eventually(func() bool { return c.Len() == 0 }, time.Second, 10*time.Millisecond)
	})

	t.Run("should clear everything", func(t *testing.T) {
		req := require.New(t)
		c := New[int, int](time.Minute, time.Hour)
		c.Set(1, 1)
		c.Set(2, 2)
		c.Clear()
		req.Zero(c.Len())
		c.Close()
		c.Close()
	})
}
