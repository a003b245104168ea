package cache

import (
	"sync"
	"testing"
	"time"
)

func TestInMemoryCacheGetSet(t *testing.T) {
	c := NewInMemoryCache(3600)

	if err := c.Set("key1", "hinglish result"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get("key1")
	if !ok || val != "hinglish result" {
		t.Errorf("Get = %q, %v", val, ok)
	}

	val, ok = c.Get("nonexistent")
	if ok || val != "" {
		t.Errorf("missing key: Get = %q, %v", val, ok)
	}
}

func TestInMemoryCacheTTL(t *testing.T) {
	c := NewInMemoryCache(1)

	c.Set("key1", "value1")
	if _, ok := c.Get("key1"); !ok {
		t.Error("value should be available immediately after set")
	}

	time.Sleep(1100 * time.Millisecond)

	if val, ok := c.Get("key1"); ok || val != "" {
		t.Errorf("expired entry: Get = %q, %v", val, ok)
	}
	if c.Len() != 0 {
		t.Error("expired entry should be reaped on access")
	}
}

func TestInMemoryCacheNoTTL(t *testing.T) {
	c := NewInMemoryCache(0)
	c.Set("key1", "value1")
	if val, ok := c.Get("key1"); !ok || val != "value1" {
		t.Error("value should never expire with no TTL")
	}
}

func TestInMemoryCacheOverwrite(t *testing.T) {
	c := NewInMemoryCache(3600)
	c.Set("key1", "old")
	c.Set("key1", "new")
	if val, _ := c.Get("key1"); val != "new" {
		t.Errorf("Get = %q, want overwritten value", val)
	}
}

func TestInMemoryCacheLenAndClear(t *testing.T) {
	c := NewInMemoryCache(3600)
	if c.Len() != 0 {
		t.Errorf("empty cache Len = %d", c.Len())
	}

	c.Set("key1", "v1")
	c.Set("key2", "v2")
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
	if _, ok := c.Get("key1"); ok {
		t.Error("cleared cache should not contain keys")
	}
}

func TestInMemoryCacheEntries(t *testing.T) {
	c := NewInMemoryCache(3600)
	c.Set("a", "1")
	c.Set("b", "2")

	entries := c.Entries()
	if len(entries) != 2 || entries["a"] != "1" || entries["b"] != "2" {
		t.Errorf("Entries = %v", entries)
	}
}

func TestInMemoryCacheConcurrent(t *testing.T) {
	c := NewInMemoryCache(3600)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c.Set(string(rune('a'+i%26)), "value")
		}(i)
		go func(i int) {
			defer wg.Done()
			c.Get(string(rune('a' + i%26)))
		}(i)
	}
	wg.Wait()
}
