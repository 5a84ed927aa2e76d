package parser

import (
	"fmt"
	"testing"
	"time"
)

func TestLRUCacheEvictsOldest(t *testing.T) {
	cache := NewLRUCache(2, time.Hour)

	cache.Set("a", "1")
	cache.Set("b", "2")

	// Touch "a" so "b" becomes the eviction candidate.
	if _, hit := cache.Get("a"); !hit {
		t.Fatal("expected hit for a")
	}

	cache.Set("c", "3")

	if _, hit := cache.Get("b"); hit {
		t.Error("b should have been evicted")
	}
	if v, hit := cache.Get("a"); !hit || v != "1" {
		t.Errorf("a = (%q, %v), want (1, true)", v, hit)
	}
	if v, hit := cache.Get("c"); !hit || v != "3" {
		t.Errorf("c = (%q, %v), want (3, true)", v, hit)
	}
}

func TestLRUCacheOverwrite(t *testing.T) {
	cache := NewLRUCache(2, time.Hour)
	cache.Set("a", "1")
	cache.Set("a", "2")

	if v, _ := cache.Get("a"); v != "2" {
		t.Errorf("a = %q, want 2", v)
	}
	if cache.Size() != 1 {
		t.Errorf("Size() = %d, want 1", cache.Size())
	}
}

func TestLRUCacheClear(t *testing.T) {
	cache := NewLRUCache(4, time.Hour)
	for i := 0; i < 4; i++ {
		cache.Set(fmt.Sprintf("k%d", i), "v")
	}
	cache.Clear()
	if cache.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", cache.Size())
	}
}

func TestComputeCacheKeyIsStable(t *testing.T) {
	if computeCacheKey("contenuto") != computeCacheKey("contenuto") {
		t.Error("same content produced different keys")
	}
	if computeCacheKey("a") == computeCacheKey("b") {
		t.Error("different content produced the same key")
	}
}
