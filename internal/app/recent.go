package app

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vidyasagar/navhist/internal/browser"
)

const defaultRecentSize = 50

// RecentURLs remembers the most recently seen URLs for visit suggestions.
type RecentURLs struct {
	cache *lru.Cache[string, int64]
}

// NewRecentURLs creates a recent-URL set holding at most size URLs.
// A non-positive size falls back to the default.
func NewRecentURLs(size int) *RecentURLs {
	if size <= 0 {
		size = defaultRecentSize
	}
	cache, err := lru.New[string, int64](size)
	if err != nil {
		cache, _ = lru.New[string, int64](defaultRecentSize)
	}
	return &RecentURLs{cache: cache}
}

// Add records e as the most recently seen URL.
func (r *RecentURLs) Add(e browser.NavigationEntry) {
	if e.IsEmpty() {
		return
	}
	r.cache.Add(e.URL(), e.Timestamp())
}

// AddAll records entries in order, so the last one ends up most recent.
func (r *RecentURLs) AddAll(entries []browser.NavigationEntry) {
	for _, e := range entries {
		r.Add(e)
	}
}

// List returns the remembered URLs, most recent first.
func (r *RecentURLs) List() []string {
	keys := r.cache.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[len(keys)-1-i] = k
	}
	return out
}

// Len returns the number of remembered URLs.
func (r *RecentURLs) Len() int {
	return r.cache.Len()
}
