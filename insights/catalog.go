package insights

import (
	"context"
	"log"
	"sync"
)

// Status is the loading lifecycle of the remote half of the catalog.
// Loaded and Failed are terminal; there is no retry. A failed fetch is
// indistinguishable from an empty remote set except in the logs.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// Catalog merges the compiled-in editorial articles with the remotely
// fetched location guides into one ordered list: static first, then
// remote in the order the endpoint returned them. No de-duplication
// happens across the two sources.
type Catalog struct {
	guides *GuideClient

	mu     sync.RWMutex
	status Status
	remote []Article
	closed bool
}

func NewCatalog(guides *GuideClient) *Catalog {
	return &Catalog{guides: guides, status: StatusIdle}
}

// Load performs the one remote fetch. Calling it again after the first
// attempt has started is a no-op, so only a single request is ever
// outstanding. A result arriving after Close is discarded.
func (cat *Catalog) Load(ctx context.Context) {
	cat.mu.Lock()
	if cat.status != StatusIdle || cat.closed {
		cat.mu.Unlock()
		return
	}
	cat.status = StatusLoading
	cat.mu.Unlock()

	articles, err := cat.guides.Fetch(ctx)

	cat.mu.Lock()
	defer cat.mu.Unlock()
	if cat.closed {
		return
	}
	if err != nil {
		log.Printf("❌ Failed to fetch location guides: %v", err)
		cat.status = StatusFailed
		cat.remote = nil
		return
	}
	log.Printf("✅ Loaded %d location guides", len(articles))
	cat.status = StatusLoaded
	cat.remote = articles
}

// Close marks the catalog torn down; a late fetch result is dropped.
func (cat *Catalog) Close() {
	cat.mu.Lock()
	defer cat.mu.Unlock()
	cat.closed = true
}

// Status returns the current lifecycle state.
func (cat *Catalog) Status() Status {
	cat.mu.RLock()
	defer cat.mu.RUnlock()
	return cat.status
}

// Loading reports whether the first attempt has not yet completed.
func (cat *Catalog) Loading() bool {
	s := cat.Status()
	return s == StatusIdle || s == StatusLoading
}

// Articles returns the merged list, static first.
func (cat *Catalog) Articles() []Article {
	cat.mu.RLock()
	defer cat.mu.RUnlock()
	out := make([]Article, 0, len(staticArticles)+len(cat.remote))
	out = append(out, staticArticles...)
	out = append(out, cat.remote...)
	return out
}

// Categories lists the distinct category labels across the full merged
// set, with the "All" sentinel first. It is derived from the whole
// catalog, never from a filtered view, so an active search term cannot
// make a category disappear from the filter controls.
func (cat *Catalog) Categories() []string {
	categories := []string{CategoryAll}
	seen := map[string]bool{}
	for _, a := range cat.Articles() {
		if !seen[a.Category] {
			seen[a.Category] = true
			categories = append(categories, a.Category)
		}
	}
	return categories
}
