package service

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tsgraph/tsgraph/domain"
)

// defaultPrefetchConcurrency bounds how many module source files the
// builder reads at once. Falls back to runtime.NumCPU() the way the
// teacher's parallel executor sized its own worker pool.
var defaultPrefetchConcurrency = runtime.NumCPU()

// SourcePrefetcher wraps a domain.SourceLoader with a bounded-concurrency
// read-ahead cache. Build's fixed-point loop discovers modules and
// allocates their ids strictly in order; only the file reads themselves
// overlap. A path is read at most once: concurrent callers for the same
// path dedupe through singleflight, and the result is then kept in cache
// permanently so the builder's later sequential Source() call is free.
type SourcePrefetcher struct {
	load  domain.SourceLoader
	limit int
	group singleflight.Group

	mu    sync.Mutex
	cache map[string]cachedRead
}

type cachedRead struct {
	data []byte
	err  error
}

// NewSourcePrefetcher wraps load with a cache bounded to at most limit
// concurrent reads in flight. limit < 1 is treated as 1 (no concurrency).
func NewSourcePrefetcher(load domain.SourceLoader, limit int) *SourcePrefetcher {
	if limit < 1 {
		limit = 1
	}
	return &SourcePrefetcher{load: load, limit: limit, cache: make(map[string]cachedRead)}
}

// Prefetch reads every path not already cached, up to p.limit at a time,
// and blocks until the whole batch has completed. Read errors are cached
// like any other result; Load surfaces them once it hits the same entry.
func (p *SourcePrefetcher) Prefetch(paths []string) {
	var g errgroup.Group
	g.SetLimit(p.limit)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			_, _ = p.Load(path)
			return nil
		})
	}
	_ = g.Wait()
}

// Load returns path's source, reusing a cached Prefetch result, or reading
// it directly (deduped against any concurrent in-flight read for the same
// path) if none was issued.
func (p *SourcePrefetcher) Load(path string) ([]byte, error) {
	p.mu.Lock()
	if cached, ok := p.cache[path]; ok {
		p.mu.Unlock()
		return cached.data, cached.err
	}
	p.mu.Unlock()

	v, err, _ := p.group.Do(path, func() (any, error) {
		// A read that finished after the check above has already cached it.
		p.mu.Lock()
		if cached, ok := p.cache[path]; ok {
			p.mu.Unlock()
			return cached.data, cached.err
		}
		p.mu.Unlock()
		data, err := p.load(path)
		p.mu.Lock()
		p.cache[path] = cachedRead{data: data, err: err}
		p.mu.Unlock()
		return data, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// modulePaths extracts each module's path, for handing a newly discovered
// batch to Prefetch.
func modulePaths(mods []*domain.Module) []string {
	paths := make([]string, len(mods))
	for i, mod := range mods {
		paths[i] = mod.Path
	}
	return paths
}
