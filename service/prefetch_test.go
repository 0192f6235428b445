package service

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestSourcePrefetcherPrefetchThenLoadHitsCache(t *testing.T) {
	var reads int32
	load := func(path string) ([]byte, error) {
		atomic.AddInt32(&reads, 1)
		return []byte("source:" + path), nil
	}

	p := NewSourcePrefetcher(load, 4)
	p.Prefetch([]string{"a.ts", "b.ts", "c.ts"})

	for _, path := range []string{"a.ts", "b.ts", "c.ts"} {
		src, err := p.Load(path)
		if err != nil {
			t.Fatalf("Load(%q): %v", path, err)
		}
		if string(src) != "source:"+path {
			t.Errorf("Load(%q) = %q", path, src)
		}
	}
	if got := atomic.LoadInt32(&reads); got != 3 {
		t.Errorf("expected exactly 3 reads (no re-read on Load after Prefetch), got %d", got)
	}
}

func TestSourcePrefetcherLoadWithoutPrefetch(t *testing.T) {
	load := func(path string) ([]byte, error) {
		return []byte("direct:" + path), nil
	}
	p := NewSourcePrefetcher(load, 2)

	src, err := p.Load("only.ts")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(src) != "direct:only.ts" {
		t.Errorf("Load = %q", src)
	}
}

func TestSourcePrefetcherPropagatesLoadError(t *testing.T) {
	wantErr := errors.New("boom")
	load := func(path string) ([]byte, error) {
		return nil, wantErr
	}
	p := NewSourcePrefetcher(load, 2)
	p.Prefetch([]string{"broken.ts"})

	if _, err := p.Load("broken.ts"); !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}

func TestSourcePrefetcherLimitBelowOneTreatedAsOne(t *testing.T) {
	p := NewSourcePrefetcher(func(string) ([]byte, error) { return nil, nil }, 0)
	if p.limit != 1 {
		t.Errorf("expected limit clamped to 1, got %d", p.limit)
	}
}
