package layoutsvc

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ortfo/gui/pkg/cache"
	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/observability"
)

type countingService struct {
	calls int
	err   error
}

func (s *countingService) Layout(_ context.Context, d content.Description) (content.Translated[content.Positioned], error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := content.Translated[content.Positioned]{}
	for lang, ps := range d.Paragraphs {
		for i, p := range ps {
			out[lang] = append(out[lang], content.Positioned{
				Unit:        p,
				LayoutIndex: i,
				Positions:   []content.Position{{Row: i, Column: 0}},
			})
		}
	}
	return out, nil
}

type recordingCacheHooks struct {
	mu                sync.Mutex
	hits, misses, set int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits++
}

func (h *recordingCacheHooks) OnCacheMiss(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses++
}

func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.set++
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, fmt.Errorf("disk on fire")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return fmt.Errorf("disk on fire")
}

func (failingCache) Delete(context.Context, string) error { return nil }
func (failingCache) Close() error                          { return nil }

func sample(text string) content.Description {
	return content.Description{
		Metadata:   map[string]any{"layout": []any{"p1"}},
		Paragraphs: content.Translated[content.Paragraph]{"en": {{Content: text}}},
	}
}

func newFileCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCachedHitsAfterFirstCall(t *testing.T) {
	hooks := &recordingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	svc := &countingService{}
	c := NewCached(svc, newFileCache(t), nil, "local", time.Hour, log.New(io.Discard))
	ctx := context.Background()

	first, err := c.Layout(ctx, sample("hello"))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	second, err := c.Layout(ctx, sample("hello"))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if svc.calls != 1 {
		t.Errorf("service called %d times, want 1", svc.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result = %+v, want %+v", second, first)
	}
	if hooks.hits != 1 || hooks.misses != 1 || hooks.set != 1 {
		t.Errorf("hooks = %d hits, %d misses, %d sets; want 1 each", hooks.hits, hooks.misses, hooks.set)
	}

	if _, err := c.Layout(ctx, sample("changed")); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if svc.calls != 2 {
		t.Errorf("a changed description should miss the cache")
	}
}

func TestCachedSeparatesServices(t *testing.T) {
	store := newFileCache(t)
	svc := &countingService{}
	ctx := context.Background()

	_, _ = NewCached(svc, store, nil, "local", 0, log.New(io.Discard)).Layout(ctx, sample("x"))
	_, _ = NewCached(svc, store, nil, "http://layout:8080", 0, log.New(io.Discard)).Layout(ctx, sample("x"))
	if svc.calls != 2 {
		t.Errorf("service called %d times, want 2", svc.calls)
	}
}

func TestCachedDoesNotStoreFailures(t *testing.T) {
	svc := &countingService{err: fmt.Errorf("boom")}
	c := NewCached(svc, newFileCache(t), nil, "local", 0, log.New(io.Discard))
	ctx := context.Background()

	for range 2 {
		if _, err := c.Layout(ctx, sample("x")); err == nil {
			t.Fatal("Layout should return the service error")
		}
	}
	if svc.calls != 2 {
		t.Errorf("service called %d times, want 2", svc.calls)
	}
}

func TestCachedSurvivesCacheFailures(t *testing.T) {
	svc := &countingService{}
	c := NewCached(svc, failingCache{}, nil, "local", 0, log.New(io.Discard))

	out, err := c.Layout(context.Background(), sample("x"))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(out["en"]) != 1 {
		t.Errorf("Layout = %+v", out)
	}
}

func TestErrorResponse(t *testing.T) {
	r := NewErrorResponse(fmt.Errorf("plain"))
	if r.Code != "INTERNAL_ERROR" || r.Message != "plain" {
		t.Errorf("NewErrorResponse = %+v", r)
	}
	if err := (ErrorResponse{Message: "down"}).Err(); err.Error() != "LAYOUT_SERVICE: down" {
		t.Errorf("Err() = %v", err)
	}
}
