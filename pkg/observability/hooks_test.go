package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg", 10, 20)
	r.OnRenderComplete(ctx, "svg", time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "render")
	c.OnCacheMiss(ctx, "render")
	c.OnCacheSet(ctx, "render", 1024)
}

type countingCacheHooks struct {
	hits, misses, sets int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	hooks := &countingCacheHooks{}
	SetCacheHooks(hooks)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "render")
	Cache().OnCacheSet(ctx, "render", 10)
	Cache().OnCacheHit(ctx, "render")

	if hooks.hits != 1 || hooks.misses != 1 || hooks.sets != 1 {
		t.Errorf("counts = %+v", *hooks)
	}
}

func TestSetNilKeepsDefaults(t *testing.T) {
	t.Cleanup(Reset)

	SetCacheHooks(nil)
	SetRenderHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Errorf("Render() = %T, want NoopRenderHooks", Render())
	}
}

func TestReset(t *testing.T) {
	SetCacheHooks(&countingCacheHooks{})
	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() after Reset = %T", Cache())
	}
}
