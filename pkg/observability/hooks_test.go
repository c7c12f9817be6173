package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Layout hooks
	l := NoopLayoutHooks{}
	l.OnLayoutStart(ctx, 7, 3)
	l.OnLayoutComplete(ctx, 8, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "layout")
	c.OnCacheSet(ctx, "layout", 1024)

	// Server hooks
	s := NoopServerHooks{}
	s.OnRequest(ctx, "POST", "/v1/layouts")
	s.OnResponse(ctx, "POST", "/v1/layouts", 200, time.Second)
}

type testLayoutHooks struct {
	NoopLayoutHooks
	starts int
}

func (h *testLayoutHooks) OnLayoutStart(ctx context.Context, rowNodes, colNodes int) {
	h.starts++
}

type testCacheHooks struct{ NoopCacheHooks }
type testServerHooks struct{ NoopServerHooks }

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	// Set custom hooks
	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}
	Layout().OnLayoutStart(context.Background(), 1, 1)
	if customLayout.starts != 1 {
		t.Error("custom hook was not invoked")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customServer := &testServerHooks{}
	SetServerHooks(customServer)
	if Server() != customServer {
		t.Error("SetServerHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)
	SetLayoutHooks(nil)
	if Layout() != custom {
		t.Error("SetLayoutHooks(nil) should be ignored")
	}
}
