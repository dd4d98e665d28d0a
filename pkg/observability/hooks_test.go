package observability

import (
	"context"
	"testing"
	"time"
)

type testLayoutHooks struct {
	starts    int
	completes int
}

func (h *testLayoutHooks) OnComputeStart(context.Context, string, int, int) { h.starts++ }
func (h *testLayoutHooks) OnComputeComplete(context.Context, string, time.Duration, error) {
	h.completes++
}

type testSnapshotHooks struct {
	reads  int
	writes int
}

func (h *testSnapshotHooks) OnSnapshotRead(context.Context, string, int, error)  { h.reads++ }
func (h *testSnapshotHooks) OnSnapshotWrite(context.Context, string, int, error) { h.writes++ }

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLayoutHooks{}
	l.OnComputeStart(ctx, "layered", 10, 9)
	l.OnComputeComplete(ctx, "layered", time.Second, nil)

	s := NoopSnapshotHooks{}
	s.OnSnapshotRead(ctx, "diagram.json", 1024, nil)
	s.OnSnapshotWrite(ctx, "diagram.layout.json", 2048, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Snapshot().(NoopSnapshotHooks); !ok {
		t.Error("Snapshot() should return NoopSnapshotHooks by default")
	}

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)
	Layout().OnComputeStart(context.Background(), "manual", 1, 0)
	if custom.starts != 1 {
		t.Errorf("custom hook starts = %d, want 1", custom.starts)
	}

	snaps := &testSnapshotHooks{}
	SetSnapshotHooks(snaps)
	Snapshot().OnSnapshotWrite(context.Background(), "out.json", 10, nil)
	if snaps.writes != 1 {
		t.Errorf("custom hook writes = %d, want 1", snaps.writes)
	}

	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore noop layout hooks")
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	Reset()
	SetLayoutHooks(nil)
	SetSnapshotHooks(nil)

	if Layout() == nil || Snapshot() == nil {
		t.Error("nil registration should keep previous hooks")
	}
}
