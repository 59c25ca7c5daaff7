package observability

import (
	"testing"
	"time"
)

type recordingExportHooks struct {
	NoopExportHooks
	starts int
	stages []string
}

func (r *recordingExportHooks) OnExportStart(string, int) { r.starts++ }

func (r *recordingExportHooks) OnStage(_ string, stage string, _ time.Duration) {
	r.stages = append(r.stages, stage)
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Fatal("default export hooks must be no-op")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Fatal("default cache hooks must be no-op")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Fatal("default store hooks must be no-op")
	}
}

func TestSetExportHooksRegisters(t *testing.T) {
	defer Reset()

	rec := &recordingExportHooks{}
	SetExportHooks(rec)

	Export().OnExportStart("id", 3)
	Export().OnStage("id", "sort", time.Millisecond)

	if rec.starts != 1 {
		t.Fatalf("starts = %d, want 1", rec.starts)
	}
	if len(rec.stages) != 1 || rec.stages[0] != "sort" {
		t.Fatalf("stages = %v", rec.stages)
	}
}

func TestSetNilKeepsCurrentHooks(t *testing.T) {
	defer Reset()

	rec := &recordingExportHooks{}
	SetExportHooks(rec)
	SetExportHooks(nil)

	if Export() != ExportHooks(rec) {
		t.Fatal("nil registration must not replace the current hooks")
	}
}

func TestResetRestoresNoop(t *testing.T) {
	SetExportHooks(&recordingExportHooks{})
	SetCacheHooks(NoopCacheHooks{})
	SetStoreHooks(NoopStoreHooks{})
	Reset()

	if _, ok := Export().(NoopExportHooks); !ok {
		t.Fatal("Reset must restore no-op export hooks")
	}
}
