package storage

import (
	"testing"

	"github.com/penev-ff/dynarr/internal/workload"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	w := workload.Workload{Name: "test", Seed: 42, Capacity: 8}
	result := &workload.Result{
		Samples: []workload.Sample{
			{Op: workload.OpPush, Len: 1, Cap: 8, Grows: 0},
			{Op: workload.OpPush, Len: 2, Cap: 8, Grows: 0},
		},
		Metrics: map[string]float64{"grows": 0, "final_len": 2},
		Applied: 2,
	}

	runID, err := st.Save(w, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Workload != "test" {
		t.Errorf("expected workload 'test', got '%s'", meta.Workload)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Metrics["final_len"] != 2 {
		t.Errorf("expected final_len 2, got %f", meta.Metrics["final_len"])
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[1].Len != 2 || samples[1].Cap != 8 || samples[1].Op != workload.OpPush {
		t.Errorf("unexpected sample: %+v", samples[1])
	}
}

func TestStoreListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/missing")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	w := workload.Workload{Name: "listme", Seed: 1}
	result := &workload.Result{Metrics: map[string]float64{}, Applied: 0}

	if _, err := st.Save(w, result); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Workload != "listme" {
		t.Errorf("unexpected run: %+v", runs[0])
	}
}
