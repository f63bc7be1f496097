package board

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/twiced-technology-gmbh/tasktxt/internal/clierr"
	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

var sampleLines = []string{
	"[ ] - first open",
	"[X] - shipped",
	"junk line",
	"[~] - nearly",
	"[ ] - second open",
	"[?] - unsure one",
	"[X] - also shipped - with dash",
	"[Q] - bad marker",
	"[ ] - third open",
}

func TestFromLinesPartitionCompleteness(t *testing.T) {
	b := FromLines(slices.Values(sampleLines))

	if b.Total() != 7 {
		t.Fatalf("Total = %d, want 7", b.Total())
	}
	sum := 0
	for _, s := range task.Statuses() {
		part := b.Tasks(s)
		sum += len(part)
		for _, tk := range part {
			if tk.Status != s {
				t.Errorf("task %q in %v partition has status %v", tk.Description, s, tk.Status)
			}
		}
	}
	if sum != b.Total() {
		t.Errorf("partition sizes sum to %d, want %d", sum, b.Total())
	}
}

func TestPartitionOrderPreserved(t *testing.T) {
	b := FromLines(slices.Values(sampleLines))

	got := b.Tasks(task.NotDone)
	want := []string{"first open", "second open", "third open"}
	if len(got) != len(want) {
		t.Fatalf("NotDone = %+v", got)
	}
	for i := range want {
		if got[i].Description != want[i] {
			t.Errorf("NotDone[%d] = %q, want %q", i, got[i].Description, want[i])
		}
	}

	done := b.Tasks(task.Done)
	if len(done) != 2 || done[0].Description != "shipped" || done[1].Description != "also shipped - with dash" {
		t.Errorf("Done = %+v", done)
	}
}

func TestAllKeepsFileOrder(t *testing.T) {
	b := FromLines(slices.Values(sampleLines))
	all := b.All()
	descs := make([]string, len(all))
	for i, tk := range all {
		descs[i] = tk.Description
	}
	want := []string{"first open", "shipped", "nearly", "second open", "unsure one", "also shipped - with dash", "third open"}
	if !slices.Equal(descs, want) {
		t.Errorf("All = %v, want %v", descs, want)
	}
}

func TestBoardIsReadOnly(t *testing.T) {
	b := FromLines(slices.Values(sampleLines))
	part := b.Tasks(task.NotDone)
	part[0].Description = "mutated"
	all := b.All()
	all[0].Description = "mutated"

	if b.Tasks(task.NotDone)[0].Description != "first open" {
		t.Error("mutating Tasks result changed the board")
	}
	if b.All()[0].Description != "first open" {
		t.Error("mutating All result changed the board")
	}
}

func TestEmptyBoard(t *testing.T) {
	b := New(nil)
	if b.Total() != 0 {
		t.Errorf("Total = %d", b.Total())
	}
	for _, s := range task.Statuses() {
		if b.Len(s) != 0 || len(b.Tasks(s)) != 0 {
			t.Errorf("status %v not empty", s)
		}
	}
}

func TestSummary(t *testing.T) {
	b := FromLines(slices.Values(sampleLines))
	order := []task.Status{task.NotDone, task.AlmostDone, task.Done, task.Unsure}
	ov := b.Summary(order)

	if ov.Total != 7 {
		t.Errorf("Total = %d", ov.Total)
	}
	wantCounts := []int{3, 1, 2, 1}
	for i, sc := range ov.Statuses {
		if sc.Status != order[i] {
			t.Errorf("Statuses[%d].Status = %v, want %v", i, sc.Status, order[i])
		}
		if sc.Count != wantCounts[i] {
			t.Errorf("Statuses[%d].Count = %d, want %d", i, sc.Count, wantCounts[i])
		}
		if sc.Marker != order[i].Marker() {
			t.Errorf("Statuses[%d].Marker = %q", i, sc.Marker)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.txt")
	if err := os.WriteFile(path, []byte("[ ] - a\nnope\n[X] - b\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	b, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Total() != 2 {
		t.Errorf("Total = %d", b.Total())
	}
	if len(warnings) != 1 || warnings[0].Line != 2 {
		t.Errorf("warnings = %+v", warnings)
	}

	_, _, err = Load(filepath.Join(dir, "missing.txt"))
	var cliErr *clierr.Error
	if !errors.As(err, &cliErr) || cliErr.Code != clierr.FileNotFound {
		t.Errorf("Load(missing) err = %v", err)
	}
}
