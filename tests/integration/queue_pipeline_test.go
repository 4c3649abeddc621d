package integration

import (
	"sort"
	"testing"

	"github.com/timzifer/ringqueue"
	"github.com/timzifer/ringqueue/internal/telemetry"
)

// TestSortDedupDrainPipeline runs the full lifecycle against the public API:
// load an unsorted word list, sort it, strip every duplicated run, drain the
// survivors through removal buffers, and verify the allocator balance.
func TestSortDedupDrainPipeline(t *testing.T) {
	metrics := telemetry.DefaultAllocMetrics()
	metrics.Reset()

	words := []string{
		"mango", "fig", "plum", "fig", "apricot", "lime", "plum",
		"cherry", "lime", "date", "plum", "quince", "apricot",
	}

	q := ringqueue.New(ringqueue.WithInitial(words...))
	if got := q.Size(); got != len(words) {
		t.Fatalf("expected size %d after load, got %d", len(words), got)
	}

	q.Sort()
	snapshot := q.Snapshot()
	if len(snapshot) != len(words) {
		t.Fatalf("expected sort to keep all %d elements, got %d", len(words), len(snapshot))
	}
	for i := 1; i < len(snapshot); i++ {
		if snapshot[i-1] > snapshot[i] {
			t.Fatalf("values not sorted at %d: %q > %q", i, snapshot[i-1], snapshot[i])
		}
	}

	if !q.DeleteDup() {
		t.Fatalf("expected DeleteDup to succeed on the sorted queue")
	}

	// Survivors are exactly the words that occurred once, in sorted order.
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	var want []string
	for w, n := range counts {
		if n == 1 {
			want = append(want, w)
		}
	}
	sort.Strings(want)

	buf := make([]byte, 32)
	var got []string
	for {
		e := q.RemoveHead(buf)
		if e == nil {
			break
		}
		value := e.Value()
		if string(buf[:len(value)]) != value || buf[len(value)] != 0 {
			t.Fatalf("expected buffer to hold zero-terminated %q, got %q", value, buf)
		}
		got = append(got, value)
		q.Release(e)
	}

	if len(got) != len(want) {
		t.Fatalf("unexpected survivors: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected survivor at %d: got %v want %v", i, got, want)
		}
	}

	q.Free()

	elements, releases, failures, live := metrics.Snapshot()
	if elements != releases {
		t.Fatalf("allocator imbalance: %d allocations vs %d releases", elements, releases)
	}
	if failures != 0 {
		t.Fatalf("expected no allocation failures, got %d", failures)
	}
	if live != 0 {
		t.Fatalf("expected no live elements after Free, got %d", live)
	}
}

// TestRelinkOperationsComposeLosslessly chains the pure link permutations
// and checks that no element is lost, duplicated, or reordered unexpectedly.
func TestRelinkOperationsComposeLosslessly(t *testing.T) {
	metrics := telemetry.DefaultAllocMetrics()
	metrics.Reset()

	q := ringqueue.New()
	for _, v := range []string{"d", "e", "f"} {
		if !q.InsertTail(v) {
			t.Fatalf("InsertTail(%q) failed", v)
		}
	}
	for _, v := range []string{"c", "b", "a"} {
		if !q.InsertHead(v) {
			t.Fatalf("InsertHead(%q) failed", v)
		}
	}
	// a b c d e f

	q.Reverse()
	q.Reverse()
	q.Swap() // b a d c f e
	q.Swap() // back to a b c d e f

	expected := []string{"a", "b", "c", "d", "e", "f"}
	snapshot := q.Snapshot()
	if len(snapshot) != len(expected) {
		t.Fatalf("unexpected contents: got %v want %v", snapshot, expected)
	}
	for i := range expected {
		if snapshot[i] != expected[i] {
			t.Fatalf("unexpected value at %d: got %v want %v", i, snapshot, expected)
		}
	}

	if !q.DeleteMid() { // removes c (index 2 of 6)
		t.Fatalf("expected DeleteMid to succeed")
	}
	if got := q.Snapshot(); len(got) != 5 || got[2] != "d" {
		t.Fatalf("expected c to be removed, got %v", got)
	}

	q.Free()
	if _, _, _, live := metrics.Snapshot(); live != 0 {
		t.Fatalf("expected no live elements after Free, got %d", live)
	}
}
