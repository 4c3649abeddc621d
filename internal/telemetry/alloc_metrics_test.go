package telemetry

import "testing"

func TestDefaultAllocMetricsSingleton(t *testing.T) {
	if DefaultAllocMetrics() != DefaultAllocMetrics() {
		t.Fatalf("expected default metrics to return singleton instance")
	}
}

func TestAllocMetricsRecordAndSnapshot(t *testing.T) {
	metrics := DefaultAllocMetrics()
	metrics.Reset()

	metrics.RecordElement()
	metrics.RecordValue(128)
	metrics.RecordElement()
	metrics.RecordValue(64)
	metrics.RecordFailure()
	metrics.RecordRelease()

	elements, releases, failures, live := metrics.Snapshot()
	if elements != 2 {
		t.Fatalf("expected 2 element allocations, got %d", elements)
	}
	if releases != 1 {
		t.Fatalf("expected 1 release, got %d", releases)
	}
	if failures != 1 {
		t.Fatalf("expected 1 failure, got %d", failures)
	}
	if live != 1 {
		t.Fatalf("expected 1 live element, got %d", live)
	}
	if got := metrics.ValueBytes(); got != 192 {
		t.Fatalf("expected 192 value bytes, got %d", got)
	}

	metrics.Reset()
	elements, releases, failures, live = metrics.Snapshot()
	if elements != 0 || releases != 0 || failures != 0 || live != 0 {
		t.Fatalf("expected metrics to reset to zero, got elements=%d releases=%d failures=%d live=%d", elements, releases, failures, live)
	}
	if got := metrics.ValueBytes(); got != 0 {
		t.Fatalf("expected value bytes to reset to zero, got %d", got)
	}
}
