package ringqueue

import (
	"strings"

	"github.com/timzifer/ringqueue/internal/telemetry"
)

// Allocator provisions element records and value buffers for a queue. It is
// the seam through which allocation accounting and allocation-failure
// injection happen; the default allocator counts through the telemetry
// package and never fails.
type Allocator interface {
	// AllocElement returns a fresh, unlinked element record, or nil when the
	// allocation fails.
	AllocElement() *Element
	// AllocValue returns an owned copy of s bounded to MaxValueLen bytes.
	// The second return value is false when the buffer allocation fails.
	AllocValue(s string) (string, bool)
	// Release takes an element record and its value buffer back. The queue
	// verifies the element is unlinked and not yet released before calling.
	Release(e *Element)
}

var defaultAllocator Allocator = &heapAllocator{metrics: telemetry.DefaultAllocMetrics()}

type heapAllocator struct {
	metrics *telemetry.AllocMetrics
}

func (a *heapAllocator) AllocElement() *Element {
	a.metrics.RecordElement()
	return &Element{}
}

func (a *heapAllocator) AllocValue(s string) (string, bool) {
	if len(s) > MaxValueLen {
		s = s[:MaxValueLen]
	}
	a.metrics.RecordValue(len(s))
	// Clone detaches the stored value from whatever backing array the
	// caller sliced it from.
	return strings.Clone(s), true
}

func (a *heapAllocator) Release(e *Element) {
	e.value = ""
	a.metrics.RecordRelease()
}
