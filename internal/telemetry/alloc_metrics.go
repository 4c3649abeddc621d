package telemetry

import (
	"sync/atomic"
)

// AllocMetrics fasst Messwerte zu Element-Allokationen zusammen.
type AllocMetrics struct {
	elements   atomic.Uint64
	valueBytes atomic.Uint64
	releases   atomic.Uint64
	failures   atomic.Uint64
	live       atomic.Int64
}

var defaultAllocMetrics AllocMetrics

// DefaultAllocMetrics liefert die globalen Metriken.
func DefaultAllocMetrics() *AllocMetrics {
	return &defaultAllocMetrics
}

// RecordElement meldet einen erfolgreich allozierten Element-Datensatz.
func (m *AllocMetrics) RecordElement() {
	m.elements.Add(1)
	m.live.Add(1)
}

// RecordValue meldet einen allozierten Wert-Puffer samt Größe in Bytes.
func (m *AllocMetrics) RecordValue(bytes int) {
	m.valueBytes.Add(uint64(bytes))
}

// RecordFailure meldet eine fehlgeschlagene Allokation.
func (m *AllocMetrics) RecordFailure() {
	m.failures.Add(1)
}

// RecordRelease meldet ein freigegebenes Element.
func (m *AllocMetrics) RecordRelease() {
	m.releases.Add(1)
	m.live.Add(-1)
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *AllocMetrics) Snapshot() (elements, releases, failures uint64, live int64) {
	return m.elements.Load(), m.releases.Load(), m.failures.Load(), m.live.Load()
}

// ValueBytes liefert die Summe aller allozierten Wert-Puffer in Bytes.
func (m *AllocMetrics) ValueBytes() uint64 {
	return m.valueBytes.Load()
}

// Reset setzt alle Zähler zurück.
func (m *AllocMetrics) Reset() {
	m.elements.Store(0)
	m.valueBytes.Store(0)
	m.releases.Store(0)
	m.failures.Store(0)
	m.live.Store(0)
}
