// Package ringqueue implements a string queue over a circular doubly linked
// ring with a sentinel node. Every structural operation — insertion and
// removal at both ends, duplicate elimination, middle deletion, pairwise
// swapping, reversal, and merge sort — works by relinking nodes in place
// rather than copying payloads. The queue is not safe for concurrent use.
package ringqueue

import (
	"github.com/timzifer/ringqueue/internal/list"
)

// MaxValueLen bounds the stored string length in bytes. Longer inputs are
// silently truncated on insertion.
const MaxValueLen = 1024

// Element is one queue entry: an owned string value threaded into the ring
// by an embedded link node. Elements removed from a queue stay alive until
// the caller releases them.
type Element struct {
	value    string
	node     list.Node[*Element]
	released bool
}

// Value returns the stored string.
func (e *Element) Value() string {
	return e.value
}

// Queue is a string queue anchored by a sentinel ring node. The zero value
// is not usable; call New.
type Queue struct {
	head  list.Node[*Element]
	alloc Allocator
}

// New creates an empty queue.
func New(options ...Option) *Queue {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	q := &Queue{alloc: opts.alloc}
	q.head.Init()

	for _, v := range opts.initial {
		q.InsertTail(v)
	}
	return q
}

func (q *Queue) initialized() bool {
	return q != nil && q.head.Initialized()
}

// Free unlinks and releases every element, then tears the sentinel down so
// that further insertions fail. No-op on a nil queue.
func (q *Queue) Free() {
	if !q.initialized() {
		return
	}
	for node := range q.head.EachSafe() {
		node.Del()
		q.Release(node.Item)
	}
	q.head.Deinit()
}

// Release hands a removed element back to the allocator. The element must
// already be unlinked from any ring: releasing a linked element would corrupt
// its ring and releasing twice would double-free, so both panic.
func (q *Queue) Release(e *Element) {
	if q == nil || q.alloc == nil || e == nil {
		return
	}
	if e.node.Initialized() {
		panic("ringqueue: release of an element still linked into a ring")
	}
	if e.released {
		panic("ringqueue: element released twice")
	}
	e.released = true
	q.alloc.Release(e)
}

// InsertHead creates an element owning a copy of s and links it at the front
// of the queue. It reports false on a nil or torn-down queue and on
// allocation failure; a failed insertion leaves the queue unchanged.
func (q *Queue) InsertHead(s string) bool {
	e := q.newElement(s)
	if e == nil {
		return false
	}
	q.head.InsertAfter(&e.node)
	return true
}

// InsertTail is InsertHead at the back of the queue.
func (q *Queue) InsertTail(s string) bool {
	e := q.newElement(s)
	if e == nil {
		return false
	}
	q.head.InsertBefore(&e.node)
	return true
}

func (q *Queue) newElement(s string) *Element {
	if !q.initialized() {
		return nil
	}
	e := q.alloc.AllocElement()
	if e == nil {
		return nil
	}
	value, ok := q.alloc.AllocValue(s)
	if !ok {
		// Roll the element allocation back; the queue stays untouched.
		q.Release(e)
		return nil
	}
	e.value = value
	e.node.Item = e
	return e
}

// RemoveHead unlinks the front element and transfers its ownership to the
// caller, who must eventually pass it to Release. It returns nil on a nil or
// empty queue. If buf is non-nil, up to len(buf)-1 bytes of the value are
// copied into it followed by a zero byte; the copy never exceeds the buffer.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if !q.initialized() || q.head.Empty() {
		return nil
	}
	return q.removeNode(q.head.Next(), buf)
}

// RemoveTail is RemoveHead at the back of the queue.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if !q.initialized() || q.head.Empty() {
		return nil
	}
	return q.removeNode(q.head.Prev(), buf)
}

func (q *Queue) removeNode(node *list.Node[*Element], buf []byte) *Element {
	node.Del()
	e := node.Item
	if buf != nil {
		copyValue(buf, e.value)
	}
	return e
}

// copyValue fills buf with at most len(buf)-1 bytes of s and terminates the
// copy with a zero byte inside the buffer.
func copyValue(buf []byte, s string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
}

// Size counts the elements by full ring traversal. It returns 0 on a nil
// queue. There is no cached counter to fall out of sync.
func (q *Queue) Size() int {
	if !q.initialized() {
		return 0
	}
	return q.head.Len()
}

// Snapshot returns a copy of the stored values in ring order, or nil when
// the queue is nil or empty. Intended for inspection and testing.
func (q *Queue) Snapshot() []string {
	if !q.initialized() || q.head.Empty() {
		return nil
	}
	values := make([]string, 0, q.head.Len())
	for node := range q.head.Each() {
		values = append(values, node.Item.value)
	}
	return values
}

// DeleteMid unlinks and releases the middle element: for n elements the one
// at zero-based index (n-1)/2, located by a fast/slow walk. It reports false
// on a nil or empty queue.
func (q *Queue) DeleteMid() bool {
	if !q.initialized() || q.head.Empty() {
		return false
	}
	mid := q.head.Middle()
	mid.Del()
	q.Release(mid.Item)
	return true
}

// DeleteDup removes every run of two or more byte-identical values in its
// entirety, first occurrence included, leaving only values that appeared
// exactly once in their run. The queue must already be sorted ascending.
// It reports false on a nil or torn-down queue and true otherwise, an empty
// queue included.
//
// Duplicates are collected into a scratch ring and released together after
// the walk, so the traversal is never disturbed by concurrent unlinking.
func (q *Queue) DeleteDup() bool {
	if !q.initialized() {
		return false
	}

	var dups list.Node[*Element]
	dups.Init()

	node := q.head.Next()
	for node != &q.head {
		run := node.Next()
		dup := false
		for run != &q.head && run.Item.value == node.Item.value {
			next := run.Next()
			run.MoveAfter(&dups)
			dup = true
			run = next
		}
		if dup {
			node.MoveAfter(&dups)
		}
		node = run
	}

	for dup := range dups.EachSafe() {
		dup.Del()
		q.Release(dup.Item)
	}
	return true
}

// Swap exchanges every two adjacent elements by relinking; with an odd count
// the trailing element stays in place. No-op on a nil or empty queue.
func (q *Queue) Swap() {
	if !q.initialized() {
		return
	}
	node := q.head.Next()
	for node != &q.head && node.Next() != &q.head {
		node.MoveAfter(node.Next())
		node = node.Next()
	}
}

// Reverse reverses the element order by pure link permutation. No element is
// allocated, released, or copied. No-op on a nil, empty, or single-element
// queue.
func (q *Queue) Reverse() {
	if !q.initialized() || q.head.Empty() || q.head.Singular() {
		return
	}
	q.head.Reverse()
}

// Sort orders the elements ascending by byte-wise comparison using an
// in-place merge sort over the ring. The sort is stable: equal elements keep
// their relative order. No-op on a nil, empty, or single-element queue.
func (q *Queue) Sort() {
	if !q.initialized() {
		return
	}
	sortRing(&q.head)
}

func sortRing(head *list.Node[*Element]) {
	if head.Empty() || head.Singular() {
		return
	}

	// Split behind the middle element into two independent rings.
	var right list.Node[*Element]
	right.Init()
	head.CutAfter(head.Middle(), &right)

	sortRing(head)
	sortRing(&right)

	mergeRings(head, &right)
}

// mergeRings folds the sorted right ring into the sorted left ring. A single
// cursor advances through the left ring past every element <= the right
// element, so ties favour the left side and the merge stays stable. The
// right sentinel is left empty.
func mergeRings(left, right *list.Node[*Element]) {
	if left.Empty() {
		right.SpliceInto(left)
		return
	}

	cursor := left.Next()
	for node := range right.EachSafe() {
		for cursor.Next() != left && cursor.Item.value <= node.Item.value {
			cursor = cursor.Next()
		}
		node.Del()
		if cursor.Item.value > node.Item.value {
			cursor.InsertBefore(node)
		} else {
			cursor.InsertAfter(node)
		}
	}
}
