package list

import "iter"

// Node is one link in a circular doubly linked ring. Payload records embed a
// Node and become ring members themselves; a sentinel is a Node whose Item
// stays zero.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	// Item is the payload carried by the node. Sentinels leave it zero.
	Item T
}

// Init links the node to itself, making it an empty ring sentinel (or
// resetting a removed node for reuse).
func (n *Node[T]) Init() {
	n.prev = n
	n.next = n
}

// Deinit clears both links. The node reads as uninitialised afterwards and
// must not be traversed before another Init.
func (n *Node[T]) Deinit() {
	n.prev = nil
	n.next = nil
}

// Initialized reports whether the node carries live links.
func (n *Node[T]) Initialized() bool {
	return n.next != nil && n.prev != nil
}

// Empty reports whether the ring anchored at n holds no other node.
func (n *Node[T]) Empty() bool {
	return n.next == n
}

// Singular reports whether the ring anchored at n holds exactly one node
// beyond the sentinel.
func (n *Node[T]) Singular() bool {
	return n.next != n && n.next == n.prev
}

// Next returns the node following n in the ring.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node preceding n in the ring.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Del unlinks n from its ring by connecting its neighbours to each other.
// n's own links are poisoned to nil.
func (n *Node[T]) Del() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}

// InsertAfter splices the standalone node n into the ring directly after at.
func (at *Node[T]) InsertAfter(n *Node[T]) {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
}

// InsertBefore splices the standalone node n into the ring directly before
// at. With the sentinel as at this appends to the ring's tail.
func (at *Node[T]) InsertBefore(n *Node[T]) {
	n.next = at
	n.prev = at.prev
	at.prev.next = n
	at.prev = n
}

// MoveAfter unlinks n from its current position and reinserts it directly
// after at. Both nodes may live in different rings.
func (n *Node[T]) MoveAfter(at *Node[T]) {
	n.Del()
	at.InsertAfter(n)
}

// MoveBefore unlinks n from its current position and reinserts it directly
// before at.
func (n *Node[T]) MoveBefore(at *Node[T]) {
	n.Del()
	at.InsertBefore(n)
}

// SpliceInto moves every node of the ring anchored at head into dst's ring,
// directly after dst, leaving head empty. Runs in constant time.
func (head *Node[T]) SpliceInto(dst *Node[T]) {
	if head.Empty() {
		return
	}
	first := head.next
	last := head.prev
	first.prev = dst
	last.next = dst.next
	dst.next.prev = last
	dst.next = first
	head.Init()
}

// CutAfter splits the ring anchored at head behind n: the nodes from n.next
// through the tail move under the rest sentinel, head keeps the nodes up to
// and including n. rest is (re)initialised in either case.
func (head *Node[T]) CutAfter(n, rest *Node[T]) {
	if n == head || n.next == head {
		rest.Init()
		return
	}
	rest.next = n.next
	rest.next.prev = rest
	rest.prev = head.prev
	rest.prev.next = rest
	n.next = head
	head.prev = n
}

// Reverse flips the direction of the ring by exchanging the links of every
// node, the sentinel included. No node is allocated, freed, or moved.
func (head *Node[T]) Reverse() {
	node := head
	for {
		node.next, node.prev = node.prev, node.next
		node = node.prev
		if node == head {
			return
		}
	}
}

// Middle returns the node at zero-based index (n-1)/2 of a ring with n
// member nodes, located by a fast/slow walk, or nil when the ring is empty.
// With six members that is the third one.
func (head *Node[T]) Middle() *Node[T] {
	if head.Empty() {
		return nil
	}
	slow := head.next
	for fast := head.next; fast.next != head && fast.next.next != head; fast = fast.next.next {
		slow = slow.next
	}
	return slow
}

// Each returns a single-pass forward traversal over the ring's member nodes,
// sentinel excluded. The ring must not be mutated during the walk.
func (head *Node[T]) Each() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := head.next; n != head; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// EachSafe is Each, but each node's successor is captured before the node is
// yielded, so the yielded node may be unlinked or moved to another ring
// mid-walk.
func (head *Node[T]) EachSafe() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n, next := head.next, head.next.next; n != head; n, next = next, next.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Len counts the ring's member nodes by full traversal.
func (head *Node[T]) Len() int {
	count := 0
	for range head.Each() {
		count++
	}
	return count
}
