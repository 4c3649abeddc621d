// Package list implements a circular doubly linked ring anchored by a
// sentinel node. The link fields live inside the node itself, so payload
// records thread themselves into a ring without wrapper allocations.
//
// A ring is identified by its sentinel: a node whose links reference itself
// when the ring is empty and which carries no payload. Every operation is a
// pure pointer relink; the package never allocates and never touches the
// payload. For every node n in a ring, n.next.prev == n and n.prev.next == n
// holds before and after each call.
//
// Removing a node poisons its links. A removed node must be reinitialised
// (or spliced back via an insert) before it is traversed again.
package list
