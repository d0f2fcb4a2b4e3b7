// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ilist provides intrusive doubly-linked list primitives.
//
// There is no list object. A chain is whatever nodes are connected through
// their links and is terminated at both ends by a nil link; callers keep
// their own references to whichever nodes they need. Every operation works
// on ranges: a range [begin, end] is valid iff end is reachable from begin by
// following Next zero or more times. A range with begin == end holds a single
// node.
//
// Types become list nodes by embedding Entry as an anonymous field:
//
//	type request struct {
//		ilist.Entry[*request]
//		id int
//	}
//
// after which *request satisfies Linker[*request] and can be passed to every
// function in this package. Nodes are never allocated or freed here.
//
// Mutating operations are not atomic. Concurrent use of the same chain must
// be serialized by the caller.
package ilist

// NotFound is returned by Measure when end is not reachable from begin.
const NotFound = -1

// Linker is the interface that objects must implement to be linked by this
// package. Entry implements it.
type Linker[E any] interface {
	Next() E
	Prev() E
	SetNext(E)
	SetPrev(E)
}

// Node constrains E to a pointer to T that links to other E's. Functions in
// this package are generic over Node so the host type never needs to be
// converted to and from a separate link type.
type Node[T any, E any] interface {
	*T
	Linker[E]
}

// Direction selects which link traversal follows.
type Direction int

const (
	// Forward follows Next links.
	Forward Direction = iota
	// Backward follows Prev links.
	Backward
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Entry is a default implementation of Linker. The zero value is a detached
// node.
type Entry[E any] struct {
	next E
	prev E
}

// Init detaches e by clearing both links.
func (e *Entry[E]) Init() {
	var zero E
	e.next = zero
	e.prev = zero
}

// Next returns the entry that follows e.
func (e *Entry[E]) Next() E {
	return e.next
}

// Prev returns the entry that precedes e.
func (e *Entry[E]) Prev() E {
	return e.prev
}

// SetNext assigns elem as the entry that follows e.
func (e *Entry[E]) SetNext(elem E) {
	e.next = elem
}

// SetPrev assigns elem as the entry that precedes e.
func (e *Entry[E]) SetPrev(elem E) {
	e.prev = elem
}

// Elem is a ready-made node carrying a value, for callers that have no host
// type of their own.
type Elem[V any] struct {
	Entry[*Elem[V]]
	Value V
}

// NewElem returns a detached node holding v.
func NewElem[V any](v V) *Elem[V] {
	return &Elem[V]{Value: v}
}

// follow returns the neighbour of e in direction dir.
func follow[T any, E Node[T, E]](e E, dir Direction) E {
	if dir == Backward {
		return e.Prev()
	}
	return e.Next()
}

// link makes a and b neighbours. Either may be nil, in which case only the
// other side is updated.
func link[T any, E Node[T, E]](a, b E) {
	if a != nil {
		a.SetNext(b)
	}
	if b != nil {
		b.SetPrev(a)
	}
}
