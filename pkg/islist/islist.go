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

// Package islist provides intrusive singly-linked list primitives.
//
// It mirrors package ilist for nodes that carry only a forward link. Since a
// node cannot discover its predecessor, operations that need to repoint the
// link leading into a range (Swap, Reverse) take that predecessor as an
// argument; nil means the range starts at the head of its chain.
package islist

// NotFound is returned by Measure when end is not reachable from begin.
const NotFound = -1

// Linker is the interface that objects must implement to be linked by this
// package. Entry implements it.
type Linker[E any] interface {
	Next() E
	SetNext(E)
}

// Node constrains E to a pointer to T that links to other E's.
type Node[T any, E any] interface {
	*T
	Linker[E]
}

// Entry is a default implementation of Linker. The zero value is a detached
// node.
type Entry[E any] struct {
	next E
}

// Init detaches e.
func (e *Entry[E]) Init() {
	var zero E
	e.next = zero
}

// Next returns the entry that follows e.
func (e *Entry[E]) Next() E {
	return e.next
}

// SetNext assigns elem as the entry that follows e.
func (e *Entry[E]) SetNext(elem E) {
	e.next = elem
}

// Elem is a ready-made node carrying a value.
type Elem[V any] struct {
	Entry[*Elem[V]]
	Value V
}

// NewElem returns a detached node holding v.
func NewElem[V any](v V) *Elem[V] {
	return &Elem[V]{Value: v}
}
