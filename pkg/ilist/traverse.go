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

package ilist

import (
	"iter"

	"gvisor.dev/ilink/pkg/contract"
)

// Locate returns the node n hops from begin in direction dir, or (nil, false)
// if the chain ends first.
//
// N.B. n == 0 does not return begin. It returns the last node reachable in
// direction dir: the tail of the chain for Forward, the head for Backward.
// On a single-node chain both are begin itself.
//
// O(n) time, O(1) space.
func Locate[T any, E Node[T, E]](begin E, n uint, dir Direction) (E, bool) {
	contract.Require(begin != nil, "Locate from nil node")
	if n == 0 {
		for e := follow(begin, dir); e != nil; e = follow(e, dir) {
			begin = e
		}
		return begin, true
	}
	for ; n > 0; n-- {
		if begin = follow(begin, dir); begin == nil {
			return nil, false
		}
	}
	return begin, true
}

// Head returns the first node of the chain containing e.
func Head[T any, E Node[T, E]](e E) E {
	h, _ := Locate(e, 0, Backward)
	return h
}

// Measure counts nodes from begin towards end in direction dir.
//
// If end is non-nil the result is the number of hops from begin to end,
// which excludes begin itself, so Measure(e, e, dir) == 0. NotFound is
// returned if the chain terminates before end is reached.
//
// If end is nil the result is the number of nodes from begin through the
// last reachable node, including begin.
//
// O(n) time, O(1) space.
func Measure[T any, E Node[T, E]](begin, end E, dir Direction) int {
	contract.Require(begin != nil, "Measure from nil node")
	n := 0
	if end == nil {
		for e := begin; e != nil; e = follow(e, dir) {
			n++
		}
		return n
	}
	for e := begin; e != end; n++ {
		if e = follow(e, dir); e == nil {
			return NotFound
		}
	}
	return n
}

// All returns an iterator over begin and every node after it.
//
// The successor is read after the loop body runs, so the body may not unlink
// the node it was given.
func All[T any, E Node[T, E]](begin E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := begin; e != nil; e = e.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// AllBackward returns an iterator over begin and every node before it,
// nearest first.
func AllBackward[T any, E Node[T, E]](begin E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := begin; e != nil; e = e.Prev() {
			if !yield(e) {
				return
			}
		}
	}
}

// Span returns an iterator over the range [begin, end]. If end is not
// reachable from begin, iteration stops at the tail of the chain.
func Span[T any, E Node[T, E]](begin, end E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := begin; e != nil; e = e.Next() {
			if !yield(e) || e == end {
				return
			}
		}
	}
}
