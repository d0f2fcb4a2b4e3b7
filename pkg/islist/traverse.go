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

package islist

import (
	"iter"

	"gvisor.dev/ilink/pkg/contract"
)

// Locate returns the node n hops after begin, or (nil, false) if the chain
// ends first.
//
// N.B. n == 0 returns the last node of the chain, not begin.
func Locate[T any, E Node[T, E]](begin E, n uint) (E, bool) {
	contract.Require(begin != nil, "Locate from nil node")
	if n == 0 {
		for e := begin.Next(); e != nil; e = e.Next() {
			begin = e
		}
		return begin, true
	}
	for ; n > 0; n-- {
		if begin = begin.Next(); begin == nil {
			return nil, false
		}
	}
	return begin, true
}

// Measure returns the number of hops from begin to end, excluding begin, or
// NotFound if end does not follow begin. If end is nil it returns the number
// of nodes from begin to the end of the chain, including begin.
func Measure[T any, E Node[T, E]](begin, end E) int {
	contract.Require(begin != nil, "Measure from nil node")
	n := 0
	if end == nil {
		for e := begin; e != nil; e = e.Next() {
			n++
		}
		return n
	}
	for e := begin; e != end; n++ {
		if e = e.Next(); e == nil {
			return NotFound
		}
	}
	return n
}

// All returns an iterator over begin and every node after it.
func All[T any, E Node[T, E]](begin E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := begin; e != nil; e = e.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// Span returns an iterator over the range [begin, end].
func Span[T any, E Node[T, E]](begin, end E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := begin; e != nil; e = e.Next() {
			if !yield(e) || e == end {
				return
			}
		}
	}
}
