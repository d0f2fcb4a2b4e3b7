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

import "gvisor.dev/ilink/pkg/contract"

// adjacency classifies how two ranges passed to Swap touch each other.
type adjacency int

const (
	// apart ranges have at least one node between them, or live on
	// different chains.
	apart adjacency = iota
	// bAfterA means B's first node immediately follows A's last node.
	bAfterA
	// aAfterB means A's first node immediately follows B's last node.
	aAfterB
)

// String implements fmt.Stringer.
func (a adjacency) String() string {
	switch a {
	case apart:
		return "apart"
	case bAfterA:
		return "bAfterA"
	case aAfterB:
		return "aAfterB"
	default:
		return "invalid"
	}
}

// swapPlan holds the outer neighbours each range has once the two have
// traded places. Any of them may be nil.
type swapPlan[E any] struct {
	kind    adjacency
	beforeA E
	afterA  E
	beforeB E
	afterB  E
}

// planSwap decides where A = [aBegin, aEnd] and B = [bBegin, bEnd] end up.
//
// With pa, na, pb and nb the current outer neighbours of A and B:
//
//	apart:   pa, B, na ... pb, A, nb
//	bAfterA: pa, B, A, nb
//	aAfterB: pb, A, B, na
//
// When the ranges are adjacent the facing endpoints are linked to each
// other in swapped order. Redirecting them to their outer neighbours would
// point a node at itself.
func planSwap[T any, E Node[T, E]](aBegin, aEnd, bBegin, bEnd E) swapPlan[E] {
	switch {
	case aEnd.Next() == bBegin:
		return swapPlan[E]{
			kind:    bAfterA,
			beforeB: aBegin.Prev(),
			afterB:  aBegin,
			beforeA: bEnd,
			afterA:  bEnd.Next(),
		}
	case bEnd.Next() == aBegin:
		return swapPlan[E]{
			kind:    aAfterB,
			beforeA: bBegin.Prev(),
			afterA:  bBegin,
			beforeB: aEnd,
			afterB:  aEnd.Next(),
		}
	default:
		return swapPlan[E]{
			kind:    apart,
			beforeB: aBegin.Prev(),
			afterB:  aEnd.Next(),
			beforeA: bBegin.Prev(),
			afterA:  bEnd.Next(),
		}
	}
}

// Swap exchanges the positions of the ranges [aBegin, aEnd] and
// [bBegin, bEnd], which may be on the same chain or different chains.
// Only the links at the four range boundaries are touched; nodes inside
// each range keep their links.
//
// The ranges must not overlap. Overlapping ranges leave the chain corrupted
// and are not detected.
//
// Swap is its own inverse: calling it again with the same four nodes
// restores the original arrangement.
//
// O(1) time and space.
func Swap[T any, E Node[T, E]](aBegin, aEnd, bBegin, bEnd E) {
	if contract.Enabled {
		contract.Require(aBegin != nil && aEnd != nil && bBegin != nil && bEnd != nil, "Swap with nil node")
		contract.Require(Measure(aBegin, aEnd, Forward) >= 0, "Swap: aEnd does not follow aBegin")
		contract.Require(Measure(bBegin, bEnd, Forward) >= 0, "Swap: bEnd does not follow bBegin")
	}
	swap(aBegin, aEnd, bBegin, bEnd)
}

// swap is Swap without precondition checks.
func swap[T any, E Node[T, E]](aBegin, aEnd, bBegin, bEnd E) {
	p := planSwap(aBegin, aEnd, bBegin, bEnd)
	link(p.beforeB, bBegin)
	link(bEnd, p.afterB)
	link(p.beforeA, aBegin)
	link(aEnd, p.afterA)
}
