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

import "gvisor.dev/ilink/pkg/contract"

// adjacency classifies how two ranges passed to Swap touch each other.
type adjacency int

const (
	apart adjacency = iota
	bAfterA
	aAfterB
)

// swapPlan holds the outer neighbours each range has once the two have
// traded places. A nil before* means the range becomes the chain head.
type swapPlan[E any] struct {
	kind    adjacency
	beforeA E
	afterA  E
	beforeB E
	afterB  E
}

// planSwap is ilist's planSwap with the predecessors supplied by the caller.
func planSwap[T any, E Node[T, E]](aPrev, aBegin, aEnd, bPrev, bBegin, bEnd E) swapPlan[E] {
	switch {
	case aEnd.Next() == bBegin:
		return swapPlan[E]{
			kind:    bAfterA,
			beforeB: aPrev,
			afterB:  aBegin,
			beforeA: bEnd,
			afterA:  bEnd.Next(),
		}
	case bEnd.Next() == aBegin:
		return swapPlan[E]{
			kind:    aAfterB,
			beforeA: bPrev,
			afterA:  bBegin,
			beforeB: aEnd,
			afterB:  aEnd.Next(),
		}
	default:
		return swapPlan[E]{
			kind:    apart,
			beforeB: aPrev,
			afterB:  aEnd.Next(),
			beforeA: bPrev,
			afterA:  bEnd.Next(),
		}
	}
}

// Swap exchanges the positions of [aBegin, aEnd] and [bBegin, bEnd].
//
// aPrev and bPrev must be the nodes currently linking to aBegin and bBegin,
// or nil for a range at the head of its chain. After the call the caller's
// head reference may need updating: whichever range moved into a head
// position now starts the chain.
//
// The ranges must not overlap. Swapping again with the predecessors the
// ranges have after the first call restores the original arrangement.
//
// O(1) time and space.
func Swap[T any, E Node[T, E]](aPrev, aBegin, aEnd, bPrev, bBegin, bEnd E) {
	if contract.Enabled {
		contract.Require(aBegin != nil && aEnd != nil && bBegin != nil && bEnd != nil, "Swap with nil node")
		contract.Require(aPrev == nil || aPrev.Next() == aBegin, "Swap: aPrev does not precede aBegin")
		contract.Require(bPrev == nil || bPrev.Next() == bBegin, "Swap: bPrev does not precede bBegin")
		contract.Require(Measure(aBegin, aEnd) >= 0, "Swap: aEnd does not follow aBegin")
		contract.Require(Measure(bBegin, bEnd) >= 0, "Swap: bEnd does not follow bBegin")
	}
	p := planSwap(aPrev, aBegin, aEnd, bPrev, bBegin, bEnd)
	if p.beforeB != nil {
		p.beforeB.SetNext(bBegin)
	}
	bEnd.SetNext(p.afterB)
	if p.beforeA != nil {
		p.beforeA.SetNext(aBegin)
	}
	aEnd.SetNext(p.afterA)
}
