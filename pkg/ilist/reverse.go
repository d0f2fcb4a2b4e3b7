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

// Reverse reverses the order of the nodes in [begin, end] in place. Nodes
// outside the range stay where they are; afterwards end occupies begin's old
// position and vice versa.
//
// The range is not revalidated while it is walked: if end does not follow
// begin the behavior is undefined.
//
// O(n) time, O(1) space.
func Reverse[T any, E Node[T, E]](begin, end E) {
	if contract.Enabled {
		contract.Require(begin != nil && end != nil, "Reverse with nil node")
		contract.Require(Measure(begin, end, Forward) >= 0, "Reverse: end does not follow begin")
	}
	// Trade the outermost pair and move inward. An odd-length range
	// finishes when both sides land on the middle node. An even-length
	// range has no middle: once the left side's successor is the right
	// side, that pair was the last one.
	for begin != end {
		next, prev := begin.Next(), end.Prev()
		swap(begin, begin, end, end)
		if next == end {
			return
		}
		begin, end = next, prev
	}
}
