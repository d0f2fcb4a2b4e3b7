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

// Reverse reverses [begin, end] in place in a single pass. prev must be the
// node linking to begin, or nil if begin is the head of its chain; it is
// repointed at end. begin ends up linked to end's former successor, so the
// rest of the chain stays attached.
//
// O(n) time, O(1) space. The range is not revalidated while it is walked.
func Reverse[T any, E Node[T, E]](prev, begin, end E) {
	if contract.Enabled {
		contract.Require(begin != nil && end != nil, "Reverse with nil node")
		contract.Require(prev == nil || prev.Next() == begin, "Reverse: prev does not precede begin")
		contract.Require(Measure(begin, end) >= 0, "Reverse: end does not follow begin")
	}
	if begin == end {
		return
	}
	if prev != nil {
		prev.SetNext(end)
	}
	// Point each node at the one visited before it; the first visited
	// node inherits end's successor.
	back := end.Next()
	for cur := begin; ; {
		next := cur.Next()
		cur.SetNext(back)
		if cur == end {
			return
		}
		back, cur = cur, next
	}
}
