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

// Insert splices the range [begin, end] in right after anchor, giving
// anchor, begin, ..., end, <anchor's former successor>.
//
// The range must not contain anchor or its successor. The links leading
// into begin and out of end are overwritten, so the range may come from
// another chain only if it was removed from there first.
//
// O(1) time and space.
func Insert[T any, E Node[T, E]](anchor, begin, end E) {
	if contract.Enabled {
		contract.Require(anchor != nil && begin != nil && end != nil, "Insert with nil node")
		contract.Require(Measure(begin, end, Forward) >= 0, "Insert: end does not follow begin")
	}
	next := anchor.Next()
	link(end, next)
	link(anchor, begin)
}

// Remove unlinks every node after begin up to and including end, joining
// begin directly to end's successor. begin itself stays in the chain.
//
// The removed nodes keep their links to each other, so (begin.Next(), end)
// as seen before the call remains a valid range that can be passed to
// Insert.
//
// O(1) time and space regardless of the length of the range.
func Remove[T any, E Node[T, E]](begin, end E) {
	if contract.Enabled {
		contract.Require(begin != nil && end != nil, "Remove with nil node")
		contract.Require(Measure(begin, end, Forward) >= 0, "Remove: end does not follow begin")
	}
	link(begin, end.Next())
}
