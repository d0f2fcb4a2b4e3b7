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

// Insert splices [begin, end] in right after anchor. The range must not
// contain anchor or its successor.
func Insert[T any, E Node[T, E]](anchor, begin, end E) {
	if contract.Enabled {
		contract.Require(anchor != nil && begin != nil && end != nil, "Insert with nil node")
		contract.Require(Measure(begin, end) >= 0, "Insert: end does not follow begin")
	}
	end.SetNext(anchor.Next())
	anchor.SetNext(begin)
}

// Remove unlinks (begin, end], joining begin to end's successor. The removed
// nodes stay linked to each other.
func Remove[T any, E Node[T, E]](begin, end E) {
	if contract.Enabled {
		contract.Require(begin != nil && end != nil, "Remove with nil node")
		contract.Require(Measure(begin, end) >= 0, "Remove: end does not follow begin")
	}
	begin.SetNext(end.Next())
}
