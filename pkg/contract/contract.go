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

// Package contract holds the precondition checks used by the link packages.
//
// Checks are compiled in only with the ilinkdebug build tag. In normal
// builds Enabled is false and every call to Require is dead code, so a
// violated precondition is undefined behavior rather than a reported error.
package contract

import "fmt"

// Require panics with the formatted message if cond is false and checks are
// enabled.
//
// Callers should guard expensive conditions with Enabled so that they are
// not evaluated in normal builds:
//
//	if contract.Enabled {
//		contract.Require(Measure(begin, end) >= 0, "...")
//	}
func Require(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("precondition violated: "+format, args...))
	}
}
