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

package contract

import (
	"strings"
	"testing"
)

func TestRequireHolds(t *testing.T) {
	// Must never panic, with or without the tag.
	Require(true, "unused %d", 1)
}

func TestRequireViolated(t *testing.T) {
	if !Enabled {
		Require(false, "ignored without ilinkdebug")
		return
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Require(false) did not panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "range 3") {
			t.Errorf("panic value = %v, want message containing %q", r, "range 3")
		}
	}()
	Require(false, "range %d", 3)
}
